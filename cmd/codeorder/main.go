package main

import "codeorder/internal/cli"

func main() {
	cli.Execute()
}
