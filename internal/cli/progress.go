package cli

import (
	"log"

	"github.com/schollz/progressbar/v3"
)

// orderProgress reports graph-building progress with a progress bar.
type orderProgress struct {
	quiet bool
	bar   *progressbar.ProgressBar
}

func newOrderProgress(quiet bool) *orderProgress {
	return &orderProgress{quiet: quiet}
}

func (p *orderProgress) OnBuildStart(totalFiles int) {
	if p.quiet || totalFiles == 0 {
		return
	}

	p.bar = progressbar.NewOptions(totalFiles,
		progressbar.OptionSetDescription("Parsing files"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("files/s"),
		progressbar.OptionClearOnFinish(),
	)
}

func (p *orderProgress) OnFileIndexed(processed, totalFiles int, filePath string) {
	if p.bar != nil {
		_ = p.bar.Add(1)
	}
}

func (p *orderProgress) OnBuildComplete(nodeCount, edgeCount int) {
	if p.bar != nil {
		_ = p.bar.Finish()
	}
	if !p.quiet {
		log.Printf("dependency graph: %d files, %d edges", nodeCount, edgeCount)
	}
}
