package providers

import (
	"os"

	"github.com/schollz/progressbar/v3"
)

// ProgressInterface tracks one delete or rename pass.
type ProgressInterface interface {
	Add(n int)
	Finish()
}

// ProgressFactory builds a fresh indicator per pass.
type ProgressFactory func(description string, total int) ProgressInterface

func NewProgressFactory() ProgressFactory {
	return func(description string, total int) ProgressInterface {
		bar := progressbar.NewOptions(total,
			progressbar.OptionSetDescription(description),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionSetItsString("file"),
			progressbar.OptionClearOnFinish(),
			progressbar.OptionSetRenderBlankState(true),
		)
		return &consoleProgress{bar: bar}
	}
}

type consoleProgress struct {
	bar *progressbar.ProgressBar
}

func (c *consoleProgress) Add(n int) {
	_ = c.bar.Add(n)
}

func (c *consoleProgress) Finish() {
	_ = c.bar.Finish()
}
