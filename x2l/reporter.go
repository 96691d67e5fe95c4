package x2l

import (
	"fmt"
	"io"
)

type (
	// Reporter receives the outcome of every input line.
	Reporter interface {
		Renamed(original, dst string)
		Skipped(original string, cause error)
		ReadFailed(err error)
	}

	Logger interface {
		Printf(string, ...any)
		Println(...any)
	}

	// StreamReporter writes renames to one stream and everything else to another.
	StreamReporter struct {
		logger  Logger
		renamed io.Writer
		skipped io.Writer
	}
)

var _ Reporter = (*StreamReporter)(nil)

// NewStreamReporter returns a reporter writing renames to renamed, and skips and input
// failures to skipped. Failed writes are logged through logger and otherwise ignored.
func NewStreamReporter(renamed, skipped io.Writer, logger Logger) *StreamReporter {
	return &StreamReporter{logger: logger, renamed: renamed, skipped: skipped}
}

func (r *StreamReporter) Renamed(original, dst string) {
	r.write(r.renamed, fmt.Sprintf("%s -> %s\n", original, dst))
}

func (r *StreamReporter) Skipped(original string, cause error) {
	r.write(r.skipped, fmt.Sprintf("%s: %s\n", original, cause.Error()))
}

func (r *StreamReporter) ReadFailed(err error) {
	r.write(r.skipped, err.Error()+"\n")
}

func (r *StreamReporter) write(dest io.Writer, msg string) {
	if _, err := io.WriteString(dest, msg); err != nil {
		r.logger.Printf("IO error while writing: %s\n", err)
	}
}
