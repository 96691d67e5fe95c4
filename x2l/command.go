package x2l

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/kong"
)

type (
	Cmd struct {
		in       io.Reader
		reporter Reporter
		Execute  bool `short:"x" help:"Do execute the action (default is to run dry)."`
	}
)

const (
	Summary = "Read file names from stdin (one per line) and rename the file so that its extension is lowercase."

	Details = "Renamings are reported on stdout (one per line). Errors and files not renamed are reported on stderr."
)

// Help is shown by kong below the flags.
func (c *Cmd) Help() string {
	return Details
}

// AfterApply binds the process streams. Write failures are logged with the name of
// the running binary as prefix.
func (c *Cmd) AfterApply(ctx *kong.Context) error {
	c.in = os.Stdin

	c.reporter = NewStreamReporter(os.Stdout, os.Stderr, log.New(os.Stderr, ctx.Model.Name+": ", 0))

	return nil
}

// Non-nil returned error wraps [ErrInputRead].
func (c *Cmd) Run() error {
	return RenameFiles(c.in, NewRenamer(c.Execute), c.reporter)
}

// RenameFiles handles in line by line until it is exhausted. Each line is analyzed,
// applied and reported before the next one is read. Reading stops at the first read
// error, which is reported as well. A line that is not valid UTF-8 counts as a read
// error.
//
// Non-nil returned error wraps [ErrInputRead].
func RenameFiles(in io.Reader, renamer *Renamer, reporter Reporter) error {
	reader := bufio.NewReader(in)

	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			reporter.ReadFailed(err)

			return fmt.Errorf("%w: %s", ErrInputRead, err.Error())
		}

		if !utf8.ValidString(line) {
			reporter.ReadFailed(ErrInvalidUTF8)

			return fmt.Errorf("%w: %s", ErrInputRead, ErrInvalidUTF8.Error())
		}

		if line != "" {
			processLine(renamer, reporter, trimLineEnding(line))
		}

		if err != nil {
			return nil
		}
	}
}

func processLine(renamer *Renamer, reporter Reporter, path string) {
	rename, err := Analyze(path)
	if err != nil {
		reporter.Skipped(path, err)

		return
	}

	if err = renamer.Apply(rename); err != nil {
		reporter.Skipped(path, err)

		return
	}

	reporter.Renamed(path, rename.Dst)
}

// trimLineEnding removes "\n" or "\r\n". A "\r" without "\n" belongs to the line.
func trimLineEnding(line string) string {
	if !strings.HasSuffix(line, "\n") {
		return line
	}

	return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
}
