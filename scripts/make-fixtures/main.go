package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"github.com/goccy/go-yaml"
)

type (
	Case struct {
		Name     string `yaml:"name"`
		Original string `yaml:"original"`
		Renamed  string `yaml:"renamed"`
	}
)

var (
	logger = log.New(os.Stderr, "make-fixtures: ", 0)

	expect bool
	debug  bool

	helpMsg = `Usage: %s [flags] <CASES-FILE> <DST-DIR>

Create an empty file for every case in <CASES-FILE> inside <DST-DIR> and print the
file names on stdout, one per line, ready to be piped into toolkit-x2l.

Arguments:
  <CASES-FILE>    YAML list of cases with the keys name, original and renamed.
                  Leave renamed out when the file is expected to be skipped.
  <DST-DIR>       Directory to create. It must not exist.

Flags:
`
)

func readCases(path string) ([]Case, error) {
	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read cases file %q: %w", path, err)
	}

	var cases []Case

	if err = yaml.Unmarshal(contents, &cases); err != nil {
		return nil, fmt.Errorf("failed to parse cases file %q: %w", path, err)
	}

	for i := range cases {
		if cases[i].Original == "" {
			return nil, fmt.Errorf("case %d (%q) has no original file name", i, cases[i].Name)
		}
	}

	return cases, nil
}

func makeFixtures(dest string, cases []Case) error {
	if _, err := os.Lstat(dest); err == nil {
		return fmt.Errorf("%q must not exist", dest)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to check %q: %w", dest, err)
	}

	if err := os.MkdirAll(dest, 0750); err != nil {
		return fmt.Errorf("failed to create %q: %w", dest, err)
	}

	for _, c := range cases {
		path := filepath.Join(dest, c.Original)

		if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
			return fmt.Errorf("failed to create parent directory of %q: %w", c.Original, err)
		}

		if err := os.WriteFile(path, nil, 0600); err != nil {
			return fmt.Errorf("failed to create file for case %q: %w", c.Name, err)
		}
	}

	return nil
}

// writeList prints the input for toolkit-x2l, or with expectations what its stdout
// should be in execute mode.
func writeList(dest io.Writer, cases []Case, expectations bool) error {
	for _, c := range cases {
		line := c.Original

		if expectations {
			if c.Renamed == "" {
				continue
			}

			line = c.Original + " -> " + c.Renamed
		}

		if _, err := fmt.Fprintln(dest, line); err != nil {
			return fmt.Errorf("failed to write file list: %w", err)
		}
	}

	return nil
}

func main() {
	flag.BoolVar(&expect, "expect", false, "Print the expected renamings instead of the input file names.")
	flag.BoolVar(&debug, "debug", false, "Dump the parsed cases to stderr.")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(flag.CommandLine.Output(), helpMsg, os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		flag.Usage()
		os.Exit(2)
	}

	cases, err := readCases(args[0])
	if err != nil {
		logger.Fatal(err)
	}

	if debug {
		spew.Fdump(os.Stderr, cases)
	}

	if err = makeFixtures(args[1], cases); err != nil {
		logger.Fatal(err)
	}

	if err = writeList(os.Stdout, cases, expect); err != nil {
		logger.Fatal(err)
	}
}
