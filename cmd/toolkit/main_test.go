package main

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kxue43/x2l-toolkit/x2l"
)

type exited int

func TestSubcommandHelpShowsDetails(t *testing.T) {
	var cli CLI

	var out, errOut bytes.Buffer

	parser, err := newParser(&cli, kong.Writers(&out, &errOut), kong.Exit(func(code int) { panic(exited(code)) }))
	require.NoError(t, err, "should be able to build the parser")

	assert.PanicsWithValue(t, exited(0), func() {
		_, _ = parser.Parse([]string{"x2l", "--help"})
	})

	text := strings.Join(strings.Fields(out.String()), " ")

	assert.Contains(t, text, x2l.Details, "both output streams should be described")
	assert.Contains(t, text, "--execute")
}

func TestFinish(t *testing.T) {
	var tests = []struct {
		name   string
		err    error
		codes  []int
		stderr string
	}{
		{name: "Success", err: nil, codes: nil, stderr: ""},
		{name: "Input read failure", err: fmt.Errorf("%w: %s", x2l.ErrInputRead, "stream did not contain valid UTF-8"), codes: []int{1}, stderr: ""},
		{name: "Other failure", err: errors.New("boom"), codes: []int{1}, stderr: "toolkit: error: boom"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var cli CLI

			var out, errOut bytes.Buffer

			var codes []int

			parser, err := newParser(&cli, kong.Writers(&out, &errOut), kong.Exit(func(code int) { codes = append(codes, code) }))
			require.NoError(t, err)

			ctx, err := parser.Parse([]string{"x2l"})
			require.NoError(t, err)

			finish(ctx, test.err)

			assert.Equal(t, test.codes, codes)
			assert.Empty(t, out.String())

			if test.stderr == "" {
				assert.Empty(t, errOut.String(), "an already reported failure should not be reported twice")
			} else {
				assert.Contains(t, errOut.String(), test.stderr)
			}
		})
	}
}
