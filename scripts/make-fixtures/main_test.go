package main

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kxue43/x2l-toolkit/x2l"
)

func TestReadCases(t *testing.T) {
	cases, err := readCases(filepath.Join("testdata", "cases.yaml"))
	require.NoError(t, err, "should be able to read the sample cases")

	require.Len(t, cases, 6)
	assert.Equal(t, Case{Name: "upper", Original: "photo.JPG", Renamed: "photo.jpg"}, cases[0])
	assert.Equal(t, Case{Name: "lower", Original: "notes.txt"}, cases[2])
}

func TestReadCasesRejectsMissingOriginal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.yaml")

	err := os.WriteFile(path, []byte("- name: broken\n  renamed: a.jpg\n"), 0600)
	require.NoError(t, err)

	_, err = readCases(path)
	assert.ErrorContains(t, err, "has no original file name")
}

func TestMakeFixturesRefusesExistingDir(t *testing.T) {
	err := makeFixtures(t.TempDir(), nil)
	assert.ErrorContains(t, err, "must not exist")
}

func TestFixturesAgainstRenamer(t *testing.T) {
	cases, err := readCases(filepath.Join("testdata", "cases.yaml"))
	require.NoError(t, err)

	dest := filepath.Join(t.TempDir(), "fixtures")

	err = makeFixtures(dest, cases)
	require.NoError(t, err, "should be able to create the fixture directory")

	var input, expected bytes.Buffer

	require.NoError(t, writeList(&input, cases, false))
	require.NoError(t, writeList(&expected, cases, true))

	assert.Equal(t, "photo.JPG\nMovie.Mp4\nnotes.txt\nREADME\n.profile\nsub.DIR/Cat.GIF\n", input.String())

	t.Chdir(dest)

	var stdout, stderr bytes.Buffer

	reporter := x2l.NewStreamReporter(&stdout, &stderr, log.New(io.Discard, "", 0))

	err = x2l.RenameFiles(&input, x2l.NewRenamer(true), reporter)
	require.NoError(t, err)

	assert.Equal(t, expected.String(), stdout.String(), "every case with a renamed name should be renamed")
	assert.Equal(t, "notes.txt: extension is lowercase\nREADME: missing extension\n.profile: missing extension\n", stderr.String())

	for _, c := range cases {
		name := c.Original
		if c.Renamed != "" {
			name = c.Renamed
		}

		_, err = os.Stat(filepath.Join(dest, name))
		assert.NoError(t, err, "%q should exist after the run", name)
	}
}
