package x2l

import (
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

type (
	// Rename is one proposed filesystem change.
	Rename struct {
		Src string
		Dst string
	}
)

// Analyze decides whether path names a file whose extension should be lowercased.
// It performs no I/O.
//
// Non-nil returned error is a [PathStringError].
func Analyze(path string) (Rename, error) {
	dir, name, ok := splitFileName(path)
	if !ok {
		return Rename{}, MissingFileName
	}

	// A dot at index 0 marks a hidden file, not an extension.
	dot := strings.LastIndexByte(name, '.')
	if dot <= 0 {
		return Rename{}, MissingExtension
	}

	stem, ext := name[:dot], name[dot+1:]

	if !utf8.ValidString(ext) {
		return Rename{}, NonUnicodeExtension
	}

	lower := toLower(ext)
	if lower == ext {
		return Rename{}, LowercaseExtension
	}

	return Rename{Src: path, Dst: dir + stem + "." + lower}, nil
}

// splitFileName returns the last component of path and everything in front of it.
// Trailing separators and trailing "." components do not count as components.
// ok is false for an empty path, a root, a volume name, "." and "..".
func splitFileName(path string) (dir, name string, ok bool) {
	vol := filepath.VolumeName(path)
	rest := path[len(vol):]
	end := len(rest)

	for {
		for end > 0 && os.IsPathSeparator(rest[end-1]) {
			end--
		}

		if end >= 2 && rest[end-1] == '.' && os.IsPathSeparator(rest[end-2]) {
			end--

			continue
		}

		break
	}

	start := end
	for start > 0 && !os.IsPathSeparator(rest[start-1]) {
		start--
	}

	name = rest[start:end]
	if name == "" || name == "." || name == ".." {
		return "", "", false
	}

	return vol + rest[:start], name, true
}

// toLower is strings.ToLower plus the two unconditional context rules of the Unicode full
// case mapping that simple mapping lacks: a word-final capital sigma becomes 'ς' and a
// capital I with dot above becomes "i\u0307".
func toLower(s string) string {
	if !strings.ContainsAny(s, "\u03a3\u0130") {
		return strings.ToLower(s)
	}

	runes := []rune(s)

	var b strings.Builder

	for i, r := range runes {
		switch r {
		case '\u0130':
			b.WriteString("i\u0307")
		case '\u03a3':
			if endsWord(runes, i) {
				b.WriteRune('\u03c2')
			} else {
				b.WriteRune('\u03c3')
			}
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}

	return b.String()
}

// endsWord reports whether runes[i] is preceded by a cased letter and not followed by one,
// case-ignorable runes being skipped in both directions.
func endsWord(runes []rune, i int) bool {
	before := false

	for j := i - 1; j >= 0; j-- {
		if caseIgnorable(runes[j]) {
			continue
		}

		before = cased(runes[j])

		break
	}

	if !before {
		return false
	}

	for j := i + 1; j < len(runes); j++ {
		if caseIgnorable(runes[j]) {
			continue
		}

		return !cased(runes[j])
	}

	return true
}

func cased(r rune) bool {
	return unicode.In(r, unicode.Lu, unicode.Ll, unicode.Lt, unicode.Other_Lowercase, unicode.Other_Uppercase)
}

func caseIgnorable(r rune) bool {
	return strings.ContainsRune("'.:\u00b7\u2019", r) || unicode.In(r, unicode.Mn, unicode.Me, unicode.Cf, unicode.Lm, unicode.Sk)
}
