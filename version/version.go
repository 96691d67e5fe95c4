package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

type (
	// Info is what the Go toolchain stamped into the running binary.
	Info struct {
		Module   string
		VCS      string
		Revision string
		Time     string
		Modified bool
	}
)

const unavailable = "unavailable"

func fromSettings(module string, settings []debug.BuildSetting) Info {
	info := Info{Module: module}

	for i := range settings {
		switch settings[i].Key {
		case "vcs":
			info.VCS = settings[i].Value
		case "vcs.revision":
			info.Revision = settings[i].Value
		case "vcs.time":
			info.Time = settings[i].Value
		case "vcs.modified":
			info.Modified = settings[i].Value == "true"
		default:
			continue
		}
	}

	return info
}

func (i Info) String() string {
	var b strings.Builder

	if i.Module != "" && i.Module != "(devel)" {
		b.WriteString(i.Module)
	}

	if i.Revision != "" {
		if b.Len() > 0 {
			b.WriteString(", ")
		}

		fmt.Fprintf(&b, "built from %s revision %s", i.VCS, i.Revision)

		if i.Modified {
			b.WriteString(" (dirty)")
		}

		if i.Time != "" {
			fmt.Fprintf(&b, " at %s", i.Time)
		}
	}

	if b.Len() == 0 {
		return unavailable
	}

	return b.String()
}

// FromBuildInfo describes the running binary, e.g. for a --version flag.
func FromBuildInfo() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return unavailable
	}

	return fromSettings(info.Main.Version, info.Settings).String()
}
