package main

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
)

// Set with -ldflags "-X main.version=... -X main.commit=...".
var (
	version = "dev"
	commit  = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  "Display the decodescan build version, VCS revision and toolchain",
	RunE:  runVersion,
}

func runVersion(cmd *cobra.Command, args []string) error {
	info, _ := debug.ReadBuildInfo()
	b := resolveBuild(version, commit, info)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "decodescan v%s\n", b.version)
	fmt.Fprintf(out, "Commit: %s", b.commit)
	if b.modified {
		fmt.Fprint(out, " (modified)")
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Built with %s for %s/%s\n", b.goVersion, runtime.GOOS, runtime.GOARCH)
	return nil
}

type buildDetails struct {
	version   string
	commit    string
	modified  bool
	goVersion string
}

// resolveBuild prefers ldflags values and falls back to the module and VCS
// stamps in info. info may be nil.
func resolveBuild(ver, rev string, info *debug.BuildInfo) buildDetails {
	b := buildDetails{version: ver, commit: rev, goVersion: runtime.Version()}
	if info == nil {
		return b
	}
	if info.GoVersion != "" {
		b.goVersion = info.GoVersion
	}
	if b.version == "dev" {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			b.version = strings.TrimPrefix(v, "v")
		}
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if b.commit == "unknown" {
				b.commit = s.Value
			}
		case "vcs.modified":
			b.modified = s.Value == "true"
		}
	}
	return b
}
