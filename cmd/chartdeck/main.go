// Package main is the chartdeck command.
package main

import (
	"runtime"

	"github.com/bnema/chartdeck/internal/cli/cmd"
	"github.com/bnema/chartdeck/internal/domain/build"
)

// Build information set via ldflags
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})

	cmd.Execute()
}
