package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Set at build time via ldflags; build info fills the gaps.
var (
	version = ""
	commit  = ""
	date    = ""
)

// getVersion returns the module version: ldflags first, then the build
// info, then "(devel)".
func getVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(devel)"
}

// buildMetadata resolves the commit hash and build date in one pass over
// the embedded build settings. Unset values come back as "unknown".
func buildMetadata() (commitHash, buildDate string) {
	commitHash, buildDate = commit, date

	if commitHash == "" || buildDate == "" {
		if info, ok := debug.ReadBuildInfo(); ok {
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					if commitHash == "" {
						commitHash = s.Value
						if len(commitHash) > 7 {
							commitHash = commitHash[:7]
						}
					}
				case "vcs.time":
					if buildDate == "" {
						buildDate = s.Value
					}
				}
			}
		}
	}

	if commitHash == "" {
		commitHash = "unknown"
	}
	if buildDate == "" {
		buildDate = "unknown"
	}
	return commitHash, buildDate
}

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print the version, commit hash, and build date of leadscan.`,
		Run: func(cmd *cobra.Command, _ []string) {
			commitHash, buildDate := buildMetadata()
			fmt.Fprintf(cmd.OutOrStdout(), "leadscan version %s\n", getVersion())
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", commitHash)
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", buildDate)
		},
	}
}
