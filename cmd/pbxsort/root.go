package main

import (
	"github.com/spf13/cobra"

	"pbxsort/internal/version"
)

var (
	caseInsensitiveFlag bool
	caseSensitiveFlag   bool
	checkFlag           bool
	noWarningsFlag      bool
	recursiveFlag       bool
	failFastFlag        bool
	configDirFlag       string
	logFormatFlag       string
)

var rootCmd = &cobra.Command{
	Use:   "pbxsort [flags] path/to/project.pbxproj ...",
	Short: "pbxsort - deterministic ordering for Xcode project files",
	Long: `pbxsort canonicalizes the sortable regions of Xcode project.pbxproj files
so that independent edits produce minimal, deterministic diffs.

Array regions (children, files, buildConfigurations, targets, package
dependencies and references) and the PBXBuildFile/PBXFileReference sections
are deduplicated and sorted in natural order. The PBXFrameworksBuildPhase
section is link-order-sensitive and is never touched. Files are rewritten
atomically; a failed run leaves every file byte-identical to before.

Paths may name a project.pbxproj file or a .xcodeproj bundle. With
--recursive, directories are scanned for project.pbxproj files.

Examples:
  pbxsort App.xcodeproj                 # sort one project in place
  pbxsort --check App.xcodeproj         # exit 1 if anything is unsorted
  pbxsort -r .                          # sort every project under cwd
  pbxsort --case-insensitive App.xcodeproj`,
	Version:       version.Version,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSort,
}

func init() {
	rootCmd.SetVersionTemplate("pbxsort version {{.Version}}\n")
	rootCmd.Flags().BoolVar(&caseInsensitiveFlag, "case-insensitive", false,
		"Enable case-insensitive sorting")
	rootCmd.Flags().BoolVar(&caseSensitiveFlag, "case-sensitive", false,
		"Force case-sensitive sorting, overriding the config file")
	rootCmd.MarkFlagsMutuallyExclusive("case-insensitive", "case-sensitive")
	rootCmd.Flags().BoolVar(&checkFlag, "check", false,
		"Check only: exit 0 if sorted, exit 1 if unsorted; never write")
	rootCmd.Flags().BoolVarP(&noWarningsFlag, "no-warnings", "w", false,
		"Suppress warnings")
	rootCmd.Flags().BoolVarP(&recursiveFlag, "recursive", "r", false,
		"Scan directory arguments recursively for project.pbxproj files")
	rootCmd.Flags().BoolVar(&failFastFlag, "fail-fast", false,
		"Abort the batch on the first fatal error")
	rootCmd.Flags().StringVar(&configDirFlag, "config", ".",
		"Directory containing .pbxsort.json")
	rootCmd.Flags().StringVar(&logFormatFlag, "log-format", "",
		"Log format: human or json (default from config)")
}
