package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pbxsort/internal/config"
	"pbxsort/internal/discover"
	sorterrors "pbxsort/internal/errors"
	"pbxsort/internal/logging"
	"pbxsort/internal/pbxproj"
)

func runSort(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configDirFlag)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newRunLogger(cfg)
	opts := resolveOptions(cfg)
	failFast := failFastFlag || !cfg.ContinueOnError

	files, err := expandArgs(args, logger)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no Xcode project files (project.pbxproj) to process")
	}

	allSorted := true
	anyFailed := false

	for _, path := range files {
		if _, err := os.Stat(path); err != nil {
			logger.Error("File not found", map[string]interface{}{"path": path})
			anyFailed = true
			if failFast {
				break
			}
			continue
		}

		if checkFlag {
			sorted, err := pbxproj.CheckFile(path, opts)
			if err != nil {
				logger.Error("Check failed", errFields(err))
				anyFailed = true
				if failFast {
					break
				}
				continue
			}
			if !sorted {
				allSorted = false
				fmt.Printf("%s is not sorted\n", path)
			}
			continue
		}

		changed, err := pbxproj.SortFile(path, opts)
		if err != nil {
			logger.Error("Sort failed", errFields(err))
			anyFailed = true
			if failFast {
				break
			}
			continue
		}
		if changed {
			logger.Info("Sorted", map[string]interface{}{"path": path})
		} else {
			logger.Debug("Already sorted", map[string]interface{}{"path": path})
		}
	}

	if anyFailed {
		return fmt.Errorf("one or more project files failed")
	}
	if checkFlag && !allSorted {
		// Distinct exit path for "well-formed but unsorted" in check mode.
		os.Exit(1)
	}
	return nil
}

// expandArgs resolves every argument to project.pbxproj paths. Directories
// are walked when --recursive is set; paths that are not project files are
// skipped with a warning, matching the NotAProjectFile recovery policy.
func expandArgs(args []string, logger *logging.Logger) ([]string, error) {
	var files []string
	for _, arg := range args {
		if recursiveFlag && discover.IsDir(arg) {
			found, err := discover.Find(arg)
			if err != nil {
				return nil, err
			}
			files = append(files, found...)
			continue
		}

		path, err := discover.Resolve(arg)
		if err != nil {
			logger.Warn("Not an Xcode project file", map[string]interface{}{"path": arg})
			continue
		}
		files = append(files, path)
	}
	return files, nil
}

// resolveOptions merges config defaults with CLI flags. Flags win.
func resolveOptions(cfg *config.Config) pbxproj.Options {
	caseInsensitive := cfg.CaseInsensitive
	if caseInsensitiveFlag {
		caseInsensitive = true
	}
	if caseSensitiveFlag {
		caseInsensitive = false
	}
	return pbxproj.Options{
		CaseInsensitive:  caseInsensitive,
		KnownFiles:       cfg.EffectiveKnownFiles(),
		SortableSections: cfg.EffectiveSortableSections(),
	}
}

func newRunLogger(cfg *config.Config) *logging.Logger {
	format := cfg.Logging.Format
	if logFormatFlag != "" {
		format = logFormatFlag
	}
	level := logging.ParseLevel(cfg.Logging.Level)
	if noWarningsFlag {
		level = logging.ErrorLevel
	}
	return logging.NewLogger(logging.Config{
		Format: logging.Format(format),
		Level:  level,
	})
}

func errFields(err error) map[string]interface{} {
	fields := map[string]interface{}{"error": err.Error()}
	if code := sorterrors.CodeOf(err); code != "" {
		fields["code"] = string(code)
	}
	return fields
}
