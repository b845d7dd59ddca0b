package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/starbound-io/celvalidate"
	"github.com/starbound-io/celvalidate/filesystem"
	"github.com/starbound-io/celvalidate/internal"
)

var verboseFlag bool

func init() {
	validateCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "display additional informational messages")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Validate Celestia catalog files",
	Long: `Validate the catalog files at the given path, which may be a single file
(.ssc, .stc, .dsc), a directory searched recursively, or a .zip archive.
Reports diagnostics per file and exits with status 1 if any problems were
found.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		cfg, err := loadConfigFor(path)
		if err != nil {
			return err
		}
		applyColorMode(cfg.ColorMode())

		rep := &reporter{
			out:     cmd.OutOrStdout(),
			verbose: verboseFlag || cfg.Verbose(),
		}

		problems, err := process(path, optionsFromConfig(cfg), rep)
		if err != nil {
			return err
		}
		if problems {
			return fmt.Errorf("validation failed")
		}
		log.Debug("no problems found", "path", path)
		return nil
	},
}

// loadConfigFor merges the config file near path (the directory itself, or
// the containing directory for files and archives) over the defaults.
func loadConfigFor(path string) (*internal.Config, error) {
	dir := path
	if info, err := os.Stat(path); err != nil || !info.IsDir() {
		dir = filepath.Dir(path)
	}
	cfg := internal.DefaultConfig()
	add, err := internal.LoadConfig(dir)
	if err != nil {
		return nil, err
	}
	cfg.Merge(add)
	return cfg, nil
}

func optionsFromConfig(cfg *internal.Config) celvalidate.Options {
	var opts celvalidate.Options
	if cfg.Filenames != nil {
		opts.MeshExtensions = cfg.Filenames.MeshExtensions
		opts.TextureExtensions = cfg.Filenames.TextureExtensions
		opts.TrajectoryExtensions = cfg.Filenames.TrajectoryExtensions
	}
	return opts
}

func process(path string, opts celvalidate.Options, rep *reporter) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("could not open %q: %w", path, err)
	}
	if info.IsDir() {
		return processDirectory(path, opts, rep)
	}
	if strings.EqualFold(filepath.Ext(path), ".zip") {
		return processArchive(path, opts, rep)
	}
	return processFile(path, filepath.Base(path), opts, rep)
}

func processFile(path, name string, opts celvalidate.Options, rep *reporter) (bool, error) {
	log.Debug("validating", "file", path)
	msgs, err := celvalidate.ValidateFile(path, opts)
	if err != nil {
		return false, err
	}
	return rep.report(name, msgs), nil
}

func processDirectory(root string, opts celvalidate.Options, rep *reporter) (bool, error) {
	return processTree(filesystem.NewWrappedFS(root), opts, rep)
}

func processArchive(path string, opts celvalidate.Options, rep *reporter) (bool, error) {
	zfs, err := filesystem.NewZipFS(path)
	if err != nil {
		return false, fmt.Errorf("could not open %q: %w", path, err)
	}
	defer zfs.Close()
	return processTree(zfs, opts, rep)
}

// processTree validates every catalog file found in fsys, reporting each under
// its path relative to the source root.
func processTree(fsys filesystem.FileSystem, opts celvalidate.Options, rep *reporter) (bool, error) {
	problems := false
	err := fsys.WalkDir(".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		// Skip macOS resource forks.
		if d.IsDir() && d.Name() == "__MACOSX" {
			return fs.SkipDir
		}
		if d.IsDir() {
			return nil
		}
		format := celvalidate.FormatForPath(name)
		if format == celvalidate.FormatUnknown {
			return nil
		}
		log.Debug("validating", "entry", name)
		f, err := fsys.Open(name)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", name, err)
		}
		msgs, err := celvalidate.ValidateReader(f, format, opts)
		f.Close()
		if err != nil {
			return err
		}
		problems = rep.report(name, msgs) || problems
		return nil
	})
	return problems, err
}
