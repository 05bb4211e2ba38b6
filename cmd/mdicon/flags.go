package main

import (
	"github.com/jonathan/md-icon-localize/internal/cache"
	"github.com/jonathan/md-icon-localize/internal/config"
	"github.com/jonathan/md-icon-localize/internal/types"
	"github.com/spf13/cobra"
)

// commonFlags are the settings every subcommand accepts. Values given on
// the command line override the config file and MDICON_* variables.
type commonFlags struct {
	configPath string
	cacheDir   string
	extensions []string
	verbose    bool
}

func (f *commonFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.configPath, "config", config.DefaultFile, "Path to JSON config file")
	cmd.Flags().StringVar(&f.cacheDir, "cache-dir", "", "Build cache directory (default "+cache.DefaultDir+")")
	cmd.Flags().StringSliceVar(&f.extensions, "ext", nil, "Source file extensions to scan (repeatable)")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Print detailed debug information")
}

// load returns the effective configuration.
func (f *commonFlags) load() (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	if f.cacheDir != "" {
		cfg.CacheDir = f.cacheDir
	}
	if len(f.extensions) > 0 {
		cfg.Extensions = f.extensions
	}
	cfg.Verbose = cfg.Verbose || f.verbose
	return cfg, nil
}

// srcDestVariantArgs accepts SRC DEST [VARIANT] and rejects unknown variants.
func srcDestVariantArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.RangeArgs(2, 3)(cmd, args); err != nil {
		return err
	}
	if len(args) == 3 {
		if _, err := types.ParseVariant(args[2]); err != nil {
			return err
		}
	}
	return nil
}

// resolveVariant returns the variant given on the command line, or the
// configured one when name is empty.
func resolveVariant(name string, cfg *config.Config) (types.Variant, error) {
	if name != "" {
		return types.ParseVariant(name)
	}
	return cfg.ParsedVariant()
}
