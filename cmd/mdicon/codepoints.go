package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/jonathan/md-icon-localize/internal/cache"
	"github.com/jonathan/md-icon-localize/internal/fetch"
	"github.com/jonathan/md-icon-localize/internal/registry"
	"github.com/spf13/cobra"
)

var codepointsCmd = &cobra.Command{
	Use:   "codepoints NAME...",
	Short: "Look up icon codepoints",
	Long:  "Prints the codepoint of each icon NAME in the codepoint registry of the selected variant. The registry is downloaded into the cache directory on first use.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCodepoints,
}

var (
	codepointsFlags   commonFlags
	codepointsVariant string
)

func init() {
	codepointsFlags.register(codepointsCmd)
	codepointsCmd.Flags().StringVar(&codepointsVariant, "variant", "", "Icon style: outlined, rounded or sharp (default from config)")

	rootCmd.AddCommand(codepointsCmd)
}

func runCodepoints(cmd *cobra.Command, args []string) error {
	cfg, err := codepointsFlags.load()
	if err != nil {
		return err
	}
	variant, err := resolveVariant(codepointsVariant, cfg)
	if err != nil {
		return err
	}

	cmd.SilenceUsage = true

	store, err := cache.NewDirStore(cfg.CacheDir)
	if err != nil {
		return err
	}
	fetcher := fetch.NewCachedFetcher(store, &fetch.CachedFetcherConfig{Verbose: cfg.Verbose})
	codepoints, err := registry.Load(context.Background(), variant, fetcher, registry.Options{
		BaseURL: cfg.RegistryURL,
		Verbose: cfg.Verbose,
	})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	unknown := 0
	for _, name := range args {
		if cp, ok := codepoints.Lookup(name); ok {
			_, _ = fmt.Fprintf(w, "%s\t%s\n", name, cp)
			continue
		}
		unknown++
		_, _ = fmt.Fprintf(w, "%s\t%s\n", name, "-")
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if unknown > 0 {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %d of %d names not found in the %s registry\n", unknown, len(args), variant)
	}
	return nil
}
