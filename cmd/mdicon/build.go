package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/jonathan/md-icon-localize/internal/cache"
	"github.com/jonathan/md-icon-localize/internal/observability"
	"github.com/jonathan/md-icon-localize/internal/pipeline"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build SRC DEST [VARIANT]",
	Short: "Build a font subset for the icons used in SRC",
	Long: "Scans SRC for <md-icon> references, downloads a Material Symbols subset containing exactly those " +
		"glyphs and copies material-symbols.woff2 and material-symbols.css into DEST. VARIANT is one of " +
		"outlined (default), rounded or sharp. The download is skipped when the icon set is unchanged " +
		"since the last build.",
	Example: "  mdicon build src public\n  mdicon build src public rounded -a menu -a close",
	Args:    srcDestVariantArgs,
	RunE:    runBuild,
}

var (
	buildFlags      commonFlags
	buildAdditional []string
)

func init() {
	buildFlags.register(buildCmd)
	buildCmd.Flags().StringSliceVarP(&buildAdditional, "additional", "a", nil, "Icon names to include even if not referenced in sources (repeatable)")

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := buildFlags.load()
	if err != nil {
		return err
	}
	cfg.Include = []string{args[0]}
	cfg.OutDir = args[1]
	cfg.AdditionalIconNames = append(cfg.AdditionalIconNames, buildAdditional...)
	if err := cfg.Validate(); err != nil {
		return err
	}

	variantArg := ""
	if len(args) == 3 {
		variantArg = args[2]
	}
	variant, err := resolveVariant(variantArg, cfg)
	if err != nil {
		return err
	}

	// Arguments are valid past this point; failures are not usage errors.
	cmd.SilenceUsage = true

	store, err := cache.NewDirStore(cfg.CacheDir)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	out := cmd.OutOrStdout()
	result, err := pipeline.RunPipeline(ctx, pipeline.RunOptions{
		Sources:         cfg.Include,
		Extensions:      cfg.Extensions,
		AdditionalNames: cfg.AdditionalIconNames,
		OutDir:          cfg.OutDir,
		Variant:         variant,
		Store:           store,
		RegistryURL:     cfg.RegistryURL,
		FontsURL:        cfg.FontsURL,
		Verbose:         cfg.Verbose,
		Out:             out,
	})
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(out)
		printer.PrintIconNames(result.Names, result.Previous)
		printer.PrintUnresolved(result.Missing)
		printer.PrintBuildResult(result, cfg.OutDir)
	} else if len(result.Missing) > 0 {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: no codepoint for icon names: %s\n", strings.Join(result.Missing, ", "))
	}

	switch result.Outcome {
	case pipeline.OutcomeBuilt:
		_, _ = fmt.Fprintf(out, "Successfully built %s subset with %d icons to %s\n", variant, len(result.Assets.Codepoints), cfg.OutDir)
	case pipeline.OutcomeUpToDate:
		_, _ = fmt.Fprintf(out, "Font subset is up to date (%d icons)\n", result.Names.Len())
	case pipeline.OutcomeUnresolved:
		_, _ = fmt.Fprintf(out, "No referenced icon exists in the %s registry; no font written\n", variant)
	case pipeline.OutcomeEmpty:
		_, _ = fmt.Fprintf(out, "No icons referenced under %s\n", args[0])
	}
	if (result.Outcome == pipeline.OutcomeBuilt || result.Outcome == pipeline.OutcomeUpToDate) && !result.Exported {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: font files could not be copied to %s\n", cfg.OutDir)
	}

	return nil
}
