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

var transformCmd = &cobra.Command{
	Use:   "transform SRC OUT [VARIANT]",
	Short: "Rewrite icon references to codepoint entities",
	Long: "Copies every source file under SRC to the same relative path under OUT, replacing " +
		"<md-icon>name</md-icon> with <md-icon>&#x<codepoint>;</md-icon>. Unknown names become &#xfffd;.",
	Args: srcDestVariantArgs,
	RunE: runTransform,
}

var transformFlags commonFlags

func init() {
	transformFlags.register(transformCmd)

	rootCmd.AddCommand(transformCmd)
}

func runTransform(cmd *cobra.Command, args []string) error {
	cfg, err := transformFlags.load()
	if err != nil {
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

	cmd.SilenceUsage = true

	store, err := cache.NewDirStore(cfg.CacheDir)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := pipeline.RunTransform(ctx, pipeline.TransformOptions{
		Source:      args[0],
		OutDir:      args[1],
		Extensions:  cfg.Extensions,
		Variant:     variant,
		Store:       store,
		RegistryURL: cfg.RegistryURL,
		Verbose:     cfg.Verbose,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if cfg.Verbose {
		observability.NewPrinter(out).PrintTransformResult(result)
	} else if len(result.Missing) > 0 {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: no codepoint for icon names: %s\n", strings.Join(result.Missing, ", "))
	}

	_, _ = fmt.Fprintf(out, "Rewrote %d of %d files into %s\n", result.Rewritten, result.Files, result.OutputRoot)
	return nil
}
