package main

import (
	"context"
	"fmt"

	"github.com/jonathan/md-icon-localize/internal/pipeline"
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan [SRC...]",
	Short: "List the icon names referenced in sources",
	Long:  "Prints the sorted, deduplicated icon names referenced under each SRC (the configured include roots when none is given), one per line.",
	RunE:  runScan,
}

var scanFlags commonFlags

func init() {
	scanFlags.register(scanCmd)

	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := scanFlags.load()
	if err != nil {
		return err
	}
	roots := cfg.Include
	if len(args) > 0 {
		roots = args
	}

	cmd.SilenceUsage = true

	names, err := pipeline.ScanSources(context.Background(), roots, cfg.Extensions, cfg.AdditionalIconNames, cfg.Verbose)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, name := range names {
		_, _ = fmt.Fprintln(out, name)
	}
	return nil
}
