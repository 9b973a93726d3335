package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/adaforge/acase/formatter"
	"github.com/adaforge/acase/norm"
)

var (
	outDir string
	dryRun bool
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize [directory]",
	Short: "Rewrite identifier casing for every matching file in a directory",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide a source directory")
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		engine, config, err := norm.New(cfgFile)
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}

		dir := args[0]
		resolvedOut := norm.ResolveOutDir(dir, outDir, config)

		results, err := norm.ProcessDir(ctx, logger, engine, dir, resolvedOut, config.Suffix, dryRun)
		if err != nil {
			logger.Error("Error processing directory", zap.String("dir", dir), zap.Error(err))
			os.Exit(1)
		}

		if dryRun {
			for _, result := range results {
				fmt.Println(formatter.GeneratePreview(result))
			}
		}
	},
}

func init() {
	normalizeCmd.Flags().StringVarP(&outDir, "out-dir", "o", "", "Output directory for rewritten files (default: <directory>/_normalized)")
	normalizeCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the rewrite without writing any file")
}
