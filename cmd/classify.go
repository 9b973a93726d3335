package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/adaforge/acase/formatter"
	"github.com/adaforge/acase/norm"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [file]",
	Short: "Print the casing mapping derived for a single file",
	Long: `Shows every canonical identifier the heuristics classified in the file,
its assigned spelling, and the stage that decided it.
Example) acase classify src/counter.ada`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide a file path")
			os.Exit(1)
		}

		engine, _, err := norm.New(cfgFile)
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}

		source, err := os.ReadFile(args[0])
		if err != nil {
			logger.Error("Error reading file", zap.String("file", args[0]), zap.Error(err))
			os.Exit(1)
		}

		fmt.Print(formatter.GenerateMappingTable(engine.Classify(source)))
	},
}
