package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/lexecon/lost-earnings-calculator/internal/calculation"
	"github.com/lexecon/lost-earnings-calculator/internal/config"
	"github.com/lexecon/lost-earnings-calculator/internal/output"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "lostearn",
	Short: "Lost-earnings damages calculator",
	Long:  "Forensic-economics calculator producing annual lost-earnings schedules for personal injury and wrongful death matters",
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [case-file]",
	Short: "Run a full loss analysis from a case file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		caseFile, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		engine := calculation.NewLossEngine()
		debugMode, _ := cmd.Flags().GetBool("debug")
		if debugMode {
			engine.SetLogger(simpleCLILogger{})
		}

		analysis, err := engine.RunAnalysis(context.Background(), caseFile)
		if err != nil {
			log.Fatal(err)
		}

		outputFormat, _ := cmd.Flags().GetString("format")
		outputPath, _ := cmd.Flags().GetString("output")
		toFile, _ := cmd.Flags().GetBool("save")

		if toFile {
			filename, err := output.GenerateReport(analysis, outputFormat)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Printf("Report written to %s\n", filename)
			return
		}

		f := output.GetFormatterByName(outputFormat)
		if f == nil {
			log.Fatalf("unknown format %q", outputFormat)
		}
		data, err := f.Format(analysis)
		if err != nil {
			log.Fatal(err)
		}
		if outputPath != "" {
			if err := os.WriteFile(outputPath, data, 0644); err != nil {
				log.Fatal(err)
			}
			fmt.Printf("Report written to %s\n", outputPath)
			return
		}
		os.Stdout.Write(data)
	},
}

var aefCmd = &cobra.Command{
	Use:   "aef [case-file]",
	Short: "Print the adjusted earnings factor ledger for a case file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		caseFile, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		analysis, err := calculation.NewLossEngine().RunAnalysis(context.Background(), caseFile)
		if err != nil {
			log.Fatal(err)
		}

		for _, step := range analysis.Breakdown.Steps {
			fmt.Printf("%-28s %10s%%   %-24s %s\n",
				step.Label,
				step.Percentage.StringFixed(2),
				step.Formula,
				step.Result.StringFixed(6))
		}
		fmt.Printf("\nFinal AEF: %s (%s%%)\n",
			analysis.Breakdown.FinalAEF.StringFixed(6),
			analysis.Breakdown.FinalAEF.Mul(decimal.NewFromInt(100)).StringFixed(2))
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [case-file]",
	Short: "Validate a case file without running the analysis",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		if _, err := parser.LoadFromFile(args[0]); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Case file %s is valid\n", args[0])
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "lostearn %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Version)
			}
		},
	}
}

func main() {
	calculateCmd.Flags().String("format", "console", "Output format (console, csv, json, html, pdf)")
	calculateCmd.Flags().String("output", "", "Write the report to the given path instead of stdout")
	calculateCmd.Flags().Bool("save", false, "Write the report to a timestamped file instead of stdout")
	calculateCmd.Flags().Bool("debug", false, "Enable verbose engine logging")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(aefCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
