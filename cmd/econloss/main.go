package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/myanez987/Forensic-Econ-Loss-Calc/internal/calculation"
	"github.com/myanez987/Forensic-Econ-Loss-Calc/internal/config"
	"github.com/myanez987/Forensic-Econ-Loss-Calc/internal/output"
	"github.com/myanez987/Forensic-Econ-Loss-Calc/internal/server"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "econloss",
		Short: "Forensic economic loss calculator for wrongful-death cases",
		Long: `econloss projects a decedent's remaining expected earnings, discounts
them to present value and renders an auditable report citing every
table row and override the calculation consumed.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCmd() *cobra.Command {
	var (
		inputPath    string
		settingsPath string
		outputDir    string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a single case and write its report",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, logger, err := bootstrap(settingsPath)
			if err != nil {
				return err
			}
			defer func() {
				_ = logger.Sync()
			}()

			refTables, err := settings.ResolveTables()
			if err != nil {
				return fmt.Errorf("load reference tables: %w", err)
			}

			parser := config.NewInputParser()
			caseConfig, err := parser.LoadFromFile(inputPath)
			if err != nil {
				return err
			}

			engine := calculation.NewCalculationEngine(refTables, logger)
			result, err := engine.RunCase(caseConfig)
			if err != nil {
				return err
			}

			dir := settings.Output.Directory
			if outputDir != "" {
				dir = outputDir
			}
			writer := output.NewReportWriter(dir)
			sheets, err := writer.WriteWorkbook(result)
			if err != nil {
				return err
			}
			summaryPath, err := writer.WriteSummary(result)
			if err != nil {
				return err
			}

			logger.Info("report written",
				zap.String("op", "main.run"),
				zap.String("case_id", result.CaseID),
				zap.Int("sheets", len(sheets)),
				zap.String("summary", summaryPath),
			)

			summary := output.BuildSummary(result)
			fmt.Fprintf(cmd.OutOrStdout(), "Case %s\n", summary.CaseID)
			fmt.Fprintf(cmd.OutOrStdout(), "  Life expectancy:  %s years\n", summary.LifeExpectancyYears.StringFixed(2))
			fmt.Fprintf(cmd.OutOrStdout(), "  Worklife:         %s years\n", summary.WorklifeRemainingYrs.StringFixed(2))
			fmt.Fprintf(cmd.OutOrStdout(), "  Discount rate:    %s%%\n", summary.DiscountRatePct.StringFixed(2))
			fmt.Fprintf(cmd.OutOrStdout(), "  Total loss (PV):  $%s\n", summary.TotalEconomicLossUSD.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "case configuration YAML file (required)")
	cmd.Flags().StringVarP(&settingsPath, "settings", "s", "", "application settings YAML file")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "report output directory (overrides settings)")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func serveCmd() *cobra.Command {
	var (
		settingsPath string
		address      string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the case evaluation API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, logger, err := bootstrap(settingsPath)
			if err != nil {
				return err
			}
			defer func() {
				_ = logger.Sync()
			}()

			refTables, err := settings.ResolveTables()
			if err != nil {
				return fmt.Errorf("load reference tables: %w", err)
			}

			addr := settings.Server.Address
			if address != "" {
				addr = address
			}

			engine := calculation.NewCalculationEngine(refTables, logger)
			return server.New(engine, logger).ListenAndServe(addr)
		},
	}

	cmd.Flags().StringVarP(&settingsPath, "settings", "s", "", "application settings YAML file")
	cmd.Flags().StringVarP(&address, "address", "a", "", "listen address (overrides settings)")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "econloss %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

func bootstrap(settingsPath string) (*config.Settings, *zap.Logger, error) {
	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		return nil, nil, err
	}
	logger, err := config.InitializeLogger(settings.Logging)
	if err != nil {
		return nil, nil, err
	}
	return settings, logger, nil
}
