package main

import (
	"incomedash/domain/census"
	"incomedash/internal"
	"incomedash/internal/config"
	"incomedash/internal/dashboard"
	"incomedash/internal/dataset"

	"github.com/spf13/cobra"
)

// reportOptions are the flags shared by every report
type reportOptions struct {
	dataFile     string
	scatterLimit int
	previewRows  int
}

func newRootCmd() *cobra.Command {
	opts := &reportOptions{}
	defaults := config.Default()

	cmd := &cobra.Command{
		Use:           "report",
		Short:         "Print the income dashboards as text",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			internal.SetLevel(internal.ParseLogLevel(cfg.LogLevel))
			if !cmd.Flags().Changed("data") {
				opts.dataFile = cfg.Data.File
			}
			if !cmd.Flags().Changed("scatter-limit") {
				opts.scatterLimit = cfg.Dashboard.ScatterSampleLimit
			}
			opts.previewRows = cfg.Dashboard.PreviewRows
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.dataFile, "data", defaults.Data.File, "dataset file (csv or xlsx)")
	cmd.PersistentFlags().IntVar(&opts.scatterLimit, "scatter-limit", defaults.Dashboard.ScatterSampleLimit, "maximum pair plot rows, 0 for all")

	cmd.AddCommand(newEDACmd(opts), newKPICmd(opts))
	return cmd
}

func (o *reportOptions) selector() *dashboard.Selector {
	loader := dataset.NewLoader(o.dataFile, o.previewRows)
	return dashboard.NewSelector(loader, dashboard.NewRenderer(o.scatterLimit))
}

func newEDACmd(opts *reportOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "eda",
		Short: "Exploratory summary: box statistics, label breakdowns and correlations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := opts.selector().Render(cmd.Context(), dashboard.Request{Mode: dashboard.ModeEDA})
			return printResult(cmd.OutOrStdout(), d, err)
		},
	}
}

func newKPICmd(opts *reportOptions) *cobra.Command {
	var ageMin, ageMax int
	var gender, taxStatus string

	cmd := &cobra.Command{
		Use:   "kpi",
		Short: "Income indicators for one age range, gender and tax status",
		Example: `  report kpi --age-min 18 --age-max 35 --gender Male --tax-status Single
  report kpi --gender Female`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var o census.FilterOverrides
			if cmd.Flags().Changed("age-min") {
				o.AgeMin = &ageMin
			}
			if cmd.Flags().Changed("age-max") {
				o.AgeMax = &ageMax
			}
			if cmd.Flags().Changed("gender") {
				o.Gender = &gender
			}
			if cmd.Flags().Changed("tax-status") {
				o.TaxStatus = &taxStatus
			}

			d, err := opts.selector().Render(cmd.Context(), dashboard.Request{Mode: dashboard.ModeKPI, Overrides: o})
			return printResult(cmd.OutOrStdout(), d, err)
		},
	}

	cmd.Flags().IntVar(&ageMin, "age-min", 0, "lowest age, inclusive")
	cmd.Flags().IntVar(&ageMax, "age-max", 0, "highest age, inclusive (default: oldest in the dataset)")
	cmd.Flags().StringVar(&gender, "gender", census.GenderOptions[0], "Female or Male")
	cmd.Flags().StringVar(&taxStatus, "tax-status", census.TaxStatusOptions[0], "tax status, e.g. Single or Nonfiler")
	return cmd
}
