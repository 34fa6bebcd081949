package cmd

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"regaudit/internal/classify"
	"regaudit/internal/registry"
	"regaudit/internal/report"
	"regaudit/internal/stats"
	"regaudit/internal/variants"
)

var (
	asOf       string
	confidence float64
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Run the full registry sample audit",
	Long: `Classify sampled companies by UK-director presence, tally
compliance red flags per group, and print proportion estimates
with margins of error`,
	Run: func(cmd *cobra.Command, args []string) {
		today, err := resolveAsOf()
		if err != nil {
			log.Fatalf("Invalid --as-of date: %v", err)
		}
		if confidence <= 0 || confidence >= 1 {
			log.Fatalf("Confidence level must be between 0 and 1, got %v", confidence)
		}

		uk, err := variants.Load(variantsPath)
		if err != nil {
			log.Fatalf("Failed to load UK variants: %v", err)
		}

		companies, err := registry.Load(samplePath)
		if err != nil {
			log.Fatalf("Failed to load sample: %v", err)
		}

		bar := progressbar.NewOptions(len(companies)*2,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetDescription("[cyan][reset] Classifying companies..."),
			progressbar.OptionShowCount(),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(os.Stderr)
			}),
		)
		tick := func(_, _ int) {
			bar.Add(1)
		}

		counts := classify.CountByUKDirectorStatus(companies, uk, tick)
		metrics := classify.AnalyzeCompliance(companies, uk, today, tick)
		bar.Finish()

		err = report.Write(os.Stdout, report.Audit{
			SampleSize:   len(companies),
			Unrecognized: classify.UnrecognizedCountries(companies, uk),
			Counts:       counts,
			Compliance:   metrics,
			Estimator:    stats.NewEstimator(confidence),
		})
		if err != nil {
			log.Fatalf("Failed to write report: %v", err)
		}
	},
}

// resolveAsOf returns the processing date for lateness checks: the --as-of
// flag when set, otherwise the current UTC date.
func resolveAsOf() (time.Time, error) {
	if asOf == "" {
		return time.Now().UTC(), nil
	}
	return time.Parse("2006-01-02", asOf)
}

func init() {
	rootCmd.AddCommand(auditCmd)
	auditCmd.Flags().StringVar(&asOf, "as-of", "",
		"processing date for lateness checks, YYYY-MM-DD (default: today, UTC)")
	auditCmd.Flags().Float64Var(&confidence, "confidence", 0.95,
		"two-sided confidence level for margins of error")
}
