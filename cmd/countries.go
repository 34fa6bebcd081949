package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"regaudit/internal/classify"
	"regaudit/internal/registry"
	"regaudit/internal/report"
	"regaudit/internal/variants"
)

var countriesCmd = &cobra.Command{
	Use:   "countries",
	Short: "List director country spellings not recognized as UK",
	Long: `Scan the sample for every distinct director country spelling and
print those the variant list does not classify as UK, so the list
can be extended before an audit run`,
	Run: func(cmd *cobra.Command, args []string) {
		uk, err := variants.Load(variantsPath)
		if err != nil {
			log.Fatalf("Failed to load UK variants: %v", err)
		}

		companies, err := registry.Load(samplePath)
		if err != nil {
			log.Fatalf("Failed to load sample: %v", err)
		}

		unrecognized := classify.UnrecognizedCountries(companies, uk)
		if err := report.WriteCountries(os.Stdout, unrecognized); err != nil {
			log.Fatalf("Failed to write report: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(countriesCmd)
}
