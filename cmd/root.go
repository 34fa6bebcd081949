package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	samplePath   string
	variantsPath string
)

var rootCmd = &cobra.Command{
	Use:   "regaudit",
	Short: "Company registry sample audit",
	Long: `A statistical audit tool for sampled company registry records,
estimating UK-director presence and compliance red-flag rates`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&samplePath, "sample", "",
		"sampled companies JSON file (required)")
	rootCmd.PersistentFlags().StringVar(&variantsPath, "variants", "",
		"UK variant list, one spelling per line (required)")
	rootCmd.MarkPersistentFlagRequired("sample")
	rootCmd.MarkPersistentFlagRequired("variants")
}
