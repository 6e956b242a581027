/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/qoobee/assetgen/core/generator"
	"github.com/qoobee/assetgen/core/logger"
	"github.com/spf13/cobra"
)

var (
	pubspecInput  string
	pubspecOutput string
)

var pubspecCmd = &cobra.Command{
	Use:   "pubspec",
	Short: "Generate pubspec_sections.yaml from the asset list",
	Long: `Reads asset_list.txt and writes the flutter assets section and the
dependencies section for pasting into pubspec.yaml.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Debug("pubspec called")
		wd, cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if pubspecInput != "" {
			cfg.Files.AssetList = pubspecInput
		}
		if pubspecOutput != "" {
			cfg.Files.Pubspec = pubspecOutput
		}

		return generator.NewPipeline(wd, cfg).GeneratePubspecSections()
	},
}

func init() {
	rootCmd.AddCommand(pubspecCmd)

	pubspecCmd.Flags().StringVarP(&pubspecInput, "input", "i", "", "Asset list to read (default from config)")
	pubspecCmd.Flags().StringVarP(&pubspecOutput, "output", "o", "", "Pubspec sections file to write (default from config)")
}
