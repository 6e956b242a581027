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
	assetsInput  string
	assetsOutput string
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Generate asset_list.txt from the sticker data",
	Long: `Reads all_stickers_data.json and writes the sorted, deduplicated list of
Flutter asset paths for every sticker plus the fixed UI and WebP assets.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Debug("assets called")
		wd, cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if assetsInput != "" {
			cfg.Files.StickerData = assetsInput
		}
		if assetsOutput != "" {
			cfg.Files.AssetList = assetsOutput
		}

		_, err = generator.NewPipeline(wd, cfg).GenerateAssetList()
		return err
	},
}

func init() {
	rootCmd.AddCommand(assetsCmd)

	assetsCmd.Flags().StringVarP(&assetsInput, "input", "i", "", "Sticker data JSON (default from config)")
	assetsCmd.Flags().StringVarP(&assetsOutput, "output", "o", "", "Asset list to write (default from config)")
}
