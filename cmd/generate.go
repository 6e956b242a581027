/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/qoobee/assetgen/core/generator"
	"github.com/qoobee/assetgen/core/logger"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generates the asset list and the pubspec sections",
	Long:  `Runs the assets step followed by the pubspec step.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Debug("generate called")
		wd, cfg, err := loadConfig()
		if err != nil {
			return err
		}

		return generator.NewPipeline(wd, cfg).Run()
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
