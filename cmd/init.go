/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/qoobee/assetgen/core/config"
	"github.com/qoobee/assetgen/core/logger"
	"github.com/qoobee/assetgen/core/template_engine"
	"github.com/spf13/cobra"
)

var (
	force bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default assetgen.yaml",
	Long: `Writes assetgen.yaml with the built-in category, layout, UI asset and
dependency tables so they can be edited.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Debug("init called")
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}

		path := filepath.Join(wd, config.FileName)
		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("%s already exists. Use --force to overwrite", config.FileName)
		}

		data, err := config.Marshal(config.Default())
		if err != nil {
			return err
		}
		if err := template_engine.WriteFile(path, data); err != nil {
			return err
		}

		logger.Info("Wrote %s", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&force, "force", false, "Force overwrite existing files")
}
