/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/qoobee/assetgen/core/assets"
	"github.com/qoobee/assetgen/core/generator"
	"github.com/qoobee/assetgen/core/logger"
	"github.com/qoobee/assetgen/core/models"
	"github.com/qoobee/assetgen/core/resolver"
	"github.com/qoobee/assetgen/core/stickers"
	"github.com/spf13/cobra"
)

var sourceRoot string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Cross-check sticker sets against the iOS source layout",
	Long: `Reports sticker sets whose category or sub-folder does not match the known
layout of the iMessage extension. With --source-root, also verifies that the
source file behind every generated asset exists on disk.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Debug("check called")
		wd, cfg, err := loadConfig()
		if err != nil {
			return err
		}

		catalog, err := stickers.Load(generator.NewPipeline(wd, cfg).StickerDataPath())
		if err != nil {
			return err
		}

		r := resolver.New(cfg.Stickers)
		problems := layoutProblems(r, catalog)
		for _, p := range problems {
			logger.Warn("%s", p)
		}

		if sourceRoot == "" {
			logger.Info("Checked %d packs, %d layout warnings", len(catalog.Packs()), len(problems))
			return nil
		}

		var sources []string
		for _, pack := range catalog.Packs() {
			if pack.IsEmpty() {
				continue
			}
			for _, name := range pack.Names {
				sources = append(sources, r.SourcePath(pack.SetName, name))
			}
		}
		for _, m := range assets.NewGenerator(cfg).FixedMappings() {
			sources = append(sources, m.Source)
		}

		missing := missingFiles(sourceRoot, sources)
		for _, m := range missing {
			logger.Warn("Missing source file: %s", m)
		}
		logger.Info("Checked %d source files, %d missing", len(sources), len(missing))

		if len(missing) > 0 {
			return fmt.Errorf("%d source files are missing under %s", len(missing), sourceRoot)
		}
		return nil
	},
}

// layoutProblems returns the resolver warnings for each distinct non-empty set.
func layoutProblems(r *resolver.Resolver, catalog models.Catalog) []string {
	seen := make(map[string]bool)
	var problems []string
	for _, pack := range catalog.Packs() {
		if pack.IsEmpty() || seen[pack.SetName] {
			continue
		}
		seen[pack.SetName] = true
		problems = append(problems, r.Check(pack.SetName)...)
	}
	return problems
}

func missingFiles(root string, relPaths []string) []string {
	seen := make(map[string]bool)
	var missing []string
	for _, rel := range relPaths {
		if seen[rel] {
			continue
		}
		seen[rel] = true
		if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel))); err != nil {
			missing = append(missing, rel)
		}
	}
	return missing
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&sourceRoot, "source-root", "", "Directory containing the iOS project to verify source files against")
}
