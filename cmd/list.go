/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"strconv"

	"github.com/qoobee/assetgen/core/generator"
	"github.com/qoobee/assetgen/core/logger"
	"github.com/qoobee/assetgen/core/models"
	"github.com/qoobee/assetgen/core/resolver"
	"github.com/qoobee/assetgen/core/stickers"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the sticker packs and where they resolve to",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Debug("list called")
		wd, cfg, err := loadConfig()
		if err != nil {
			return err
		}

		catalog, err := stickers.Load(generator.NewPipeline(wd, cfg).StickerDataPath())
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), packTable(resolver.New(cfg.Stickers), catalog))
		fmt.Fprintf(cmd.OutOrStdout(), "%d packs, %d stickers\n", len(catalog.Packs()), catalog.StickerCount())
		return nil
	},
}

func packTable(r *resolver.Resolver, catalog models.Catalog) string {
	headers := []string{"Group", "Set", "Directory", "Stickers", "Locked", "Purchase ID"}

	var rows [][]string
	for i, group := range catalog {
		for _, pack := range group {
			dir := r.Category(pack.SetName)
			if sub := r.SubFolder(pack.SetName); sub != "" && !r.IsFlat(dir) {
				dir += "/" + sub
			}
			if pack.IsEmpty() {
				dir = "-"
			}
			locked := ""
			if pack.IsLocked {
				locked = "yes"
			}
			rows = append(rows, []string{
				strconv.Itoa(i),
				pack.SetName,
				dir,
				strconv.Itoa(len(pack.Names)),
				locked,
				pack.PurchaseID,
			})
		}
	}

	return renderTable(headers, rows, 0, 3)
}

func init() {
	rootCmd.AddCommand(listCmd)
}
