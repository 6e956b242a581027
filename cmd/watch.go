/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/qoobee/assetgen/core/config"
	"github.com/qoobee/assetgen/core/generator"
	"github.com/qoobee/assetgen/core/logger"
	"github.com/qoobee/assetgen/core/watcher"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate whenever the sticker data or config changes",
	Long: `Runs generate once, then watches the sticker data file and assetgen.yaml
and regenerates both outputs whenever either changes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Debug("watch called")
		wd, cfg, err := loadConfig()
		if err != nil {
			return err
		}

		pipeline := generator.NewPipeline(wd, cfg)
		if err := pipeline.Run(); err != nil {
			logger.Error("%v", err)
		}

		files := []string{pipeline.StickerDataPath(), filepath.Join(wd, config.FileName)}
		fw, err := watcher.NewFileWatcher(files, func() error {
			_, cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return generator.NewPipeline(wd, cfg).Run()
		})
		if err != nil {
			return fmt.Errorf("failed to start watcher: %w", err)
		}
		defer fw.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger.Info("Watching %s for changes", pipeline.StickerDataPath())
		return fw.Watch(ctx)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
