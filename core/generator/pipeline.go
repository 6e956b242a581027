package generator

import (
	"fmt"
	"path/filepath"

	"github.com/qoobee/assetgen/core/assets"
	"github.com/qoobee/assetgen/core/config"
	"github.com/qoobee/assetgen/core/logger"
	"github.com/qoobee/assetgen/core/pubspec"
)

// Pipeline runs the asset list step followed by the pubspec step, with every
// file resolved relative to wd.
type Pipeline struct {
	wd  string
	cfg *config.Config
}

func NewPipeline(wd string, cfg *config.Config) *Pipeline {
	return &Pipeline{wd: wd, cfg: cfg}
}

func (p *Pipeline) path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(p.wd, name)
}

func (p *Pipeline) StickerDataPath() string { return p.path(p.cfg.Files.StickerData) }
func (p *Pipeline) AssetListPath() string { return p.path(p.cfg.Files.AssetList) }
func (p *Pipeline) PubspecPath() string { return p.path(p.cfg.Files.Pubspec) }

func (p *Pipeline) GenerateAssetList() (int, error) {
	count, err := assets.NewGenerator(p.cfg).Generate(p.StickerDataPath(), p.AssetListPath())
	if err != nil {
		return 0, fmt.Errorf("failed to generate %s: %w", p.cfg.Files.AssetList, err)
	}

	logger.Info("Successfully generated %s with %d asset paths.", p.cfg.Files.AssetList, count)
	return count, nil
}

func (p *Pipeline) GeneratePubspecSections() error {
	if _, err := pubspec.NewGenerator(p.cfg).Generate(p.AssetListPath(), p.PubspecPath()); err != nil {
		return fmt.Errorf("failed to generate pubspec sections: %w", err)
	}

	logger.Info("Successfully generated %s", p.cfg.Files.Pubspec)
	return nil
}

func (p *Pipeline) Run() error {
	if _, err := p.GenerateAssetList(); err != nil {
		return err
	}
	return p.GeneratePubspecSections()
}
