package stickers

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/qoobee/assetgen/core/logger"
	"github.com/qoobee/assetgen/core/models"
)

var (
	ErrInputNotFound  = errors.New("sticker data not found")
	ErrMalformedInput = errors.New("could not decode sticker data")
)

func Load(path string) (models.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var catalog models.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedInput, path, err)
	}

	logger.Debug("Loaded %d category groups (%d stickers) from %s", len(catalog), catalog.StickerCount(), path)
	return catalog, nil
}
