package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/qoobee/assetgen/core/logger"
	"gopkg.in/yaml.v3"
)

const FileName = "assetgen.yaml"

type Config struct {
	Files    Files    `yaml:"files"`
	Stickers Stickers `yaml:"stickers"`
	UIAssets UIAssets `yaml:"ui_assets"`
	WebP     WebP     `yaml:"webp"`
	Pubspec  Pubspec  `yaml:"pubspec"`
}

type Files struct {
	StickerData string `yaml:"sticker_data"`
	AssetList   string `yaml:"asset_list"`
	Pubspec     string `yaml:"pubspec"`
}

type Stickers struct {
	TargetPrefix string `yaml:"target_prefix"`
	SourceRoot   string `yaml:"source_root"`

	// Categories maps the upper-cased first token of a set name to its directory.
	Categories map[string]string `yaml:"categories"`

	// Flat categories keep every sticker directly under the category directory.
	Flat []string `yaml:"flat"`

	// Exempt packs are expected to be empty and are never flagged.
	Exempt []string `yaml:"exempt"`

	// Layout lists the numbered sub-folders that exist per category in the source tree.
	Layout map[string][]string `yaml:"layout"`
}

type AssetMapping struct {
	Source string `yaml:"source"`
	Target string `yaml:"target"`
}

type UIAssets struct {
	Mappings     []AssetMapping `yaml:"mappings"`
	BannerSource string         `yaml:"banner_source"`
	BannerTarget string         `yaml:"banner_target"`
	BannerCount  int            `yaml:"banner_count"`
	FooterBanner string         `yaml:"footer_banner"`
}

type WebP struct {
	Source string   `yaml:"source"`
	Target string   `yaml:"target"`
	Files  []string `yaml:"files"`
}

// Dependency is one entry of the generated dependencies block. An entry with
// no name renders as a bare comment line.
type Dependency struct {
	Name    string `yaml:"name,omitempty"`
	Version string `yaml:"version,omitempty"`
	SDK     string `yaml:"sdk,omitempty"`
	Comment string `yaml:"comment,omitempty"`
}

type Pubspec struct {
	UsesMaterialDesign bool         `yaml:"uses_material_design"`
	Dependencies       []Dependency `yaml:"dependencies"`
}

const sourceRoot = "Qoobee-imessage-2024 MessagesExtension"

func Default() *Config {
	return &Config{
		Files: Files{
			StickerData: "all_stickers_data.json",
			AssetList:   "asset_list.txt",
			Pubspec:     "pubspec_sections.yaml",
		},
		Stickers: Stickers{
			TargetPrefix: "assets/stickers",
			SourceRoot:   sourceRoot,
			Categories: map[string]string{
				"ANNOYED":  "Angry",
				"EVERYDAY": "Everyday",
				"FESTIVE":  "Festive",
				"HAPPY":    "Happy",
				"LOVE":     "Love",
				"PHOTO":    "Photo",
				"SAD":      "Sad",
			},
			Flat:   []string{"Festive", "Photo", "Sad"},
			Exempt: []string{"FAVOURITES", "RECENT", "INFO"},
			Layout: map[string][]string{
				"Angry":    {"1", "2"},
				"Everyday": {"1", "2", "3", "4", "5"},
				"Festive":  {},
				"Happy":    {"1", "2", "3", "4", "5"},
				"Love":     {"1", "2", "3", "4"},
				"Photo":    {},
				"Sad":      {},
			},
		},
		UIAssets: UIAssets{
			Mappings: []AssetMapping{
				{"Assets.xcassets/New Sticker Indicator.imageset/New Sticker Indicator.png", "assets/ui_elements/New Sticker Indicator.png"},
				{"Assets.xcassets/RestoreIcon.imageset/RestoreIcon.png", "assets/ui_elements/RestoreIcon.png"},
				{"Assets.xcassets/ShoppingBagWhite.imageset/ShoppingBagWhite.png", "assets/ui_elements/ShoppingBagWhite.png"},
				{"Assets.xcassets/whatsapp.imageset/whatsapp-3.png", "assets/ui_elements/whatsapp.png"},
				{sourceRoot + "/Backgrounds/AddBanner.png", "assets/ui_elements/AddBanner.png"},
				{sourceRoot + "/Backgrounds/Background.png", "assets/ui_elements/Background.png"},
				{sourceRoot + "/Backgrounds/QooBeeInfo.png", "assets/ui_elements/QooBeeInfo.png"},
				{sourceRoot + "/Backgrounds/RemoveBanner.png", "assets/ui_elements/RemoveBanner.png"},
				{sourceRoot + "/Backgrounds/UnlockBanner.png", "assets/ui_elements/UnlockBanner.png"},
				{"Assets.xcassets/iMessage App Icon.stickersiconset/marketing-1024x1024.png", "assets/ui_elements/app_logo_large.png"},
				{"Assets.xcassets/iMessage App Icon.stickersiconset/marketing-1024x768.png", "assets/ui_elements/app_logo_wide.png"},
			},
			BannerSource: sourceRoot + "/Banners",
			BannerTarget: "assets/ui_elements",
			BannerCount:  9,
			FooterBanner: "FooterBanner.png",
		},
		WebP: WebP{
			Source: sourceRoot + "/FestiveWA",
			Target: "assets/stickers_webp/FestiveWA",
			Files: []string{
				"WhatsApp_Annoyed1_Static_FD1.webp",
				"wa_day_festive_fd491.webp",
				"wa_day_festive_fd492.webp",
				"wa_day_festive_fd493.webp",
				"wa_day_festive_fd494.webp",
				"wa_day_festive_fd495.webp",
				"wa_day_festive_fd496.webp",
				"wa_day_festive_tray.webp",
			},
		},
		Pubspec: Pubspec{
			UsesMaterialDesign: true,
			Dependencies: []Dependency{
				{Name: "flutter", SDK: "flutter"},
				{Name: "cupertino_icons", Version: "^1.0.2"},
				{Name: "in_app_purchase", Version: "^3.1.0", Comment: "Or latest compatible"},
				{Name: "shared_preferences", Version: "^2.2.0", Comment: "Or latest compatible"},
				{Comment: "For WebP/GIF display, consider packages like flutter_webp_and_gif or lottie:"},
				{Comment: "e.g., flutter_cache_manager for network assets, or a local asset webp viewer"},
				{Comment: "For WhatsApp integration or opening URLs:"},
				{Name: "url_launcher", Version: "^6.0.0", Comment: "Or latest compatible (check latest version)"},
				{Name: "flutter_webp_and_gif", Version: "^0.0.4", Comment: "Example, check for latest and suitability"},
			},
		},
	}
}

// Load reads assetgen.yaml from dir. Keys present in the file replace the
// corresponding defaults; everything else keeps its built-in value.
func Load(dir string) (*Config, error) {
	filePath := filepath.Join(dir, FileName)

	if _, err := os.Stat(filePath); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error checking for %s: %w", filePath, err)
		}
		logger.Debug("No config file found, using default config")
		return Default(), nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", filePath, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	logger.Debug("Config file found: %s", filePath)

	return cfg, nil
}

func Marshal(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}
