package template_engine

import "embed"

//go:embed templates
var TemplateFS embed.FS

var TEMPLATES = struct {
	ASSET_LIST     TemplateRef
	FLUTTER_ASSETS TemplateRef
	DEPENDENCIES   TemplateRef
}{
	ASSET_LIST:     TemplateRef{Path: "asset_list.txt.tmpl"},
	FLUTTER_ASSETS: TemplateRef{Path: "flutter_assets.yaml.tmpl"},
	DEPENDENCIES:   TemplateRef{Path: "dependencies.yaml.tmpl"},
}
