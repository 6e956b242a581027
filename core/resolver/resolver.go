package resolver

import (
	"fmt"
	"slices"
	"strings"

	"github.com/qoobee/assetgen/core/config"
	"github.com/qoobee/assetgen/core/shared"
)

// Resolver derives where a sticker lives, both in the Flutter bundle and in
// the iOS extension it was exported from. Source and target share one rule
// and differ only by their root.
type Resolver struct {
	targetPrefix string
	sourceRoot   string
	categories   map[string]string
	flat         []string
	layout       map[string][]string
}

func New(cfg config.Stickers) *Resolver {
	return &Resolver{
		targetPrefix: cfg.TargetPrefix,
		sourceRoot:   cfg.SourceRoot,
		categories:   cfg.Categories,
		flat:         cfg.Flat,
		layout:       cfg.Layout,
	}
}

func categoryToken(setName string) string {
	return strings.Split(setName, " ")[0]
}

// Category maps the first token of a set name to its directory, falling back
// to the capitalised token when it is not a known category.
func (r *Resolver) Category(setName string) string {
	token := categoryToken(setName)
	if dir, ok := r.categories[strings.ToUpper(token)]; ok {
		return dir
	}
	return shared.Capitalize(token)
}

// SubFolder returns the first purely numeric token after the category, or "".
func (r *Resolver) SubFolder(setName string) string {
	parts := strings.Split(setName, " ")
	for _, part := range parts[1:] {
		if shared.IsDigits(part) {
			return part
		}
	}
	return ""
}

func (r *Resolver) IsFlat(category string) bool {
	return slices.Contains(r.flat, category)
}

func (r *Resolver) relative(setName, sticker string) string {
	category := r.Category(setName)
	file := sticker + ".png"

	// Plain concatenation keeps sticker names verbatim; path.Join would clean them.
	if r.IsFlat(category) {
		return category + "/" + file
	}
	if sub := r.SubFolder(setName); sub != "" {
		return category + "/" + sub + "/" + file
	}
	return category + "/" + file
}

func (r *Resolver) TargetPath(setName, sticker string) string {
	return r.targetPrefix + "/" + r.relative(setName, sticker)
}

func (r *Resolver) SourcePath(setName, sticker string) string {
	return r.sourceRoot + "/" + r.relative(setName, sticker)
}

// Check cross-references a set name against the known source layout and
// returns a description of every mismatch. It never alters the derived path.
func (r *Resolver) Check(setName string) []string {
	var problems []string

	category := r.Category(setName)
	known, ok := r.layout[category]
	if !ok {
		problems = append(problems, fmt.Sprintf("%q: category %s is not in the source layout", setName, category))
		return problems
	}

	if r.IsFlat(category) {
		return problems
	}

	sub := r.SubFolder(setName)
	switch {
	case sub == "":
		problems = append(problems, fmt.Sprintf("%q: no sub-folder index, stickers resolve directly under %s/", setName, category))
	case !slices.Contains(known, sub):
		problems = append(problems, fmt.Sprintf("%q: sub-folder %s/%s does not exist in the source layout", setName, category, sub))
	}

	return problems
}
