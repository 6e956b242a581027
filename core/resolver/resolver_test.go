package resolver

import (
	"testing"

	"github.com/qoobee/assetgen/core/config"
	"github.com/stretchr/testify/assert"
)

func newResolver() *Resolver {
	return New(config.Default().Stickers)
}

func TestTargetPath(t *testing.T) {
	r := newResolver()

	tests := []struct {
		set, sticker, want string
	}{
		{"FESTIVE 1", "Festive0_0", "assets/stickers/Festive/Festive0_0.png"},
		{"FESTIVE 2", "Festive1_1", "assets/stickers/Festive/Festive1_1.png"},
		{"LOVE 4", "Love3_0", "assets/stickers/Love/4/Love3_0.png"},
		{"HAPPY 3", "Happy2_1", "assets/stickers/Happy/3/Happy2_1.png"},
		{"ANNOYED 2 (Static)", "Angry1_0", "assets/stickers/Angry/2/Angry1_0.png"},
		{"SAD 1", "Sad0_0", "assets/stickers/Sad/Sad0_0.png"},
		{"PHOTO 1", "Camera0_0", "assets/stickers/Photo/Camera0_0.png"},
		{"EVERYDAY", "Everyday0_0", "assets/stickers/Everyday/Everyday0_0.png"},
		{"BONUS 7", "Bonus0", "assets/stickers/Bonus/7/Bonus0.png"},
		{"love 4", "Love3_1", "assets/stickers/Love/4/Love3_1.png"},
	}

	for _, tt := range tests {
		t.Run(tt.set+"/"+tt.sticker, func(t *testing.T) {
			assert.Equal(t, tt.want, r.TargetPath(tt.set, tt.sticker))
		})
	}
}

func TestSourcePathSharesTargetRule(t *testing.T) {
	r := newResolver()

	assert.Equal(t, "Qoobee-imessage-2024 MessagesExtension/Angry/1/Angry0_0.png", r.SourcePath("ANNOYED 1", "Angry0_0"))
	assert.Equal(t, "Qoobee-imessage-2024 MessagesExtension/Love/4/Love3_0.png", r.SourcePath("LOVE 4", "Love3_0"))
	assert.Equal(t, "Qoobee-imessage-2024 MessagesExtension/Festive/Festive0_0.png", r.SourcePath("FESTIVE 1", "Festive0_0"))
}

func TestCategoryAndSubFolder(t *testing.T) {
	r := newResolver()

	assert.Equal(t, "Angry", r.Category("ANNOYED 1"))
	assert.Equal(t, "Stickers", r.Category("STICKERS"))
	assert.Equal(t, "5", r.SubFolder("EVERYDAY 5"))
	assert.Equal(t, "", r.SubFolder("EVERYDAY"))
	assert.Equal(t, "3", r.SubFolder("HAPPY PACK 3 2"))
	assert.Equal(t, "", r.SubFolder("42"), "the category token itself is never an index")
}

func TestCheck(t *testing.T) {
	r := newResolver()

	assert.Empty(t, r.Check("LOVE 4"))
	assert.Empty(t, r.Check("FESTIVE 9"), "flat categories ignore the index")
	assert.Len(t, r.Check("LOVE 7"), 1)
	assert.Len(t, r.Check("HAPPY"), 1)
	assert.Len(t, r.Check("BONUS 1"), 1)
}
