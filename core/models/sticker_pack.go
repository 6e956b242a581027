package models

// StickerPack mirrors one entry of all_stickers_data.json.
type StickerPack struct {
	SetName    string   `json:"stickerSetName"`
	Names      []string `json:"stickerNames"`
	PurchaseID string   `json:"purchaseId,omitempty"`
	IsLocked   bool     `json:"isLocked,omitempty"`
}

func (p StickerPack) IsEmpty() bool {
	return p.SetName == "" || len(p.Names) == 0
}

// Catalog is the outer array of category groups, each holding its packs.
type Catalog [][]StickerPack

func (c Catalog) Packs() []StickerPack {
	var packs []StickerPack
	for _, group := range c {
		packs = append(packs, group...)
	}
	return packs
}

func (c Catalog) StickerCount() int {
	total := 0
	for _, group := range c {
		for _, pack := range group {
			total += len(pack.Names)
		}
	}
	return total
}
