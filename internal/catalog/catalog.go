package catalog

import "errors"

// Rarity is the in-game rarity tier of an item.
type Rarity string

const (
	RarityJunk      Rarity = "Junk"
	RarityCommon    Rarity = "Common"
	RarityUncommon  Rarity = "Uncommon"
	RarityRare      Rarity = "Rare"
	RarityEpic      Rarity = "Epic"
	RarityLegendary Rarity = "Legendary"
)

// ItemType is the broad category of an item.
type ItemType string

const (
	TypeWeapon     ItemType = "Weapon"
	TypeArmor      ItemType = "Armor"
	TypeMaterial   ItemType = "Material"
	TypeConsumable ItemType = "Consumable"
	TypeTrinket    ItemType = "Trinket"
)

// Entry is a single item in the game item catalog. The catalog is synced
// from external game data and is read-only to everything except the sync.
type Entry struct {
	ID        string
	Name      string
	Rarity    Rarity
	Type      ItemType
	IconURL   string
	StackSize int
	SellValue int
}

// ErrInvalidEntry marks a catalog entry missing its required fields.
var ErrInvalidEntry = errors.New("catalog entry missing id or name")

// Validate rejects entries without an ID or a name. Matching relies on both,
// so bad entries are refused here rather than surfacing mid-match.
func (e Entry) Validate() error {
	if e.ID == "" || e.Name == "" {
		return ErrInvalidEntry
	}

	return nil
}
