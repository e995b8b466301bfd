package apex

import "fmt"

type Platform string

const (
	PlatformPC          Platform = "PC"
	PlatformXbox        Platform = "X1"
	PlatformPlayStation Platform = "PS4"
)

func (p Platform) Valid() bool {
	switch p {
	case PlatformPC, PlatformXbox, PlatformPlayStation:
		return true
	}
	return false
}

// ParsePlatform accepts the wire value or a common alias ("xbox", "psn").
func ParsePlatform(s string) (Platform, error) {
	switch s {
	case "PC", "pc":
		return PlatformPC, nil
	case "X1", "x1", "xbox":
		return PlatformXbox, nil
	case "PS4", "ps4", "psn", "playstation":
		return PlatformPlayStation, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPlatform, s)
}

// Mode keys index the map rotation payload. ModeAll selects the whole payload.
type Mode string

const (
	ModeBattleRoyale Mode = "battle_royale"
	ModeArenas       Mode = "arenas"
	ModeRanked       Mode = "ranked"
	ModeArenasRanked Mode = "arenasRanked"
	ModeControl      Mode = "control"
	ModeAll          Mode = "all"
)

var Modes = []Mode{ModeBattleRoyale, ModeArenas, ModeRanked, ModeArenasRanked, ModeControl}

func (m Mode) Valid() bool {
	if m == ModeAll {
		return true
	}
	for _, known := range Modes {
		if m == known {
			return true
		}
	}
	return false
}

func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
	return m, nil
}

type Rarity string

const (
	RarityCommon Rarity = "Common"
	RarityRare   Rarity = "Rare"
	RarityEpic   Rarity = "Epic"
)

var rarityColors = map[Rarity]string{
	RarityCommon: "#808080",
	RarityRare:   "#0094FF",
	RarityEpic:   "#B200FF",
}

func (r Rarity) Known() bool {
	_, ok := rarityColors[r]
	return ok
}

// Color returns the display color bound to a known rarity.
func (r Rarity) Color() (string, bool) {
	c, ok := rarityColors[r]
	return c, ok
}

type Currency string

const (
	CurrencyApexCoins    Currency = "Apex Coins"
	CurrencyLegendTokens Currency = "Legend Tokens"
)

func (c Currency) Known() bool {
	return c == CurrencyApexCoins || c == CurrencyLegendTokens
}

type ShopType string

const (
	ShopTypeShop     ShopType = "shop"
	ShopTypeSpecials ShopType = "specials"
)

func (s ShopType) Known() bool {
	return s == ShopTypeShop || s == ShopTypeSpecials
}

// UnknownVariant flags an upstream enumeration value outside the known set.
// Field is a JSON path such as "[2].bundleContent[0].itemType.rarity".
type UnknownVariant struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

func (u UnknownVariant) String() string {
	return fmt.Sprintf("%s=%q", u.Field, u.Value)
}
