package apex

import (
	"fmt"
	"time"
)

type CraftingRotation []CraftingBundle

type CraftingBundle struct {
	Bundle        string          `json:"bundle"`
	Start         int64           `json:"start"`
	End           int64           `json:"end"`
	StartDate     string          `json:"startDate,omitempty"`
	EndDate       string          `json:"endDate,omitempty"`
	BundleType    string          `json:"bundleType"`
	BundleContent []BundleContent `json:"bundleContent"`
}

func (b CraftingBundle) StartTime() time.Time { return epoch(b.Start) }
func (b CraftingBundle) EndTime() time.Time   { return epoch(b.End) }

type BundleContent struct {
	Item     string   `json:"item"`
	Cost     int      `json:"cost"`
	ItemType ItemType `json:"itemType"`
}

type ItemType struct {
	Name      string `json:"name"`
	Rarity    Rarity `json:"rarity"`
	Asset     string `json:"asset"`
	RarityHex string `json:"rarityHex"`
}

func (r CraftingRotation) unknownVariants() []UnknownVariant {
	var unknown []UnknownVariant
	for i, b := range r {
		for j, c := range b.BundleContent {
			if !c.ItemType.Rarity.Known() {
				unknown = append(unknown, UnknownVariant{
					Field: fmt.Sprintf("[%d].bundleContent[%d].itemType.rarity", i, j),
					Value: string(c.ItemType.Rarity),
				})
			}
		}
	}
	return unknown
}

// MapRotation holds the per-mode windows. Modes absent upstream stay nil.
type MapRotation struct {
	BattleRoyale *ModeRotation `json:"battle_royale,omitempty"`
	Arenas       *ModeRotation `json:"arenas,omitempty"`
	Ranked       *ModeRotation `json:"ranked,omitempty"`
	ArenasRanked *ModeRotation `json:"arenasRanked,omitempty"`
	Control      *ModeRotation `json:"control,omitempty"`
}

// Get returns the window pair for one mode, nil if absent or mode is ModeAll.
func (m MapRotation) Get(mode Mode) *ModeRotation {
	switch mode {
	case ModeBattleRoyale:
		return m.BattleRoyale
	case ModeArenas:
		return m.Arenas
	case ModeRanked:
		return m.Ranked
	case ModeArenasRanked:
		return m.ArenasRanked
	case ModeControl:
		return m.Control
	}
	return nil
}

func (m MapRotation) only(mode Mode) MapRotation {
	var out MapRotation
	switch mode {
	case ModeBattleRoyale:
		out.BattleRoyale = m.BattleRoyale
	case ModeArenas:
		out.Arenas = m.Arenas
	case ModeRanked:
		out.Ranked = m.Ranked
	case ModeArenasRanked:
		out.ArenasRanked = m.ArenasRanked
	case ModeControl:
		out.Control = m.Control
	}
	return out
}

type ModeRotation struct {
	Current *MapWindow `json:"current,omitempty"`
	Next    *MapWindow `json:"next,omitempty"`
}

// MapWindow is one scheduled map. Remaining* fields are only set on current.
type MapWindow struct {
	Start             int64  `json:"start"`
	End               int64  `json:"end"`
	ReadableDateStart string `json:"readableDateStart,omitempty"`
	ReadableDateEnd   string `json:"readableDateEnd,omitempty"`
	Map               string `json:"map"`
	Code              string `json:"code"`
	DurationInSecs    int64  `json:"durationInSecs"`
	DurationInMinutes int64  `json:"durationInMinutes"`
	Asset             string `json:"asset,omitempty"`
	RemainingSecs     int64  `json:"remainingSecs,omitempty"`
	RemainingMins     int64  `json:"remainingMins,omitempty"`
	RemainingTimer    string `json:"remainingTimer,omitempty"`
}

func (w MapWindow) StartTime() time.Time { return epoch(w.Start) }
func (w MapWindow) EndTime() time.Time   { return epoch(w.End) }

type StoreListing []StoreOffer

type StoreOffer struct {
	Title           string         `json:"title"`
	Desc            string         `json:"desc"`
	Tag             string         `json:"tag"`
	PurchaseLimit   int            `json:"purchaseLimit"`
	IsAvailable     bool           `json:"isAvailable"`
	ExpireTimestamp int64          `json:"expireTimestamp"`
	ShopType        ShopType       `json:"shopType"`
	OriginalPrice   int            `json:"originalPrice,omitempty"`
	Pricing         []Price        `json:"pricing"`
	Content         []StoreContent `json:"content"`
	OfferID         string         `json:"offerID,omitempty"`
	Asset           string         `json:"asset,omitempty"`
}

func (o StoreOffer) ExpiresAt() time.Time { return epoch(o.ExpireTimestamp) }

type Price struct {
	Ref      Currency `json:"ref"`
	Quantity int      `json:"quantity"`
}

type StoreContent struct {
	Ref      string `json:"ref"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

func (s StoreListing) unknownVariants() []UnknownVariant {
	var unknown []UnknownVariant
	for i, o := range s {
		if o.ShopType != "" && !o.ShopType.Known() {
			unknown = append(unknown, UnknownVariant{
				Field: fmt.Sprintf("[%d].shopType", i),
				Value: string(o.ShopType),
			})
		}
		for j, p := range o.Pricing {
			if !p.Ref.Known() {
				unknown = append(unknown, UnknownVariant{
					Field: fmt.Sprintf("[%d].pricing[%d].ref", i, j),
					Value: string(p.Ref),
				})
			}
		}
	}
	return unknown
}

func epoch(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}
