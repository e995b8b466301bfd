package apex

import (
	"errors"
	"testing"
)

func TestWireValues(t *testing.T) {
	platforms := map[Platform]string{
		PlatformPC:          "PC",
		PlatformXbox:        "X1",
		PlatformPlayStation: "PS4",
	}
	for p, want := range platforms {
		if string(p) != want {
			t.Fatalf("platform %q should be %q", p, want)
		}
	}

	modes := map[Mode]string{
		ModeBattleRoyale: "battle_royale",
		ModeArenas:       "arenas",
		ModeRanked:       "ranked",
		ModeArenasRanked: "arenasRanked",
		ModeControl:      "control",
		ModeAll:          "all",
	}
	for m, want := range modes {
		if string(m) != want {
			t.Fatalf("mode %q should be %q", m, want)
		}
	}
}

func TestParsePlatform(t *testing.T) {
	for in, want := range map[string]Platform{"pc": PlatformPC, "X1": PlatformXbox, "psn": PlatformPlayStation} {
		got, err := ParsePlatform(in)
		if err != nil || got != want {
			t.Fatalf("ParsePlatform(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParsePlatform("switch"); !errors.Is(err, ErrUnknownPlatform) {
		t.Fatalf("expected ErrUnknownPlatform, got %v", err)
	}
	if Platform("SWITCH").Valid() || !PlatformPlayStation.Valid() {
		t.Fatal("platform set is closed")
	}
}

func TestParseMode(t *testing.T) {
	if m, err := ParseMode("arenasRanked"); err != nil || m != ModeArenasRanked {
		t.Fatalf("unexpected %q, %v", m, err)
	}
	if _, err := ParseMode("ltm"); !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("expected ErrUnknownMode, got %v", err)
	}
}

func TestRarityColors(t *testing.T) {
	tests := []struct {
		rarity Rarity
		color  string
		known  bool
	}{
		{RarityCommon, "#808080", true},
		{RarityRare, "#0094FF", true},
		{RarityEpic, "#B200FF", true},
		{Rarity("Legendary"), "", false},
		{Rarity("common"), "", false},
	}
	for _, tt := range tests {
		color, ok := tt.rarity.Color()
		if color != tt.color || ok != tt.known || tt.rarity.Known() != tt.known {
			t.Fatalf("%q: got %q %v", tt.rarity, color, ok)
		}
	}
}

func TestCurrencyAndShopType(t *testing.T) {
	if !CurrencyApexCoins.Known() || !CurrencyLegendTokens.Known() || Currency("apex coins").Known() {
		t.Fatal("currency set is closed and case-sensitive")
	}
	if !ShopTypeShop.Known() || !ShopTypeSpecials.Known() || ShopType("bundle").Known() {
		t.Fatal("shop type set is closed")
	}
}
