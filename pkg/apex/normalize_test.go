package apex

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestMissingSections(t *testing.T) {
	tests := []struct {
		name  string
		stats PlayerStats
		want  []string
	}{
		{
			name: "complete",
			stats: PlayerStats{
				Global:  &Global{},
				Legends: &Legends{Selected: &SelectedLegend{}},
				Total:   &Total{},
			},
		},
		{
			name:  "empty",
			stats: PlayerStats{},
			want:  []string{"global", "legends.selected", "total"},
		},
		{
			name: "legends without selection",
			stats: PlayerStats{
				Global:  &Global{},
				Legends: &Legends{All: map[string]LegendEntry{}},
				Total:   &Total{},
			},
			want: []string{"legends.selected"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := missingSections(&tt.stats)
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		body string
		want string
		ok   bool
	}{
		{`{"Error":"Player x not found"}`, "Player x not found", true},
		{`{"error":"bad key"}`, "bad key", true},
		{`  {"Error":""}`, "", true},
		{`{"global":{}}`, "", false},
		{`[{"Error":"x"}]`, "", false},
		{`garbage`, "", false},
		{``, "", false},
	}

	for _, tt := range tests {
		got, ok := errorMessage([]byte(tt.body))
		if got != tt.want || ok != tt.ok {
			t.Fatalf("errorMessage(%q) = %q, %v; want %q, %v", tt.body, got, ok, tt.want, tt.ok)
		}
	}
}

func TestUpstreamTextTruncatesLongBodies(t *testing.T) {
	body := strings.Repeat("x", maxErrorText*2)
	got := upstreamText(response{status: 500, body: []byte(body)})
	if len(got) != maxErrorText {
		t.Fatalf("expected %d chars, got %d", maxErrorText, len(got))
	}
}

func TestUpstreamTextKeepsRunesWhole(t *testing.T) {
	body := strings.Repeat("x", maxErrorText-1) + "é tail"
	got := upstreamText(response{status: 500, body: []byte(body)})
	if !utf8.ValidString(got) {
		t.Fatalf("truncated text is not valid UTF-8: %q", got)
	}
	if got != strings.Repeat("x", maxErrorText-1) {
		t.Fatalf("expected the cut before the split rune, got %d bytes", len(got))
	}
}

func TestNormalizePlayerStatsNotFoundWinsOverStatus(t *testing.T) {
	res := normalizePlayerStats(response{status: 400, body: []byte(`{"Error":"Player not found"}`)})
	if res.Status != StatusPlayerNotFound {
		t.Fatalf("expected player not found, got %s", res.Status)
	}
}

func TestNormalizeCraftingEnvelopeOnSuccess(t *testing.T) {
	res := normalizeCrafting(response{status: 200, body: []byte(`{"Error":"Rate limit exceeded"}`)})
	if res.Status != StatusUpstreamError || res.Upstream.Text != "Rate limit exceeded" {
		t.Fatalf("unexpected result %s %+v", res.Status, res.Upstream)
	}
}

func TestNormalizeMapRotationMissingMode(t *testing.T) {
	res := normalizeMapRotation(response{status: 200, body: []byte(`{"battle_royale":{"current":{"map":"X"}}}`)}, ModeControl)
	if res.Status != StatusUnexpected {
		t.Fatalf("expected unexpected, got %s", res.Status)
	}
	if res.Data != nil {
		t.Fatalf("expected no data, got %+v", res.Data)
	}
	if !errors.Is(res.Err(), ErrModeMissing) {
		t.Fatalf("expected ErrModeMissing, got %v", res.Err())
	}
}

func TestNormalizeMapRotationAllToleratesMissingModes(t *testing.T) {
	res := normalizeMapRotation(response{status: 200, body: []byte(`{"battle_royale":{"current":{"map":"X"}}}`)}, ModeAll)
	if res.Status != StatusOK || res.Data.Get(ModeBattleRoyale) == nil || res.Data.Get(ModeControl) != nil {
		t.Fatalf("unexpected result %s %+v", res.Status, res.Data)
	}
}

func FuzzNormalizePlayerStats(f *testing.F) {
	f.Add(200, playerFixture)
	f.Add(200, `{}`)
	f.Add(200, `{"Error":"Player x not found"}`)
	f.Add(403, `{"error":"bad key"}`)
	f.Add(500, ``)
	f.Add(200, `{"legends":{"selected":null}}`)

	f.Fuzz(func(t *testing.T, status int, body string) {
		res := normalizePlayerStats(response{status: status, body: []byte(body)})

		switch res.Status {
		case StatusOK:
			if res.Data == nil || len(missingSections(res.Data)) != 0 {
				t.Fatalf("ok result without a complete payload")
			}
		case StatusUpstreamError:
			if res.Upstream == nil {
				t.Fatal("upstream error without details")
			}
		case StatusUnexpected:
			if res.Unexpected == nil {
				t.Fatal("unexpected result without cause")
			}
		case StatusPlayerNotFound, StatusNoGameData:
			if res.Data != nil {
				t.Fatal("absence result carrying data")
			}
		default:
			t.Fatalf("unknown status %d", res.Status)
		}
		if res.Status != StatusOK && res.Err() == nil {
			t.Fatal("non-ok result must convert to an error")
		}
	})
}
