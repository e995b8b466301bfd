package apex

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/valyala/fasthttp"
)

const maxErrorText = 256

// response is what the transport hands to normalization.
type response struct {
	status int
	body   []byte
}

func (r response) success() bool {
	return r.status >= 200 && r.status < 300
}

type errorEnvelope struct {
	Error *string `json:"Error"`
}

// errorMessage extracts {"Error": "..."} (key matched case-insensitively).
func errorMessage(body []byte) (string, bool) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return "", false
	}
	var env errorEnvelope
	if err := json.Unmarshal(trimmed, &env); err != nil || env.Error == nil {
		return "", false
	}
	return *env.Error, true
}

func isNotFoundMessage(msg string) bool {
	return strings.Contains(strings.ToLower(msg), "not found")
}

func upstreamText(r response) string {
	if msg, ok := errorMessage(r.body); ok && msg != "" {
		return msg
	}
	if text := strings.TrimSpace(string(r.body)); text != "" {
		if len(text) > maxErrorText {
			cut := maxErrorText
			for cut > 0 && !utf8.RuneStart(text[cut]) {
				cut--
			}
			text = text[:cut]
		}
		return text
	}
	return fasthttp.StatusMessage(r.status)
}

// missingSections reports which of the sections a usable stats payload needs
// are absent. An empty result means the payload is complete.
func missingSections(s *PlayerStats) []string {
	var missing []string
	if s.Global == nil {
		missing = append(missing, "global")
	}
	if s.Legends == nil || s.Legends.Selected == nil {
		missing = append(missing, "legends.selected")
	}
	if s.Total == nil {
		missing = append(missing, "total")
	}
	return missing
}

func normalizePlayerStats(r response) Result[PlayerStats] {
	msg, hasError := errorMessage(r.body)
	if hasError && isNotFoundMessage(msg) {
		return notFound[PlayerStats](msg)
	}
	if !r.success() {
		return upstreamFailure[PlayerStats](&UpstreamError{Status: r.status, Text: upstreamText(r)})
	}
	if hasError {
		return upstreamFailure[PlayerStats](&UpstreamError{Status: r.status, Text: msg})
	}

	var stats PlayerStats
	if err := decodeObject(r.body, &stats); err != nil {
		return unexpected[PlayerStats](err)
	}
	if missing := missingSections(&stats); len(missing) > 0 {
		return noGameData[PlayerStats](fmt.Sprintf("player has no recorded game data (missing %s)", strings.Join(missing, ", ")))
	}
	return ok(&stats, nil)
}

func normalizeCrafting(r response) Result[CraftingRotation] {
	var rotation CraftingRotation
	if res, done := precheck[CraftingRotation](r, &rotation); done {
		return res
	}
	return ok(&rotation, rotation.unknownVariants())
}

func normalizeStore(r response) Result[StoreListing] {
	var listing StoreListing
	if res, done := precheck[StoreListing](r, &listing); done {
		return res
	}
	return ok(&listing, listing.unknownVariants())
}

func normalizeMapRotation(r response, mode Mode) Result[MapRotation] {
	var rotation MapRotation
	if res, done := precheck[MapRotation](r, &rotation); done {
		return res
	}
	if mode != ModeAll {
		if rotation.Get(mode) == nil {
			return unexpected[MapRotation](fmt.Errorf("%w: %q", ErrModeMissing, mode))
		}
		rotation = rotation.only(mode)
	}
	return ok(&rotation, nil)
}

// precheck handles the shared non-success paths and decodes into dst. done is
// true when the returned result is final.
func precheck[T any](r response, dst *T) (Result[T], bool) {
	if !r.success() {
		return upstreamFailure[T](&UpstreamError{Status: r.status, Text: upstreamText(r)}), true
	}
	if msg, hasError := errorMessage(r.body); hasError {
		return upstreamFailure[T](&UpstreamError{Status: r.status, Text: msg}), true
	}
	if err := json.Unmarshal(r.body, dst); err != nil {
		return unexpected[T](fmt.Errorf("failed to decode body: %w", err)), true
	}
	return Result[T]{}, false
}

func decodeObject(body []byte, dst any) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return fmt.Errorf("expected JSON object, got %d bytes", len(trimmed))
	}
	if err := json.Unmarshal(trimmed, dst); err != nil {
		return fmt.Errorf("failed to decode body: %w", err)
	}
	return nil
}
