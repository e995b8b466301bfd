package domain

import (
	"time"

	"apex-tracker/pkg/apex"
)

// PlayerSummary is the flattened view printed by the CLI.
type PlayerSummary struct {
	Name           string  `json:"name"`
	UID            string  `json:"uid"`
	Platform       string  `json:"platform"`
	Level          int     `json:"level"`
	ToNextLevel    float64 `json:"to_next_level_percent"`
	RankName       string  `json:"rank_name,omitempty"`
	RankDiv        int     `json:"rank_div,omitempty"`
	RankScore      int     `json:"rank_score,omitempty"`
	SelectedLegend string  `json:"selected_legend"`
	Skin           string  `json:"skin,omitempty"`
	Kills          float64 `json:"kills"`
	KD             string  `json:"kd,omitempty"`
	Online         bool    `json:"online"`
	State          string  `json:"state,omitempty"`
	Banned         bool    `json:"banned"`
}

// NewPlayerSummary expects a payload that passed normalization, so global,
// legends.selected and total are present.
func NewPlayerSummary(s *apex.PlayerStats) *PlayerSummary {
	p := &PlayerSummary{
		Name:           s.Global.Name,
		UID:            s.Global.UID.String(),
		Platform:       s.Global.Platform,
		Level:          s.Global.Level,
		ToNextLevel:    s.Global.ToNextLevelPercent,
		SelectedLegend: s.Legends.Selected.LegendName,
	}
	if rank := s.Global.Rank; rank != nil {
		p.RankName = rank.RankName
		p.RankDiv = rank.RankDiv
		p.RankScore = rank.RankScore
	}
	if bans := s.Global.Bans; bans != nil {
		p.Banned = bans.IsActive
	}
	if info := s.Legends.Selected.GameInfo; info != nil {
		p.Skin = info.Skin
	}
	if s.Total.Kills != nil {
		p.Kills = s.Total.Kills.Value
	}
	if s.Total.KD != nil {
		p.KD = s.Total.KD.Value
	}
	if rt := s.Realtime; rt != nil {
		p.Online = rt.IsOnline == 1
		p.State = rt.CurrentStateAsText
	}
	return p
}

// Overview groups the account-independent endpoints. A leg that failed is
// nil and its error is recorded in Errors under the leg's name.
type Overview struct {
	Crafting apex.CraftingRotation `json:"crafting,omitempty"`
	Maps     *apex.MapRotation     `json:"maps,omitempty"`
	Store    apex.StoreListing     `json:"store,omitempty"`
	Errors   map[string]string     `json:"errors,omitempty"`
}

type RotationSnapshot struct {
	ID        string           `json:"id"`
	FetchedAt time.Time        `json:"fetched_at"`
	Rotation  apex.MapRotation `json:"rotation"`
}
