package apex

import "encoding/json"

// PlayerStats is the /bridge payload. Every section is optional upstream.
type PlayerStats struct {
	Global   *Global        `json:"global,omitempty"`
	Realtime *Realtime      `json:"realtime,omitempty"`
	Legends  *Legends       `json:"legends,omitempty"`
	Internal *InternalStats `json:"mozambiquehereInternal,omitempty"`
	ALS      *ALS           `json:"ALS,omitempty"`
	Total    *Total         `json:"total,omitempty"`
}

type Global struct {
	Name                string      `json:"name"`
	UID                 json.Number `json:"uid"`
	Avatar              string      `json:"avatar"`
	Platform            string      `json:"platform"`
	Level               int         `json:"level"`
	ToNextLevelPercent  float64     `json:"toNextLevelPercent"`
	InternalUpdateCount int         `json:"internalUpdateCount"`
	Bans                *Bans       `json:"bans,omitempty"`
	Rank                *RankTier   `json:"rank,omitempty"`
	Arena               *RankTier   `json:"arena,omitempty"`
	Battlepass          *Battlepass `json:"battlepass,omitempty"`
}

type Bans struct {
	IsActive         bool   `json:"isActive"`
	RemainingSeconds int64  `json:"remainingSeconds"`
	LastBanReason    string `json:"lastBanReason"`
}

type RankTier struct {
	RankScore         int    `json:"rankScore"`
	RankName          string `json:"rankName"`
	RankDiv           int    `json:"rankDiv"`
	LadderPosPlatform int    `json:"ladderPosPlatform"`
	RankImg           string `json:"rankImg"`
	RankedSeason      string `json:"rankedSeason"`
}

type Battlepass struct {
	Level   string         `json:"level"`
	History map[string]int `json:"history,omitempty"`
}

type Realtime struct {
	LobbyState                 string `json:"lobbyState"`
	IsOnline                   int    `json:"isOnline"`
	IsInGame                   int    `json:"isInGame"`
	CanJoin                    int    `json:"canJoin"`
	PartyFull                  int    `json:"partyFull"`
	SelectedLegend             string `json:"selectedLegend"`
	CurrentState               string `json:"currentState"`
	CurrentStateSinceTimestamp int64  `json:"currentStateSinceTimestamp"`
	CurrentStateAsText         string `json:"currentStateAsText"`
}

// Legends.All is keyed by the upstream legend key ("wraith", "madMaggie", ...).
type Legends struct {
	Selected *SelectedLegend        `json:"selected,omitempty"`
	All      map[string]LegendEntry `json:"all,omitempty"`
}

type SelectedLegend struct {
	LegendName string       `json:"legendName"`
	Data       []LegendStat `json:"data,omitempty"`
	GameInfo   *GameInfo    `json:"gameInfo,omitempty"`
	ImgAssets  *ImgAssets   `json:"imgAssets,omitempty"`
}

type LegendStat struct {
	Name                 string    `json:"name"`
	Value                float64   `json:"value"`
	Key                  string    `json:"key"`
	Global               bool      `json:"global,omitempty"`
	Rank                 *StatRank `json:"rank,omitempty"`
	RankPlatformSpecific *StatRank `json:"rankPlatformSpecific,omitempty"`
}

type StatRank struct {
	RankPos    int     `json:"rankPos"`
	TopPercent float64 `json:"topPercent"`
}

type GameInfo struct {
	Skin        string  `json:"skin"`
	SkinRarity  string  `json:"skinRarity"`
	Frame       string  `json:"frame"`
	FrameRarity string  `json:"frameRarity"`
	Pose        string  `json:"pose"`
	PoseRarity  string  `json:"poseRarity"`
	Intro       string  `json:"intro"`
	IntroRarity string  `json:"introRarity"`
	Badges      []Badge `json:"badges,omitempty"`
}

type Badge struct {
	Name     *string `json:"name"`
	Value    int     `json:"value"`
	Category string  `json:"category"`
}

type LegendEntry struct {
	Data      []LegendStat `json:"data,omitempty"`
	ImgAssets *ImgAssets   `json:"imgAssets,omitempty"`
}

type ImgAssets struct {
	Icon   string `json:"icon"`
	Banner string `json:"banner"`
}

type InternalStats struct {
	IsNewToDB     bool       `json:"isNewToDB"`
	ClaimedBy     string     `json:"claimedBy"`
	APIAccessType string     `json:"apiAccessType"`
	ClusterID     string     `json:"clusterID"`
	RateLimit     *RateLimit `json:"rateLimit,omitempty"`
	ClusterSrv    string     `json:"clusterSrv"`
}

// RateLimit is passed through as reported; the client never acts on it.
type RateLimit struct {
	MaxPerSecond json.Number `json:"maxPerSecond,omitempty"`
	CurrentReq   json.Number `json:"currentReq,omitempty"`
}

type ALS struct {
	IsALSDataEnabled bool `json:"isALSDataEnabled"`
}

type Total struct {
	Kills *TotalStat `json:"kills,omitempty"`
	KD    *TotalKD   `json:"kd,omitempty"`
}

type TotalStat struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// KD value is a string upstream ("1.42", "-1" when unavailable).
type TotalKD struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}
