package ambr

import (
	"encoding/json"
	"strconv"
)

// MonsterReward is a potential reward dropped by a monster.
type MonsterReward struct {
	ID     int
	Rarity int
	Icon   string
	Count  float64
}

// MonsterEntry is a variant of a monster with its own drop table.
type MonsterEntry struct {
	ID      int
	Type    string
	Rewards []MonsterReward
}

func (e *MonsterEntry) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID     int    `json:"id"`
		Type   string `json:"type"`
		Reward map[string]struct {
			Rank  int     `json:"rank"`
			Icon  string  `json:"icon"`
			Count float64 `json:"count"`
		} `json:"reward"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	e.ID = raw.ID
	e.Type = raw.Type
	for _, id := range sortedRawKeys(raw.Reward) {
		numericID, err := strconv.Atoi(id)
		if err != nil {
			continue
		}
		reward := raw.Reward[id]
		e.Rewards = append(e.Rewards, MonsterReward{
			ID:     numericID,
			Rarity: reward.Rank,
			Icon:   assetIconURL(reward.Icon),
			Count:  reward.Count,
		})
	}
	return nil
}

// Monster is a monster or living-being summary as returned by the monster
// list endpoint.
type Monster struct {
	ID    int    `validate:"required"`
	Name  string `validate:"required"`
	Type  string
	Icon  string `validate:"required"`
	Route string
}

func (m *Monster) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID    int    `json:"id"`
		Name  string `json:"name"`
		Type  string `json:"type"`
		Icon  string `json:"icon"`
		Route string `json:"route"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	m.ID = raw.ID
	m.Name = RemoveHTMLTags(raw.Name)
	m.Type = raw.Type
	m.Icon = monsterIconURL(raw.Icon)
	m.Route = raw.Route
	return nil
}

// MonsterDetail is the full monster record returned by the monster detail
// endpoint.
type MonsterDetail struct {
	ID          int    `validate:"required"`
	Name        string `validate:"required"`
	Type        string
	Icon        string `validate:"required"`
	Route       string
	Title       string
	SpecialName string
	Description string
	Entries     []MonsterEntry
}

func (m *MonsterDetail) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID          int                     `json:"id"`
		Name        string                  `json:"name"`
		Type        string                  `json:"type"`
		Icon        string                  `json:"icon"`
		Route       string                  `json:"route"`
		Title       string                  `json:"title"`
		SpecialName string                  `json:"specialName"`
		Description string                  `json:"description"`
		Entries     map[string]MonsterEntry `json:"entries"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	m.ID = raw.ID
	m.Name = RemoveHTMLTags(raw.Name)
	m.Type = raw.Type
	m.Icon = monsterIconURL(raw.Icon)
	m.Route = raw.Route
	m.Title = raw.Title
	m.SpecialName = raw.SpecialName
	m.Description = RemoveHTMLTags(raw.Description)
	for _, key := range sortedRawKeys(raw.Entries) {
		m.Entries = append(m.Entries, raw.Entries[key])
	}
	return nil
}
