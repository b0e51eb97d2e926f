package ambr

import (
	"encoding/json"
	"strconv"
)

// WeaponAffixUpgrade is one refinement level of a weapon's passive ability.
type WeaponAffixUpgrade struct {
	Level       int
	Description string
}

// WeaponAffix is a weapon's passive ability and its refinement levels.
type WeaponAffix struct {
	Name     string `validate:"required"`
	Upgrades []WeaponAffixUpgrade
}

func (a *WeaponAffix) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name    string            `json:"name"`
		Upgrade map[string]string `json:"upgrade"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	a.Name = raw.Name
	for _, key := range sortedRawKeys(raw.Upgrade) {
		level, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		a.Upgrades = append(a.Upgrades, WeaponAffixUpgrade{
			Level:       level,
			Description: RemoveHTMLTags(raw.Upgrade[key]),
		})
	}
	return nil
}

// WeaponUpgrade holds the stat growth, promotion and refinement cost details
// of a weapon.
type WeaponUpgrade struct {
	AwakenCost []int      `json:"awakenCost"`
	BaseStats  []BaseStat `json:"prop"`
	Promotes   []Promote  `json:"promote"`
}

// Weapon is a weapon summary as returned by the weapon list endpoint.
type Weapon struct {
	ID     int    `validate:"required"`
	Rarity int    `validate:"required"`
	Type   string `validate:"required"`
	Name   string `validate:"required"`
	Icon   string `validate:"required"`
	Route  string
}

func (w *Weapon) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID    int    `json:"id"`
		Rank  int    `json:"rank"`
		Type  string `json:"type"`
		Name  string `json:"name"`
		Icon  string `json:"icon"`
		Route string `json:"route"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	w.ID = raw.ID
	w.Rarity = raw.Rank
	w.Type = raw.Type
	w.Name = RemoveHTMLTags(raw.Name)
	w.Icon = assetIconURL(raw.Icon)
	w.Route = raw.Route
	return nil
}

// WeaponDetail is the full weapon record returned by the weapon detail
// endpoint.
type WeaponDetail struct {
	ID                 int    `validate:"required"`
	Rarity             int    `validate:"required"`
	Type               string `validate:"required"`
	Name               string `validate:"required"`
	Description        string
	Icon               string `validate:"required"`
	StoryID            int
	Affix              *WeaponAffix
	Route              string
	Upgrade            WeaponUpgrade
	AscensionMaterials []AscensionMaterial
}

func (w *WeaponDetail) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID          int                    `json:"id"`
		Rank        int                    `json:"rank"`
		Type        string                 `json:"type"`
		Name        string                 `json:"name"`
		Description string                 `json:"description"`
		Icon        string                 `json:"icon"`
		StoryID     []int                  `json:"storyId"`
		Affix       map[string]WeaponAffix `json:"affix"`
		Route       string                 `json:"route"`
		Upgrade     WeaponUpgrade          `json:"upgrade"`
		Ascension   map[string]int         `json:"ascension"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	w.ID = raw.ID
	w.Rarity = raw.Rank
	w.Type = raw.Type
	w.Name = RemoveHTMLTags(raw.Name)
	w.Description = RemoveHTMLTags(raw.Description)
	w.Icon = assetIconURL(raw.Icon)
	if len(raw.StoryID) > 0 {
		w.StoryID = raw.StoryID[0]
	}
	// The affix object is keyed by an internal id; there is only ever one.
	for _, key := range sortedRawKeys(raw.Affix) {
		affix := raw.Affix[key]
		w.Affix = &affix
		break
	}
	w.Route = raw.Route
	w.Upgrade = raw.Upgrade
	for _, id := range sortedRawKeys(raw.Ascension) {
		numericID, err := strconv.Atoi(id)
		if err != nil {
			continue
		}
		w.AscensionMaterials = append(w.AscensionMaterials, AscensionMaterial{ID: numericID, Rarity: raw.Ascension[id]})
	}
	return nil
}
