package ambr

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// GuideCharacter is a character reference within a guide payload.
type GuideCharacter struct {
	ID         string
	Rarity     int
	WeaponType WeaponType
	Icon       string
	Route      string
}

func (c *GuideCharacter) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID         flexString `json:"id"`
		Rank       int        `json:"rank"`
		WeaponType WeaponType `json:"weaponType"`
		Icon       string     `json:"icon"`
		Route      string     `json:"route"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	c.ID = string(raw.ID)
	c.Rarity = raw.Rank
	c.WeaponType = raw.WeaponType
	c.Icon = raw.Icon
	c.Route = raw.Route
	return nil
}

// GuideWeapon is a weapon reference within a guide payload.
type GuideWeapon struct {
	ID     int        `json:"id"`
	Rarity int        `json:"rank"`
	Type   WeaponType `json:"type"`
	Icon   string     `json:"icon"`
	Route  string     `json:"route"`
}

// GuideArtifact is an artifact set reference within a guide payload.
type GuideArtifact struct {
	ID       int    `json:"id"`
	Icon     string `json:"icon"`
	Rarities []int  `json:"levelList"`
	Route    string `json:"route"`
}

// AvailableItems indexes the characters, weapons and artifact sets referenced
// by a guide.
type AvailableItems struct {
	Characters map[string]GuideCharacter `json:"avatar"`
	Weapons    map[string]GuideWeapon    `json:"weapon"`
	Artifacts  map[string]GuideArtifact  `json:"reliquary"`
}

// GWBuildArtifact is an artifact recommendation in a Genshin Wizard build.
// Type is "normal" for real artifact sets (ID is the numeric set id) and
// "custom" for free-form recommendations (ID is a label).
type GWBuildArtifact struct {
	ID   string
	Type string
}

func (a *GWBuildArtifact) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID   flexString `json:"id"`
		Type string     `json:"type"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	a.ID = string(raw.ID)
	a.Type = raw.Type
	return nil
}

// GWBuildInfo is one section of a Genshin Wizard build.
type GWBuildInfo struct {
	Inline    bool
	Name      string
	Value     string
	Weapons   map[int]string
	Artifacts []GWBuildArtifact
}

func (i *GWBuildInfo) UnmarshalJSON(data []byte) error {
	var raw struct {
		Inline        bool              `json:"inline"`
		Name          string            `json:"name"`
		Value         string            `json:"value"`
		WeaponList    map[string]string `json:"weaponList"`
		ReliquaryList []GWBuildArtifact `json:"reliquaryList"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	i.Inline = raw.Inline
	i.Name = raw.Name
	i.Value = raw.Value
	if len(raw.WeaponList) > 0 {
		i.Weapons = make(map[int]string, len(raw.WeaponList))
		for id, name := range raw.WeaponList {
			numericID, err := strconv.Atoi(id)
			if err != nil {
				continue
			}
			i.Weapons[numericID] = name
		}
	}
	i.Artifacts = raw.ReliquaryList
	return nil
}

// GWBuild is a build recommendation from Genshin Wizard.
type GWBuild struct {
	Title   string        `json:"title"`
	Credits string        `json:"credits"`
	Info    []GWBuildInfo `json:"info"`
}

// GWPlaystyle is playstyle guidance from Genshin Wizard.
type GWPlaystyle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Credits     string `json:"credits"`
}

// GWSynergyCharacter is one slot of a recommended team. Type is "normal"
// (ID names a character), "element" (Element names the slot's element) or
// "flexible".
type GWSynergyCharacter struct {
	ID      string
	Element Element
	Type    string
}

func (c *GWSynergyCharacter) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID      flexString `json:"id"`
		Element Element    `json:"element"`
		Type    string     `json:"type"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	c.ID = string(raw.ID)
	c.Element = raw.Element
	c.Type = raw.Type
	return nil
}

// GWSynergyInfo is a piece of textual synergy information.
type GWSynergyInfo struct {
	Inline bool   `json:"inline"`
	Name   string `json:"name"`
	Value  string `json:"value"`
}

// GWSynergy holds team composition recommendations from Genshin Wizard.
type GWSynergy struct {
	Title   string                 `json:"title"`
	Info    []GWSynergyInfo        `json:"info"`
	Teams   [][]GWSynergyCharacter `json:"synergiestList"`
	Credits string                 `json:"credits"`
}

// GWData is the Genshin Wizard guide data for a character.
type GWData struct {
	Builds    []GWBuild    `json:"builds"`
	Playstyle *GWPlaystyle `json:"playstyle"`
	Synergies GWSynergy    `json:"synergies"`
}

// AzaBestItem is a usage-ranked character or weapon from genshin.aza.gg.
type AzaBestItem struct {
	ID    int     `json:"id"`
	Value float64 `json:"value"`
}

// Percentage formats the usage value as a percentage string.
func (i AzaBestItem) Percentage() string {
	return fmt.Sprintf("%.1f%%", i.Value*100)
}

// AzaBestArtifact is one artifact set of a ranked combination.
type AzaBestArtifact struct {
	ID  int
	Num int
}

// AzaBestArtifactSets is a usage-ranked artifact set combination from
// genshin.aza.gg.
type AzaBestArtifactSets struct {
	Sets  []AzaBestArtifact
	Value float64
}

func (s *AzaBestArtifactSets) UnmarshalJSON(data []byte) error {
	var raw struct {
		SetList map[string]int `json:"setList"`
		Value   float64        `json:"value"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.Value = raw.Value
	for _, id := range sortedRawKeys(raw.SetList) {
		numericID, err := strconv.Atoi(id)
		if err != nil {
			continue
		}
		s.Sets = append(s.Sets, AzaBestArtifact{ID: numericID, Num: raw.SetList[id]})
	}
	return nil
}

// Percentage formats the usage value as a percentage string.
func (s AzaBestArtifactSets) Percentage() string {
	return fmt.Sprintf("%.1f%%", s.Value*100)
}

// AzaData is the genshin.aza.gg guide data for a character.
type AzaData struct {
	BestCharacters     map[string]AzaBestItem `json:"bestAvatarList"`
	BestWeapons        map[string]AzaBestItem `json:"bestWeaponList"`
	BestArtifactSets   []AzaBestArtifactSets  `json:"bestReliquaryList"`
	ConstellationUsage map[string]float64     `json:"constellationsUsage"`
}

// CharacterGuide is the complete guide payload for a character, combining
// the Genshin Wizard and genshin.aza.gg sources.
type CharacterGuide struct {
	AvailableItems AvailableItems `json:"dataList"`
	GWData         *GWData        `json:"gwData"`
	AzaData        *AzaData       `json:"azaData"`
}
