package ambr

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Birthday is a character's birthday.
type Birthday struct {
	Month int
	Day   int
}

func (b *Birthday) UnmarshalJSON(data []byte) error {
	var raw []int
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) >= 2 {
		b.Month, b.Day = raw[0], raw[1]
	}
	return nil
}

// TalentExtraLevel is an extra talent level granted by a constellation.
type TalentExtraLevel struct {
	TalentType ExtraLevelType `json:"talentIndex"`
	ExtraLevel int            `json:"extraLevel"`
}

// Constellation is a character constellation.
type Constellation struct {
	Name        string `validate:"required"`
	Description string
	ExtraLevel  *TalentExtraLevel
	Icon        string `validate:"required"`
}

func (c *Constellation) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		ExtraData   *struct {
			AddTalentExtraLevel TalentExtraLevel `json:"addTalentExtraLevel"`
		} `json:"extraData"`
		Icon string `json:"icon"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	c.Name = RemoveHTMLTags(raw.Name)
	c.Description = RemoveHTMLTags(raw.Description)
	if raw.ExtraData != nil {
		level := raw.ExtraData.AddTalentExtraLevel
		c.ExtraLevel = &level
	}
	c.Icon = assetIconURL(raw.Icon)
	return nil
}

// TalentUpgradeItem is an item required for a talent upgrade.
type TalentUpgradeItem struct {
	ID     int
	Amount int
}

// TalentUpgrade is a single level upgrade of a talent.
type TalentUpgrade struct {
	Level       int
	CostItems   []TalentUpgradeItem
	MoraCost    int
	Description []string
	Params      []float64
}

func (u *TalentUpgrade) UnmarshalJSON(data []byte) error {
	var raw struct {
		Level       int            `json:"level"`
		CostItems   map[string]int `json:"costItems"`
		CoinCost    int            `json:"coinCost"`
		Description []flexString   `json:"description"`
		Params      []float64      `json:"params"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	u.Level = raw.Level
	u.MoraCost = raw.CoinCost
	u.Params = raw.Params
	u.Description = make([]string, len(raw.Description))
	for i, desc := range raw.Description {
		u.Description[i] = string(desc)
	}
	for _, id := range sortedRawKeys(raw.CostItems) {
		numericID, err := strconv.Atoi(id)
		if err != nil {
			continue
		}
		u.CostItems = append(u.CostItems, TalentUpgradeItem{ID: numericID, Amount: raw.CostItems[id]})
	}
	return nil
}

// Talent is a character talent.
type Talent struct {
	Type        TalentType
	Name        string `validate:"required"`
	Description string
	Icon        string `validate:"required"`
	Upgrades    []TalentUpgrade
	Cooldown    float64
	Cost        int
}

func (t *Talent) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type        TalentType               `json:"type"`
		Name        string                   `json:"name"`
		Description string                   `json:"description"`
		Icon        string                   `json:"icon"`
		Promote     map[string]TalentUpgrade `json:"promote"`
		Cooldown    float64                  `json:"cooldown"`
		Cost        int                      `json:"cost"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	t.Type = raw.Type
	t.Name = RemoveHTMLTags(raw.Name)
	t.Description = RemoveHTMLTags(raw.Description)
	t.Icon = assetIconURL(raw.Icon)
	t.Cooldown = raw.Cooldown
	t.Cost = raw.Cost
	for _, key := range sortedRawKeys(raw.Promote) {
		t.Upgrades = append(t.Upgrades, raw.Promote[key])
	}
	return nil
}

// AscensionMaterial is a material required for character ascension.
type AscensionMaterial struct {
	ID     int
	Rarity int
}

// CharacterUpgrade holds the stat growth and promotion details of a character.
type CharacterUpgrade struct {
	BaseStats []BaseStat `json:"prop"`
	Promotes  []Promote  `json:"promote"`
}

// CharacterCV is the voice actor of a character for one language.
type CharacterCV struct {
	Lang string
	VA   string
}

// CharacterInfo is the profile of a character: title, story, affiliation and
// voice actors.
type CharacterInfo struct {
	Title         string
	Detail        string
	Constellation string
	Native        string
	CV            []CharacterCV
}

func (i *CharacterInfo) UnmarshalJSON(data []byte) error {
	var raw struct {
		Title         string            `json:"title"`
		Detail        string            `json:"detail"`
		Constellation string            `json:"constellation"`
		Native        string            `json:"native"`
		CV            map[string]string `json:"cv"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	i.Title = RemoveHTMLTags(raw.Title)
	i.Detail = raw.Detail
	i.Constellation = raw.Constellation
	i.Native = raw.Native
	for _, lang := range sortedRawKeys(raw.CV) {
		i.CV = append(i.CV, CharacterCV{Lang: lang, VA: raw.CV[lang]})
	}
	return nil
}

// Character is a character summary as returned by the avatar list endpoint.
type Character struct {
	ID          string `validate:"required"`
	Rarity      int
	Name        string `validate:"required"`
	Element     Element
	WeaponType  WeaponType
	Icon        string `validate:"required"`
	Birthday    Birthday
	Release     time.Time
	Route       string
	Beta        bool
	SpecialStat SpecialStat
	Region      string
}

func (c *Character) UnmarshalJSON(data []byte) error {
	var raw characterRaw
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	raw.apply(c)
	return nil
}

// Gacha returns the URL of the character's full-body gacha artwork.
func (c *Character) Gacha() string {
	return strings.Replace(c.Icon, "AvatarIcon", "Gacha_AvatarImg", 1)
}

// CharacterDetail is the full character record returned by the avatar detail
// endpoint.
type CharacterDetail struct {
	ID                 string `validate:"required"`
	Rarity             int
	Name               string `validate:"required"`
	Element            Element
	WeaponType         WeaponType
	Icon               string `validate:"required"`
	Birthday           Birthday
	Release            time.Time
	Route              string
	Info               CharacterInfo
	Upgrade            CharacterUpgrade
	AscensionMaterials []AscensionMaterial
	Talents            []Talent
	Constellations     []Constellation
	Beta               bool
	SpecialStat        SpecialStat
	Region             string
}

func (c *CharacterDetail) UnmarshalJSON(data []byte) error {
	var raw struct {
		characterRaw
		Fetter        CharacterInfo            `json:"fetter"`
		Upgrade       CharacterUpgrade         `json:"upgrade"`
		Ascension     map[string]int           `json:"ascension"`
		Talent        map[string]Talent        `json:"talent"`
		Constellation map[string]Constellation `json:"constellation"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var summary Character
	raw.characterRaw.apply(&summary)
	c.ID = summary.ID
	c.Rarity = summary.Rarity
	c.Name = summary.Name
	c.Element = summary.Element
	c.WeaponType = summary.WeaponType
	c.Icon = summary.Icon
	c.Birthday = summary.Birthday
	c.Release = summary.Release
	c.Route = summary.Route
	c.Beta = summary.Beta
	c.SpecialStat = summary.SpecialStat
	c.Region = summary.Region

	c.Info = raw.Fetter
	c.Upgrade = raw.Upgrade
	for _, id := range sortedRawKeys(raw.Ascension) {
		numericID, err := strconv.Atoi(id)
		if err != nil {
			continue
		}
		c.AscensionMaterials = append(c.AscensionMaterials, AscensionMaterial{ID: numericID, Rarity: raw.Ascension[id]})
	}
	for _, key := range sortedRawKeys(raw.Talent) {
		c.Talents = append(c.Talents, raw.Talent[key])
	}
	for _, key := range sortedRawKeys(raw.Constellation) {
		c.Constellations = append(c.Constellations, raw.Constellation[key])
	}
	return nil
}

// Gacha returns the URL of the character's full-body gacha artwork.
func (c *CharacterDetail) Gacha() string {
	return strings.Replace(c.Icon, "AvatarIcon", "Gacha_AvatarImg", 1)
}

// characterRaw holds the summary fields shared by the list and detail
// payloads.
type characterRaw struct {
	ID          flexString  `json:"id"`
	Rank        int         `json:"rank"`
	Name        string      `json:"name"`
	Element     Element     `json:"element"`
	WeaponType  WeaponType  `json:"weaponType"`
	Icon        string      `json:"icon"`
	Birthday    Birthday    `json:"birthday"`
	Release     unixTime    `json:"release"`
	Route       string      `json:"route"`
	Beta        bool        `json:"beta"`
	SpecialProp SpecialStat `json:"specialProp"`
	Region      string      `json:"region"`
}

func (raw *characterRaw) apply(c *Character) {
	c.ID = string(raw.ID)
	c.Rarity = raw.Rank
	c.Name = RemoveHTMLTags(raw.Name)
	c.Element = raw.Element
	c.WeaponType = raw.WeaponType
	c.Icon = assetIconURL(raw.Icon)
	c.Birthday = raw.Birthday
	c.Release = raw.Release.Time
	c.Route = raw.Route
	c.Beta = raw.Beta
	c.SpecialStat = raw.SpecialProp
	c.Region = raw.Region
}
