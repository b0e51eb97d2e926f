package ambr

import (
	"encoding/json"
	"strings"
)

// CardTag is a tag associated with a TCG card.
type CardTag struct {
	ID   string
	Name string
}

// DiceCost is the dice cost of a TCG card action.
type DiceCost struct {
	Type   string
	Amount int
}

// CardDictionary is a dictionary entry (skill or effect description) of a TCG
// card. Placeholders in the description are substituted from the entry's
// params.
type CardDictionary struct {
	ID          string
	Name        string
	Params      map[string]any
	Description string
	Cost        []DiceCost
}

func (d *CardDictionary) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name        string         `json:"name"`
		Params      map[string]any `json:"params"`
		Description string         `json:"description"`
		DiceCost    map[string]int `json:"diceCost"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	d.Name = RemoveHTMLTags(raw.Name)
	d.Params = raw.Params
	description := raw.Description
	if len(raw.Params) > 0 {
		description = ReplacePlaceholders(description, raw.Params)
	}
	d.Description = RemoveHTMLTags(description)
	d.Cost = diceCostsFromMap(raw.DiceCost)
	return nil
}

// CardTalent is a talent or skill of a TCG card.
type CardTalent struct {
	ID          string
	Name        string
	Params      map[string]any
	Description string
	Cost        []DiceCost
	Tags        []CardTag
	Icon        string
	SubSkills   map[string]any
}

func (t *CardTalent) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name        string            `json:"name"`
		Params      map[string]any    `json:"params"`
		Description string            `json:"description"`
		Cost        map[string]int    `json:"cost"`
		Tags        map[string]string `json:"tags"`
		Icon        string            `json:"icon"`
		SubSkills   map[string]any    `json:"subSkills"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	t.Name = raw.Name
	t.Params = raw.Params
	description := raw.Description
	if len(raw.Params) > 0 {
		description = ReplacePlaceholders(description, raw.Params)
	}
	t.Description = RemoveHTMLTags(description)
	t.Cost = diceCostsFromMap(raw.Cost)
	t.Tags = cardTagsFromMap(raw.Tags)
	t.Icon = assetIconURL(raw.Icon)
	t.SubSkills = raw.SubSkills
	return nil
}

// SmallIcon returns the URL of the small version of the talent icon.
func (t *CardTalent) SmallIcon() string {
	return strings.Replace(t.Icon, ".png", ".sm.png", 1)
}

// TCGCard is a TCG card summary as returned by the gcg list endpoint.
type TCGCard struct {
	ID        int    `validate:"required"`
	Name      string `validate:"required"`
	Type      string
	Tags      []CardTag
	DiceCost  []DiceCost
	Icon      string `validate:"required"`
	Route     string
	SortOrder int
}

func (c *TCGCard) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID        int               `json:"id"`
		Name      string            `json:"name"`
		Type      string            `json:"type"`
		Tags      map[string]string `json:"tags"`
		Props     map[string]int    `json:"props"`
		Icon      string            `json:"icon"`
		Route     string            `json:"route"`
		SortOrder int               `json:"sortOrder"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	c.ID = raw.ID
	c.Name = RemoveHTMLTags(raw.Name)
	c.Type = raw.Type
	c.Tags = cardTagsFromMap(raw.Tags)
	c.DiceCost = diceCostsFromMap(raw.Props)
	c.Icon = gcgIconURL(raw.Icon)
	c.Route = raw.Route
	c.SortOrder = raw.SortOrder
	return nil
}

// SmallIcon returns the URL of the small version of the card icon.
func (c *TCGCard) SmallIcon() string {
	return strings.Replace(c.Icon, ".png", ".sm.png", 1)
}

// TCGCardDetail is the full TCG card record returned by the gcg detail
// endpoint.
type TCGCardDetail struct {
	ID           int    `validate:"required"`
	Name         string `validate:"required"`
	Type         string
	Tags         []CardTag
	Props        map[string]int
	Icon         string `validate:"required"`
	Route        string
	StoryTitle   string
	StoryDetail  string
	Source       string
	Dictionaries []CardDictionary
	Talents      []CardTalent
}

func (c *TCGCardDetail) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID          int                       `json:"id"`
		Name        string                    `json:"name"`
		Type        string                    `json:"type"`
		Tags        map[string]string         `json:"tags"`
		Props       map[string]int            `json:"props"`
		Icon        string                    `json:"icon"`
		Route       string                    `json:"route"`
		StoryTitle  string                    `json:"storyTitle"`
		StoryDetail string                    `json:"storyDetail"`
		Source      string                    `json:"source"`
		Dictionary  map[string]CardDictionary `json:"dictionary"`
		Talent      map[string]CardTalent     `json:"talent"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	c.ID = raw.ID
	c.Name = RemoveHTMLTags(raw.Name)
	c.Type = raw.Type
	c.Tags = cardTagsFromMap(raw.Tags)
	c.Props = raw.Props
	c.Icon = gcgIconURL(raw.Icon)
	c.Route = raw.Route
	c.StoryTitle = raw.StoryTitle
	c.StoryDetail = raw.StoryDetail
	c.Source = raw.Source
	for _, id := range sortedRawKeys(raw.Dictionary) {
		entry := raw.Dictionary[id]
		entry.ID = id
		c.Dictionaries = append(c.Dictionaries, entry)
	}
	for _, id := range sortedRawKeys(raw.Talent) {
		talent := raw.Talent[id]
		talent.ID = id
		c.Talents = append(c.Talents, talent)
	}
	return nil
}

// SmallIcon returns the URL of the small version of the card icon.
func (c *TCGCardDetail) SmallIcon() string {
	return strings.Replace(c.Icon, ".png", ".sm.png", 1)
}

func diceCostsFromMap(m map[string]int) []DiceCost {
	var costs []DiceCost
	for _, costType := range sortedRawKeys(m) {
		costs = append(costs, DiceCost{Type: costType, Amount: m[costType]})
	}
	return costs
}

func cardTagsFromMap(m map[string]string) []CardTag {
	var tags []CardTag
	for _, id := range sortedRawKeys(m) {
		tags = append(tags, CardTag{ID: id, Name: m[id]})
	}
	return tags
}
