package ambr

import "encoding/json"

// weekdayNumbers maps the API's day names to ISO weekday numbers
// (1 = Monday, 7 = Sunday).
var weekdayNumbers = map[string]int{
	"monday":    1,
	"tuesday":   2,
	"wednesday": 3,
	"thursday":  4,
	"friday":    5,
	"saturday":  6,
	"sunday":    7,
}

// MaterialRecipe is an input item of a material crafting recipe.
type MaterialRecipe struct {
	Icon   string
	Amount int
}

// MaterialSource is a source where a material can be obtained. Days lists the
// ISO weekday numbers the source is available on, if it is day-limited.
type MaterialSource struct {
	Name string
	Type string
	Days []int
}

func (s *MaterialSource) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name string   `json:"name"`
		Type string   `json:"type"`
		Days []string `json:"days"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.Name = raw.Name
	s.Type = raw.Type
	for _, day := range raw.Days {
		if number, ok := weekdayNumbers[day]; ok {
			s.Days = append(s.Days, number)
		}
	}
	return nil
}

// Material is a material summary as returned by the material list endpoint.
type Material struct {
	ID     int    `validate:"required"`
	Name   string `validate:"required"`
	Type   string
	Recipe bool
	Icon   string `validate:"required"`
	Rarity int
	Route  string
}

func (m *Material) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID     int    `json:"id"`
		Name   string `json:"name"`
		Type   string `json:"type"`
		Recipe *bool  `json:"recipe"`
		Icon   string `json:"icon"`
		Rank   int    `json:"rank"`
		Route  string `json:"route"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	m.ID = raw.ID
	m.Name = RemoveHTMLTags(raw.Name)
	m.Type = raw.Type
	m.Recipe = raw.Recipe != nil && *raw.Recipe
	m.Icon = assetIconURL(raw.Icon)
	m.Rarity = raw.Rank
	m.Route = raw.Route
	return nil
}

// MaterialDetail is the full material record returned by the material detail
// endpoint.
type MaterialDetail struct {
	Name        string `validate:"required"`
	Description string
	Type        string
	Recipe      []MaterialRecipe
	Sources     []MaterialSource
	Icon        string `validate:"required"`
	Rarity      int
	Route       string
}

func (m *MaterialDetail) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name        string           `json:"name"`
		Description string           `json:"description"`
		Type        string           `json:"type"`
		Recipe      json.RawMessage  `json:"recipe"`
		Source      []MaterialSource `json:"source"`
		Icon        string           `json:"icon"`
		Rank        int              `json:"rank"`
		Route       string           `json:"route"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	m.Name = RemoveHTMLTags(raw.Name)
	m.Description = RemoveHTMLTags(raw.Description)
	m.Type = raw.Type
	m.Sources = raw.Source
	m.Icon = assetIconURL(raw.Icon)
	m.Rarity = raw.Rank
	m.Route = raw.Route

	// recipe is false for uncraftable materials and an object keyed by recipe
	// id otherwise; only the first recipe is ever populated.
	if len(raw.Recipe) > 0 && raw.Recipe[0] == '{' {
		var recipes map[string]map[string]struct {
			Icon  string `json:"icon"`
			Count int    `json:"count"`
		}
		if err := json.Unmarshal(raw.Recipe, &recipes); err != nil {
			return err
		}
		for _, recipeID := range sortedRawKeys(recipes) {
			inputs := recipes[recipeID]
			for _, itemID := range sortedRawKeys(inputs) {
				item := inputs[itemID]
				m.Recipe = append(m.Recipe, MaterialRecipe{Icon: assetIconURL(item.Icon), Amount: item.Count})
			}
			break
		}
	}
	return nil
}
