package ambr

import "encoding/json"

// FoodSource is a source where a food item can be obtained.
type FoodSource struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// FoodEffect is one effect of a food item.
type FoodEffect struct {
	ID          string
	Description string
}

// FoodRecipe holds the recipe details of a cookable food item.
type FoodRecipe struct {
	EffectIcon string
	Effects    []FoodEffect
}

func (r *FoodRecipe) UnmarshalJSON(data []byte) error {
	var raw struct {
		EffectIcon string            `json:"effectIcon"`
		Effect     map[string]string `json:"effect"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.EffectIcon = assetIconURL(raw.EffectIcon)
	for _, id := range sortedRawKeys(raw.Effect) {
		r.Effects = append(r.Effects, FoodEffect{ID: id, Description: RemoveHTMLTags(raw.Effect[id])})
	}
	return nil
}

// Food is a food item summary as returned by the food list endpoint.
type Food struct {
	ID         int    `validate:"required"`
	Name       string `validate:"required"`
	Type       string
	Recipe     bool
	Icon       string `validate:"required"`
	Rarity     int
	Route      string
	EffectIcon string
}

func (f *Food) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID         int    `json:"id"`
		Name       string `json:"name"`
		Type       string `json:"type"`
		Recipe     *bool  `json:"recipe"`
		Icon       string `json:"icon"`
		Rank       int    `json:"rank"`
		Route      string `json:"route"`
		EffectIcon string `json:"effectIcon"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	f.ID = raw.ID
	f.Name = RemoveHTMLTags(raw.Name)
	f.Type = raw.Type
	f.Recipe = raw.Recipe != nil && *raw.Recipe
	f.Icon = assetIconURL(raw.Icon)
	f.Rarity = raw.Rank
	f.Route = raw.Route
	if raw.EffectIcon != "" {
		f.EffectIcon = assetIconURL(raw.EffectIcon)
	}
	return nil
}

// FoodDetail is the full food record returned by the food detail endpoint.
// Recipe is nil for food that cannot be cooked.
type FoodDetail struct {
	Name        string `validate:"required"`
	Description string
	Type        string
	Recipe      *FoodRecipe
	Sources     []FoodSource
	Icon        string `validate:"required"`
	Rarity      int
	Route       string
}

func (f *FoodDetail) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name        string          `json:"name"`
		Description string          `json:"description"`
		Type        string          `json:"type"`
		Recipe      json.RawMessage `json:"recipe"`
		Source      []FoodSource    `json:"source"`
		Icon        string          `json:"icon"`
		Rank        int             `json:"rank"`
		Route       string          `json:"route"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	f.Name = RemoveHTMLTags(raw.Name)
	f.Description = RemoveHTMLTags(raw.Description)
	f.Type = raw.Type
	f.Sources = raw.Source
	f.Icon = assetIconURL(raw.Icon)
	f.Rarity = raw.Rank
	f.Route = raw.Route

	// recipe is false for uncookable food and an object otherwise.
	if len(raw.Recipe) > 0 && raw.Recipe[0] == '{' {
		var recipe FoodRecipe
		if err := json.Unmarshal(raw.Recipe, &recipe); err != nil {
			return err
		}
		f.Recipe = &recipe
	}
	return nil
}
