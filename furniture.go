package ambr

import (
	"encoding/json"
	"strconv"
)

// FurnitureRecipeInput is an input material required for a furniture recipe.
type FurnitureRecipeInput struct {
	ID     int
	Icon   string
	Amount int
}

// FurnitureRecipe is the crafting recipe for a piece of furniture.
type FurnitureRecipe struct {
	Exp    int
	Time   int
	Inputs []FurnitureRecipeInput
}

func (r *FurnitureRecipe) UnmarshalJSON(data []byte) error {
	var raw struct {
		Exp   int `json:"exp"`
		Time  int `json:"time"`
		Input map[string]struct {
			Icon  string `json:"icon"`
			Count int    `json:"count"`
		} `json:"input"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.Exp = raw.Exp
	r.Time = raw.Time
	for _, id := range sortedRawKeys(raw.Input) {
		numericID, err := strconv.Atoi(id)
		if err != nil {
			continue
		}
		item := raw.Input[id]
		r.Inputs = append(r.Inputs, FurnitureRecipeInput{
			ID:     numericID,
			Icon:   assetIconURL(item.Icon),
			Amount: item.Count,
		})
	}
	return nil
}

// Furniture is a furniture summary as returned by the furniture list
// endpoint.
type Furniture struct {
	ID         int    `validate:"required"`
	Name       string `validate:"required"`
	Cost       int
	Comfort    int
	Rarity     int
	Icon       string `validate:"required"`
	Route      string
	Categories []string
	Types      []string
}

func (f *Furniture) UnmarshalJSON(data []byte) error {
	var raw furnitureRaw
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	raw.apply(f)
	return nil
}

// FurnitureDetail is the full furniture record returned by the furniture
// detail endpoint. Recipe is nil for furniture that cannot be crafted.
type FurnitureDetail struct {
	ID          int    `validate:"required"`
	Name        string `validate:"required"`
	Cost        int
	Comfort     int
	Rarity      int
	Icon        string `validate:"required"`
	Route       string
	Categories  []string
	Types       []string
	Description string
	Recipe      *FurnitureRecipe
}

func (f *FurnitureDetail) UnmarshalJSON(data []byte) error {
	var raw struct {
		furnitureRaw
		Description string           `json:"description"`
		Recipe      *FurnitureRecipe `json:"recipe"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var summary Furniture
	raw.furnitureRaw.apply(&summary)
	f.ID = summary.ID
	f.Name = summary.Name
	f.Cost = summary.Cost
	f.Comfort = summary.Comfort
	f.Rarity = summary.Rarity
	f.Icon = summary.Icon
	f.Route = summary.Route
	f.Categories = summary.Categories
	f.Types = summary.Types
	f.Description = RemoveHTMLTags(raw.Description)
	f.Recipe = raw.Recipe
	return nil
}

type furnitureRaw struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Cost       *int     `json:"cost"`
	Comfort    *int     `json:"comfort"`
	Rank       int      `json:"rank"`
	Icon       string   `json:"icon"`
	Route      string   `json:"route"`
	Categories []string `json:"categories"`
	Types      []string `json:"types"`
}

func (raw *furnitureRaw) apply(f *Furniture) {
	f.ID = raw.ID
	f.Name = RemoveHTMLTags(raw.Name)
	if raw.Cost != nil {
		f.Cost = *raw.Cost
	}
	if raw.Comfort != nil {
		f.Comfort = *raw.Comfort
	}
	f.Rarity = raw.Rank
	f.Icon = furnitureIconURL(raw.Icon)
	f.Route = raw.Route
	f.Categories = raw.Categories
	f.Types = raw.Types
}

// FurnitureItem is a furniture item included in a furniture set.
type FurnitureItem struct {
	ID     int
	Rarity int
	Icon   string
}

// FurnitureSetFavoriteNPC is a companion who favors a furniture set.
type FurnitureSetFavoriteNPC struct {
	ID   string
	Icon string
}

// FurnitureSet is a furniture set summary as returned by the furnitureSuite
// list endpoint.
type FurnitureSet struct {
	ID         int    `validate:"required"`
	Name       string `validate:"required"`
	Icon       string `validate:"required"`
	Route      string
	Categories []string
	Types      []string
}

func (s *FurnitureSet) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID         int      `json:"id"`
		Name       string   `json:"name"`
		Icon       string   `json:"icon"`
		Route      string   `json:"route"`
		Categories []string `json:"categories"`
		Types      []string `json:"types"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.ID = raw.ID
	s.Name = RemoveHTMLTags(raw.Name)
	s.Icon = furnitureSetIconURL(raw.Icon)
	s.Route = raw.Route
	s.Categories = raw.Categories
	s.Types = raw.Types
	return nil
}

// FurnitureSetDetail is the full furniture set record returned by the
// furnitureSuite detail endpoint.
type FurnitureSetDetail struct {
	ID             int    `validate:"required"`
	Name           string `validate:"required"`
	Icon           string `validate:"required"`
	Route          string
	Categories     []string
	Types          []string
	Description    string
	FurnitureItems []FurnitureItem
	FavoriteNPCs   []FurnitureSetFavoriteNPC
}

func (s *FurnitureSetDetail) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID            int      `json:"id"`
		Name          string   `json:"name"`
		Icon          string   `json:"icon"`
		Route         string   `json:"route"`
		Categories    []string `json:"categories"`
		Types         []string `json:"types"`
		Description   string   `json:"description"`
		SuiteItemList map[string]struct {
			Rank int    `json:"rank"`
			Icon string `json:"icon"`
		} `json:"suiteItemList"`
		FavoriteNpcList map[string]struct {
			Icon string `json:"icon"`
		} `json:"favoriteNpcList"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.ID = raw.ID
	s.Name = RemoveHTMLTags(raw.Name)
	s.Icon = furnitureSetIconURL(raw.Icon)
	s.Route = raw.Route
	s.Categories = raw.Categories
	s.Types = raw.Types
	s.Description = RemoveHTMLTags(raw.Description)
	for _, id := range sortedRawKeys(raw.SuiteItemList) {
		numericID, err := strconv.Atoi(id)
		if err != nil {
			continue
		}
		item := raw.SuiteItemList[id]
		s.FurnitureItems = append(s.FurnitureItems, FurnitureItem{
			ID:     numericID,
			Rarity: item.Rank,
			Icon:   furnitureIconURL(item.Icon),
		})
	}
	for _, id := range sortedRawKeys(raw.FavoriteNpcList) {
		s.FavoriteNPCs = append(s.FavoriteNPCs, FurnitureSetFavoriteNPC{
			ID:   id,
			Icon: raw.FavoriteNpcList[id].Icon,
		})
	}
	return nil
}
