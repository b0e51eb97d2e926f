package ambr

import "encoding/json"

// BookVolume is a single volume of a book.
type BookVolume struct {
	ID          int
	Name        string
	Description string
	StoryID     int
}

func (v *BookVolume) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID          int        `json:"id"`
		Name        flexString `json:"name"`
		Description flexString `json:"description"`
		StoryID     int        `json:"storyId"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v.ID = raw.ID
	v.Name = string(raw.Name)
	v.Description = RemoveHTMLTags(string(raw.Description))
	v.StoryID = raw.StoryID
	return nil
}

// Book is a book summary as returned by the book list endpoint.
type Book struct {
	ID     int    `validate:"required"`
	Name   string `validate:"required"`
	Rarity int
	Icon   string `validate:"required"`
	Route  string
}

func (b *Book) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID    int        `json:"id"`
		Name  flexString `json:"name"`
		Rank  int        `json:"rank"`
		Icon  string     `json:"icon"`
		Route string     `json:"route"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	b.ID = raw.ID
	b.Name = string(raw.Name)
	b.Rarity = raw.Rank
	b.Icon = assetIconURL(raw.Icon)
	b.Route = raw.Route
	return nil
}

// BookDetail is the full book record returned by the book detail endpoint.
type BookDetail struct {
	ID      int    `validate:"required"`
	Name    string `validate:"required"`
	Rarity  int
	Icon    string `validate:"required"`
	Volumes []BookVolume
}

func (b *BookDetail) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID     int          `json:"id"`
		Name   flexString   `json:"name"`
		Rank   int          `json:"rank"`
		Icon   string       `json:"icon"`
		Volume []BookVolume `json:"volume"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	b.ID = raw.ID
	b.Name = string(raw.Name)
	b.Rarity = raw.Rank
	b.Icon = assetIconURL(raw.Icon)
	b.Volumes = raw.Volume
	return nil
}
