package ambr

import (
	"encoding/json"
	"strings"
)

// Namecard is a namecard summary as returned by the namecard list endpoint.
type Namecard struct {
	ID     int    `validate:"required"`
	Name   string `validate:"required"`
	Type   string
	Rarity int
	Icon   string `validate:"required"`
	Route  string
}

func (n *Namecard) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID    int    `json:"id"`
		Name  string `json:"name"`
		Type  string `json:"type"`
		Rank  int    `json:"rank"`
		Icon  string `json:"icon"`
		Route string `json:"route"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	n.ID = raw.ID
	n.Name = RemoveHTMLTags(raw.Name)
	n.Type = raw.Type
	n.Rarity = raw.Rank
	n.Icon = namecardIconURL(raw.Icon)
	n.Route = raw.Route
	return nil
}

// Picture returns the URL of the full picture version of the namecard.
func (n *Namecard) Picture() string {
	return namecardPictureURL(n.Icon)
}

// NamecardDetail is the full namecard record returned by the namecard detail
// endpoint.
type NamecardDetail struct {
	ID                 int    `validate:"required"`
	Name               string `validate:"required"`
	Rarity             int
	Icon               string `validate:"required"`
	Route              string
	Description        string
	DescriptionSpecial string
	Source             string
}

func (n *NamecardDetail) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID                 int    `json:"id"`
		Name               string `json:"name"`
		Rank               int    `json:"rank"`
		Icon               string `json:"icon"`
		Route              string `json:"route"`
		Description        string `json:"description"`
		DescriptionSpecial string `json:"descriptionSpecial"`
		Source             string `json:"source"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	n.ID = raw.ID
	n.Name = RemoveHTMLTags(raw.Name)
	n.Rarity = raw.Rank
	n.Icon = namecardIconURL(raw.Icon)
	n.Route = raw.Route
	n.Description = RemoveHTMLTags(raw.Description)
	n.DescriptionSpecial = raw.DescriptionSpecial
	n.Source = raw.Source
	return nil
}

// Picture returns the URL of the full picture version of the namecard.
func (n *NamecardDetail) Picture() string {
	return namecardPictureURL(n.Icon)
}

func namecardPictureURL(icon string) string {
	return strings.TrimSuffix(strings.Replace(icon, "NameCardIcon", "NameCardPic", 1), ".png") + "_P.png"
}
