package ambr

import "encoding/json"

// ArtifactAffix is an artifact set bonus effect, keyed by the piece count
// ("1", "2" or "4") that activates it.
type ArtifactAffix struct {
	ID     string
	Effect string
}

// Artifact is a single artifact piece within a set.
type Artifact struct {
	Pos         string `validate:"required"`
	Name        string `validate:"required"`
	Description string
	MaxRarity   int
	Icon        string `validate:"required"`
}

// ArtifactSet is an artifact set summary as returned by the reliquary list
// endpoint.
type ArtifactSet struct {
	ID         int `validate:"required"`
	Name       string
	RarityList []int
	AffixList  []ArtifactAffix
	Icon       string `validate:"required"`
	Route      string
	SortOrder  int
}

func (s *ArtifactSet) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID        int               `json:"id"`
		Name      string            `json:"name"`
		LevelList []int             `json:"levelList"`
		AffixList map[string]string `json:"affixList"`
		Icon      string            `json:"icon"`
		Route     string            `json:"route"`
		SortOrder int               `json:"sortOrder"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.ID = raw.ID
	s.Name = RemoveHTMLTags(raw.Name)
	s.RarityList = raw.LevelList
	s.AffixList = affixesFromMap(raw.AffixList)
	s.Icon = reliquaryIconURL(raw.Icon)
	s.Route = raw.Route
	s.SortOrder = raw.SortOrder
	return nil
}

// ArtifactSetDetail is the full artifact set record returned by the reliquary
// detail endpoint.
type ArtifactSetDetail struct {
	ID         int `validate:"required"`
	Name       string
	RarityList []int
	AffixList  []ArtifactAffix
	Icon       string `validate:"required"`
	Route      string
	Artifacts  []Artifact
}

func (s *ArtifactSetDetail) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID        int               `json:"id"`
		Name      string            `json:"name"`
		LevelList []int             `json:"levelList"`
		AffixList map[string]string `json:"affixList"`
		Icon      string            `json:"icon"`
		Route     string            `json:"route"`
		Suit      map[string]struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			MaxLevel    int    `json:"maxLevel"`
			Icon        string `json:"icon"`
		} `json:"suit"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.ID = raw.ID
	s.Name = RemoveHTMLTags(raw.Name)
	s.RarityList = raw.LevelList
	s.AffixList = affixesFromMap(raw.AffixList)
	s.Icon = reliquaryIconURL(raw.Icon)
	s.Route = raw.Route
	for _, pos := range sortedRawKeys(raw.Suit) {
		piece := raw.Suit[pos]
		s.Artifacts = append(s.Artifacts, Artifact{
			Pos:         pos,
			Name:        RemoveHTMLTags(piece.Name),
			Description: RemoveHTMLTags(piece.Description),
			MaxRarity:   piece.MaxLevel,
			Icon:        reliquaryIconURL(piece.Icon),
		})
	}
	return nil
}

func affixesFromMap(m map[string]string) []ArtifactAffix {
	var affixes []ArtifactAffix
	for _, id := range sortedRawKeys(m) {
		affixes = append(affixes, ArtifactAffix{ID: id, Effect: m[id]})
	}
	return affixes
}
