package ambr

import (
	"encoding/json"
	"strconv"
)

// ChangelogItem lists the ids changed in one category of a changelog entry.
type ChangelogItem struct {
	Category ItemCategory
	IDs      []string
}

// Changelog is one game version's change log entry. The changelog endpoint
// returns entries keyed by id; the decoder for the full payload lives in the
// fetch layer.
type Changelog struct {
	ID      int `validate:"required"`
	Version string
	Items   []ChangelogItem
	Beta    bool
}

func (c *Changelog) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID      int                 `json:"id"`
		Version string              `json:"version"`
		Items   map[string][]string `json:"items"`
		Beta    bool                `json:"beta"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	c.ID = raw.ID
	c.Version = raw.Version
	c.Beta = raw.Beta
	for _, category := range sortedRawKeys(raw.Items) {
		c.Items = append(c.Items, ChangelogItem{Category: ItemCategory(category), IDs: raw.Items[category]})
	}
	return nil
}

// changelogsFromMap decodes the id-keyed changelog payload. The entry id
// lives in the key, not the value.
func changelogsFromMap(m map[string]Changelog) []Changelog {
	var logs []Changelog
	for _, id := range sortedRawKeys(m) {
		entry := m[id]
		if entry.ID == 0 {
			if numericID, err := strconv.Atoi(id); err == nil {
				entry.ID = numericID
			}
		}
		logs = append(logs, entry)
	}
	return logs
}
