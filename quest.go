package ambr

import "encoding/json"

// Quest is a quest chapter summary as returned by the quest list endpoint.
type Quest struct {
	ID                int `validate:"required"`
	Type              string
	ChapterNum        string
	ChapterTitle      string
	ChapterIcon       string
	ChapterImageTitle string
	Route             string
	ChapterCount      int
}

func (q *Quest) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID                int    `json:"id"`
		Type              string `json:"type"`
		ChapterNum        string `json:"chapterNum"`
		ChapterTitle      string `json:"chapterTitle"`
		ChapterIcon       string `json:"chapterIcon"`
		ChapterImageTitle string `json:"chapterImageTitle"`
		Route             string `json:"route"`
		ChapterCount      int    `json:"chapterCount"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	q.ID = raw.ID
	q.Type = raw.Type
	q.ChapterNum = raw.ChapterNum
	q.ChapterTitle = raw.ChapterTitle
	if raw.ChapterIcon != "" {
		q.ChapterIcon = assetIconURL(raw.ChapterIcon)
	}
	q.ChapterImageTitle = raw.ChapterImageTitle
	q.Route = raw.Route
	q.ChapterCount = raw.ChapterCount
	return nil
}
