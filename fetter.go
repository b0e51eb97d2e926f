package ambr

import "encoding/json"

// FetterQuest is a quest that gates a character quote or story.
type FetterQuest struct {
	ID           int    `json:"id"`
	QuestTitle   string `json:"questTitle"`
	ChapterID    int    `json:"chapterId"`
	ChapterTitle string `json:"chapterTitle"`
}

// FetterTask is a condition required to unlock a character quote.
type FetterTask struct {
	Type      string        `json:"type"`
	QuestList []FetterQuest `json:"questList"`
}

// Quote is a character voice-over quote.
type Quote struct {
	Title   string
	AudioID string
	Text    string
	Tips    string
	Tasks   []FetterTask
}

func (q *Quote) UnmarshalJSON(data []byte) error {
	var raw struct {
		Title string       `json:"title"`
		Audio string       `json:"audio"`
		Text  string       `json:"text"`
		Tips  flexString   `json:"tips"`
		Tasks []FetterTask `json:"tasks"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	q.Title = raw.Title
	q.AudioID = raw.Audio
	q.Text = RemoveHTMLTags(ReplacePronouns(raw.Text))
	q.Tips = string(raw.Tips)
	q.Tasks = raw.Tasks
	return nil
}

// Story is a character story entry.
type Story struct {
	Title  string
	Title2 string
	Text   string
	Text2  string
	Tips   string
}

func (s *Story) UnmarshalJSON(data []byte) error {
	var raw struct {
		Title  string `json:"title"`
		Title2 string `json:"title2"`
		Text   string `json:"text"`
		Text2  string `json:"text2"`
		Tips   string `json:"tips"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.Title = raw.Title
	s.Title2 = raw.Title2
	s.Text = RemoveHTMLTags(ReplacePronouns(raw.Text))
	if raw.Text2 != "" {
		s.Text2 = RemoveHTMLTags(ReplacePronouns(raw.Text2))
	}
	s.Tips = raw.Tips
	return nil
}

// CharacterFetter holds a character's voice-over quotes and stories, as
// returned by the avatarFetter endpoint.
type CharacterFetter struct {
	Quotes  []Quote
	Stories []Story
}

func (f *CharacterFetter) UnmarshalJSON(data []byte) error {
	var raw struct {
		Quotes map[string]Quote `json:"quotes"`
		Story  map[string]Story `json:"story"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for _, key := range sortedRawKeys(raw.Quotes) {
		f.Quotes = append(f.Quotes, raw.Quotes[key])
	}
	for _, key := range sortedRawKeys(raw.Story) {
		f.Stories = append(f.Stories, raw.Story[key])
	}
	return nil
}
