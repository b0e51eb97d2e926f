package ambr

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Blessing is the Benediction of the Abyssal Moon active during a Spiral
// Abyss cycle.
type Blessing struct {
	Description     string
	LevelConfigName string
	Visible         bool
}

func (b *Blessing) UnmarshalJSON(data []byte) error {
	var raw struct {
		Description     string `json:"description"`
		LevelConfigName string `json:"levelConfigName"`
		Visible         bool   `json:"visible"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	b.Description = RemoveHTMLTags(raw.Description)
	b.LevelConfigName = raw.LevelConfigName
	b.Visible = raw.Visible
	return nil
}

// ChallengeTarget is the star-rating target of a Spiral Abyss chamber.
type ChallengeTarget struct {
	Type   string `json:"type"`
	Values []int  `json:"values"`
}

// Formatted renders the challenge target with its values substituted in.
func (t ChallengeTarget) Formatted() string {
	values := make([]string, len(t.Values))
	for i, v := range t.Values {
		values[i] = strconv.Itoa(v)
	}
	return strings.Replace(t.Type, "{}", strings.Join(values, "/"), 1)
}

// Chamber is a single chamber within a Spiral Abyss floor.
type Chamber struct {
	ID              int             `json:"id"`
	ChallengeTarget ChallengeTarget `json:"challengeTarget"`
	EnemyLevel      int             `json:"monsterLevel"`
	WaveOneEnemies  []int           `json:"firstMonsterList"`
	WaveTwoEnemies  []int           `json:"secondMonsterList"`
}

// LeyLineDisorder is a Ley Line Disorder effect active on a Spiral Abyss
// floor.
type LeyLineDisorder struct {
	Description     string
	LevelConfigName string
	Visible         bool
}

func (d *LeyLineDisorder) UnmarshalJSON(data []byte) error {
	var raw struct {
		Description     string `json:"description"`
		LevelConfigName string `json:"levelConfigName"`
		Visible         bool   `json:"visible"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	d.Description = RemoveHTMLTags(raw.Description)
	d.LevelConfigName = raw.LevelConfigName
	d.Visible = raw.Visible
	return nil
}

// Floor is a floor within the Spiral Abyss.
type Floor struct {
	ID                 int               `json:"id"`
	Chambers           []Chamber         `json:"chamberList"`
	LeyLineDisorders   []LeyLineDisorder `json:"leyLineDisorder"`
	OverrideEnemyLevel int               `json:"overrideMonsterLevel"`
	TeamNum            int               `json:"teamNum"`
}

// AbyssData is the floor data of either the Abyss Corridor or the Abyssal
// Moon Spire.
type AbyssData struct {
	OpenTime time.Time
	Floors   []Floor
}

func (d *AbyssData) UnmarshalJSON(data []byte) error {
	var raw struct {
		OpenTime  unixTime `json:"openTime"`
		FloorList []Floor  `json:"floorList"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	d.OpenTime = raw.OpenTime.Time
	d.Floors = raw.FloorList
	return nil
}

// Abyss is a full Spiral Abyss cycle configuration.
type Abyss struct {
	ID               int `validate:"required"`
	OpenTime         time.Time
	CloseTime        time.Time
	Blessing         Blessing
	AbyssCorridor    AbyssData
	AbyssalMoonSpire AbyssData
}

func (a *Abyss) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID        int        `json:"id"`
		CloseTime unixTime   `json:"closeTime"`
		Blessing  []Blessing `json:"blessing"`
		Entrance  AbyssData  `json:"entrance"`
		Schedule  AbyssData  `json:"schedule"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	a.ID = raw.ID
	// The cycle start time only appears on the spire schedule.
	a.OpenTime = raw.Schedule.OpenTime
	a.CloseTime = raw.CloseTime.Time
	if len(raw.Blessing) > 0 {
		a.Blessing = raw.Blessing[0]
	}
	a.AbyssCorridor = raw.Entrance
	a.AbyssalMoonSpire = raw.Schedule
	return nil
}

// AbyssEnemyProperty is a base property of a Spiral Abyss enemy.
type AbyssEnemyProperty struct {
	InitialValue float64 `json:"initValue"`
	Type         string  `json:"propType"`
	GrowthType   string  `json:"type"`
}

// AbyssEnemy is an enemy that can appear in the Spiral Abyss.
type AbyssEnemy struct {
	ID         int
	Name       string
	Icon       string
	Link       bool
	Properties []AbyssEnemyProperty
}

func (e *AbyssEnemy) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID   int                  `json:"id"`
		Name string               `json:"name"`
		Icon string               `json:"icon"`
		Link bool                 `json:"link"`
		Prop []AbyssEnemyProperty `json:"prop"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	e.ID = raw.ID
	e.Name = RemoveHTMLTags(raw.Name)
	e.Icon = monsterIconURL(raw.Icon)
	e.Link = raw.Link
	e.Properties = raw.Prop
	return nil
}

// AbyssResponse is the complete Spiral Abyss payload: the enemy roster plus
// one or more cycle configurations.
type AbyssResponse struct {
	Enemies map[string]AbyssEnemy
	Abysses []Abyss
}

func (r *AbyssResponse) UnmarshalJSON(data []byte) error {
	var raw struct {
		MonsterList map[string]AbyssEnemy `json:"monsterList"`
		Items       map[string]Abyss      `json:"items"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.Enemies = raw.MonsterList
	for _, key := range sortedRawKeys(raw.Items) {
		r.Abysses = append(r.Abysses, raw.Items[key])
	}
	return nil
}
