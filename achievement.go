package ambr

import "encoding/json"

// AchievementReward is a reward granted for completing an achievement.
type AchievementReward struct {
	Rarity int
	Amount int
	Icon   string
}

func (r *AchievementReward) UnmarshalJSON(data []byte) error {
	var raw struct {
		Rank  int    `json:"rank"`
		Count int    `json:"count"`
		Icon  string `json:"icon"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.Rarity = raw.Rank
	r.Amount = raw.Count
	r.Icon = assetIconURL(raw.Icon)
	return nil
}

// AchievementDetail is one stage of an achievement.
type AchievementDetail struct {
	ID          int `validate:"required"`
	Title       string
	Description string
	Rewards     []AchievementReward
}

func (d *AchievementDetail) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID          int                          `json:"id"`
		Title       string                       `json:"title"`
		Description string                       `json:"description"`
		Rewards     map[string]AchievementReward `json:"rewards"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	d.ID = raw.ID
	d.Title = raw.Title
	d.Description = raw.Description
	for _, id := range sortedRawKeys(raw.Rewards) {
		d.Rewards = append(d.Rewards, raw.Rewards[id])
	}
	return nil
}

// Achievement is an achievement, potentially with multiple stages.
type Achievement struct {
	ID      int                 `json:"id" validate:"required"`
	Order   int                 `json:"order"`
	Details []AchievementDetail `json:"details"`
}

// AchievementCategory is a category of achievements as returned by the
// achievement endpoint.
type AchievementCategory struct {
	ID           int    `validate:"required"`
	Name         string `validate:"required"`
	Order        int
	Icon         string
	Achievements []Achievement
}

func (c *AchievementCategory) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID              int                    `json:"id"`
		Name            string                 `json:"name"`
		Order           int                    `json:"order"`
		Icon            string                 `json:"icon"`
		AchievementList map[string]Achievement `json:"achievementList"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	c.ID = raw.ID
	c.Name = raw.Name
	c.Order = raw.Order
	c.Icon = assetIconURL(raw.Icon)
	for _, id := range sortedRawKeys(raw.AchievementList) {
		c.Achievements = append(c.Achievements, raw.AchievementList[id])
	}
	return nil
}
