package ambr

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomains_UnmarshalJSON(t *testing.T) {
	payload := `{
		"monday": {
			"4362": {"id": 4362, "name": "Violet Court", "reward": [104338, 104339], "city": 3},
			"4257": {"id": 4257, "name": "Taishan Mansion", "reward": [104310], "city": 2}
		},
		"tuesday": {},
		"wednesday": {},
		"thursday": {},
		"friday": {},
		"saturday": {},
		"sunday": {
			"4362": {"id": 4362, "name": "Violet Court", "reward": [104338], "city": 3}
		}
	}`

	var domains Domains
	require.NoError(t, json.Unmarshal([]byte(payload), &domains))

	require.Len(t, domains.Monday, 2)
	assert.Equal(t, 4257, domains.Monday[0].ID)
	assert.Equal(t, CityLiyue, domains.Monday[0].City)
	assert.Equal(t, 4362, domains.Monday[1].ID)
	assert.Equal(t, "Violet Court", domains.Monday[1].Name)

	assert.Empty(t, domains.Tuesday)
	require.Len(t, domains.Sunday, 1)

	reward := domains.Monday[1].Rewards[0]
	assert.Equal(t, 104338, reward.ID)
	assert.Equal(t, "https://gi.yatta.moe/assets/UI/UI_ItemIcon_104338.png", reward.Icon())
}
