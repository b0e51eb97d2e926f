package ambr

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTCGCardDetail_UnmarshalJSON(t *testing.T) {
	payload := `{
		"id": 1105,
		"name": "Kamisato Ayaka",
		"type": "characterCard",
		"tags": {"GCG_TAG_ELEMENT_CRYO": "Cryo", "GCG_TAG_NATION_INAZUMA": "Inazuma"},
		"props": {"GCG_PROP_HP": 10},
		"icon": "UI_Gcg_CardFace_Char_Avatar_Ayaka",
		"route": "Kamisato Ayaka",
		"source": "Obtained in the Heart of the Dice",
		"dictionary": {
			"C1105": {
				"name": "Frostflake Seki no To",
				"params": {"D__KEY": 2},
				"description": "Deals $[D__KEY] <color=#FFFFFFFF>Cryo DMG</color>",
				"diceCost": {"GCG_COST_DICE_CRYO": 3}
			}
		},
		"talent": {
			"11051": {
				"name": "Kamisato Art: Kabuki",
				"description": "Deals 2 Physical DMG.",
				"cost": {"GCG_COST_DICE_CRYO": 1, "GCG_COST_DICE_VOID": 2},
				"icon": "Skill_A_01"
			}
		}
	}`

	var detail TCGCardDetail
	require.NoError(t, json.Unmarshal([]byte(payload), &detail))

	assert.Equal(t, 1105, detail.ID)
	assert.Equal(t, "https://gi.yatta.moe/assets/UI/gcg/UI_Gcg_CardFace_Char_Avatar_Ayaka.png", detail.Icon)
	assert.Equal(t, "https://gi.yatta.moe/assets/UI/gcg/UI_Gcg_CardFace_Char_Avatar_Ayaka.sm.png", detail.SmallIcon())
	assert.Equal(t, []CardTag{
		{ID: "GCG_TAG_ELEMENT_CRYO", Name: "Cryo"},
		{ID: "GCG_TAG_NATION_INAZUMA", Name: "Inazuma"},
	}, detail.Tags)

	require.Len(t, detail.Dictionaries, 1)
	entry := detail.Dictionaries[0]
	assert.Equal(t, "C1105", entry.ID)
	assert.Equal(t, "Deals 2 Cryo DMG", entry.Description)
	assert.Equal(t, []DiceCost{{Type: "GCG_COST_DICE_CRYO", Amount: 3}}, entry.Cost)

	require.Len(t, detail.Talents, 1)
	talent := detail.Talents[0]
	assert.Equal(t, "11051", talent.ID)
	assert.Equal(t, []DiceCost{
		{Type: "GCG_COST_DICE_CRYO", Amount: 1},
		{Type: "GCG_COST_DICE_VOID", Amount: 2},
	}, talent.Cost)
}

func TestNamecard_Picture(t *testing.T) {
	payload := `{
		"id": 210063,
		"name": "Kamisato Ayaka: Heron",
		"rank": 4,
		"icon": "UI_NameCardIcon_Ayaka"
	}`

	var namecard Namecard
	require.NoError(t, json.Unmarshal([]byte(payload), &namecard))

	assert.Equal(t, "https://gi.yatta.moe/assets/UI/namecard/UI_NameCardIcon_Ayaka.png", namecard.Icon)
	assert.Equal(t, "https://gi.yatta.moe/assets/UI/namecard/UI_NameCardPic_Ayaka_P.png", namecard.Picture())
}
