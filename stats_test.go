package ambr

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromote_UnmarshalJSON(t *testing.T) {
	payload := `{
		"promoteLevel": 1,
		"unlockMaxLevel": 40,
		"costItems": {"104161": 1, "104101": 3, "112002": 3},
		"addProps": {"FIGHT_PROP_BASE_HP": 1200, "FIGHT_PROP_CRITICAL_HURT": 0.096},
		"requiredPlayerLevel": 15,
		"coinCost": 20000
	}`

	var promote Promote
	require.NoError(t, json.Unmarshal([]byte(payload), &promote))

	assert.Equal(t, 1, promote.PromoteLevel)
	assert.Equal(t, 40, promote.UnlockMaxLevel)
	assert.Equal(t, 15, promote.RequiredPlayerLevel)
	assert.Equal(t, 20000, promote.CoinCost)
	assert.Equal(t, []PromoteCostItem{
		{ID: 104101, Amount: 3},
		{ID: 104161, Amount: 1},
		{ID: 112002, Amount: 3},
	}, promote.CostItems)
	assert.Equal(t, []PromoteStat{
		{ID: "FIGHT_PROP_BASE_HP", Value: 1200},
		{ID: "FIGHT_PROP_CRITICAL_HURT", Value: 0.096},
	}, promote.AddStats)
}

func TestCalculateUpgradeStatValues(t *testing.T) {
	stats := []BaseStat{
		{PropType: "FIGHT_PROP_BASE_HP", InitValue: 1000, GrowthType: "GROW_CURVE_HP_S5"},
		{PropType: "FIGHT_PROP_BASE_ATTACK", InitValue: 25, GrowthType: "GROW_CURVE_ATTACK_S5"},
	}
	promotes := []Promote{
		{
			UnlockMaxLevel: 20,
			AddStats:       []PromoteStat{{ID: "FIGHT_PROP_BASE_HP", Value: 500}},
		},
		{
			UnlockMaxLevel: 40,
			AddStats: []PromoteStat{
				{ID: "FIGHT_PROP_BASE_HP", Value: 1200},
				{ID: "FIGHT_PROP_CRITICAL_HURT", Value: 0.125},
			},
		},
	}
	curve := GrowthCurve{
		"20": {CurveInfos: map[string]float64{"GROW_CURVE_HP_S5": 2, "GROW_CURVE_ATTACK_S5": 2}},
		"40": {CurveInfos: map[string]float64{"GROW_CURVE_HP_S5": 3, "GROW_CURVE_ATTACK_S5": 3}},
	}

	t.Run("below the first ascension", func(t *testing.T) {
		got := CalculateUpgradeStatValues(stats, promotes, curve, 20, false)
		assert.Equal(t, map[string]float64{
			"FIGHT_PROP_BASE_HP":     2000,
			"FIGHT_PROP_BASE_ATTACK": 50,
		}, got)
	})

	t.Run("ascended at the phase boundary", func(t *testing.T) {
		got := CalculateUpgradeStatValues(stats, promotes, curve, 20, true)
		assert.Equal(t, map[string]float64{
			"FIGHT_PROP_BASE_HP":     2500,
			"FIGHT_PROP_BASE_ATTACK": 50,
		}, got)
	})

	t.Run("later phase carries its stat bonuses", func(t *testing.T) {
		got := CalculateUpgradeStatValues(stats, promotes, curve, 40, true)
		assert.Equal(t, map[string]float64{
			"FIGHT_PROP_BASE_HP":       4200,
			"FIGHT_PROP_BASE_ATTACK":   75,
			"FIGHT_PROP_CRITICAL_HURT": 0.625,
		}, got)
	})
}

func TestFormatStatValues(t *testing.T) {
	got := FormatStatValues(map[string]float64{
		"FIGHT_PROP_BASE_HP":       4200.4,
		"FIGHT_PROP_CRITICAL_HURT": 0.596,
		"FIGHT_PROP_CRITICAL":      0.0505,
	})
	assert.Equal(t, map[string]string{
		"FIGHT_PROP_BASE_HP":       "4200",
		"FIGHT_PROP_CRITICAL_HURT": "59.6%",
		"FIGHT_PROP_CRITICAL":      "5.1%",
	}, got)
}

func TestReplaceFightPropWithName(t *testing.T) {
	got := ReplaceFightPropWithName(
		map[string]float64{
			"FIGHT_PROP_BASE_ATTACK":  510,
			"FIGHT_PROP_UNKNOWN_PROP": 1,
		},
		map[string]string{"FIGHT_PROP_BASE_ATTACK": "Base ATK"},
	)
	assert.Equal(t, map[string]float64{
		"Base ATK":                510,
		"FIGHT_PROP_UNKNOWN_PROP": 1,
	}, got)
}
