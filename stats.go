package ambr

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
)

// PercentageFightProps lists the fight property identifiers whose values are
// percentages.
var PercentageFightProps = map[string]bool{
	"FIGHT_PROP_CRITICAL":          true,
	"FIGHT_PROP_CRITICAL_HURT":     true,
	"FIGHT_PROP_ATTACK_PERCENT":    true,
	"FIGHT_PROP_HP_PERCENT":        true,
	"FIGHT_PROP_DEFENSE_PERCENT":   true,
	"FIGHT_PROP_HEAL_ADD":          true,
	"FIGHT_PROP_CHARGE_EFFICIENCY": true,
	"FIGHT_PROP_WATER_ADD_HURT":    true,
	"FIGHT_PROP_FIRE_ADD_HURT":     true,
	"FIGHT_PROP_ELEC_ADD_HURT":     true,
	"FIGHT_PROP_WIND_ADD_HURT":     true,
	"FIGHT_PROP_ICE_ADD_HURT":      true,
	"FIGHT_PROP_ROCK_ADD_HURT":     true,
	"FIGHT_PROP_GRASS_ADD_HURT":    true,
	"FIGHT_PROP_PHYSICAL_ADD_HURT": true,
}

// BaseStat is a base stat of a character or weapon and its growth curve type.
type BaseStat struct {
	PropType   string  `json:"propType"`
	InitValue  float64 `json:"initValue"`
	GrowthType string  `json:"type"`
}

// PromoteStat is a stat bonus gained from a promotion (ascension).
type PromoteStat struct {
	ID    string
	Value float64
}

// PromoteCostItem is a material required for a promotion (ascension).
type PromoteCostItem struct {
	ID     int
	Amount int
}

// Promote is a single promotion (ascension) phase of a character or weapon.
type Promote struct {
	PromoteLevel        int               `json:"promoteLevel"`
	UnlockMaxLevel      int               `json:"unlockMaxLevel"`
	CostItems           []PromoteCostItem `json:"-"`
	AddStats            []PromoteStat     `json:"-"`
	RequiredPlayerLevel int               `json:"requiredPlayerLevel"`
	CoinCost            int               `json:"coinCost"`
}

func (p *Promote) UnmarshalJSON(data []byte) error {
	type alias Promote
	var raw struct {
		alias
		CostItems map[string]int     `json:"costItems"`
		AddStats  map[string]float64 `json:"addProps"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = Promote(raw.alias)
	p.CostItems = costItemsFromMap(raw.CostItems)
	p.AddStats = promoteStatsFromMap(raw.AddStats)
	return nil
}

// CurveLevel holds the growth multipliers for one level.
type CurveLevel struct {
	CurveInfos map[string]float64 `json:"curveInfos"`
}

// GrowthCurve maps level numbers (as strings) to growth multipliers per curve
// type, as returned by the avatarCurve, weaponCurve and monsterCurve
// endpoints.
type GrowthCurve map[string]CurveLevel

// CalculateUpgradeStatValues calculates the stat values of a character or
// weapon at a given level and ascension status from its base stats, promotion
// phases and growth curve data.
func CalculateUpgradeStatValues(stats []BaseStat, promotes []Promote, curve GrowthCurve, level int, ascended bool) map[string]float64 {
	result := make(map[string]float64)

	levelCurve := curve[strconv.Itoa(level)]
	for _, stat := range stats {
		if stat.PropType == "" {
			continue
		}
		result[stat.PropType] = stat.InitValue * levelCurve.CurveInfos[stat.GrowthType]
	}

	for i := len(promotes) - 1; i >= 0; i-- {
		promote := promotes[i]
		if promote.AddStats == nil {
			continue
		}
		if (level == promote.UnlockMaxLevel && ascended) || level > promote.UnlockMaxLevel {
			for _, stat := range promote.AddStats {
				if stat.Value == 0 {
					continue
				}
				result[stat.ID] += stat.Value
				if stat.ID == "FIGHT_PROP_CRITICAL" || stat.ID == "FIGHT_PROP_CRITICAL_HURT" {
					result[stat.ID] += 0.5
				}
			}
			break
		}
	}
	return result
}

// FormatStatValues renders calculated stat values as strings, with a '%'
// suffix for percentage stats.
func FormatStatValues(statValues map[string]float64) map[string]string {
	result := make(map[string]string, len(statValues))
	for prop, value := range statValues {
		if PercentageFightProps[prop] {
			result[prop] = strconv.FormatFloat(roundTo(value*100, 1), 'f', -1, 64) + "%"
		} else {
			result[prop] = strconv.Itoa(int(math.Round(value)))
		}
	}
	return result
}

// ReplaceFightPropWithName rewrites fight property identifiers (e.g.
// FIGHT_PROP_HP) to their localized names using the manualWeapon mapping.
func ReplaceFightPropWithName(statValues map[string]float64, manualWeapon map[string]string) map[string]float64 {
	result := make(map[string]float64, len(statValues))
	for prop, value := range statValues {
		name, ok := manualWeapon[prop]
		if !ok {
			name = prop
		}
		result[name] = value
	}
	return result
}

func roundTo(value float64, digits int) float64 {
	factor := math.Pow(10, float64(digits))
	return math.Round(value*factor) / factor
}

func costItemsFromMap(m map[string]int) []PromoteCostItem {
	if len(m) == 0 {
		return nil
	}
	items := make([]PromoteCostItem, 0, len(m))
	for id, amount := range m {
		numericID, err := strconv.Atoi(id)
		if err != nil {
			continue
		}
		items = append(items, PromoteCostItem{ID: numericID, Amount: amount})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

func promoteStatsFromMap(m map[string]float64) []PromoteStat {
	if len(m) == 0 {
		return nil
	}
	stats := make([]PromoteStat, 0, len(m))
	for id, value := range m {
		stats = append(stats, PromoteStat{ID: id, Value: value})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].ID < stats[j].ID })
	return stats
}
