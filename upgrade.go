package ambr

import (
	"encoding/json"
	"strconv"
)

// UpgradeItem is an item required for an upgrade, with its rarity.
type UpgradeItem struct {
	ID     int
	Rarity int
}

// Upgrade lists the upgrade materials of one character or weapon.
type Upgrade struct {
	ID    string `validate:"required"`
	Name  string
	Icon  string
	Items []UpgradeItem
}

// UpgradeData holds the upgrade material requirements for all characters and
// weapons, as returned by the upgrade endpoint.
type UpgradeData struct {
	Character []Upgrade
	Weapon    []Upgrade
}

func (u *UpgradeData) UnmarshalJSON(data []byte) error {
	var raw struct {
		Avatar map[string]upgradeRaw `json:"avatar"`
		Weapon map[string]upgradeRaw `json:"weapon"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	u.Character = upgradesFromMap(raw.Avatar)
	u.Weapon = upgradesFromMap(raw.Weapon)
	return nil
}

type upgradeRaw struct {
	Name  string         `json:"name"`
	Icon  string         `json:"icon"`
	Items map[string]int `json:"items"`
}

func upgradesFromMap(m map[string]upgradeRaw) []Upgrade {
	var upgrades []Upgrade
	for _, id := range sortedRawKeys(m) {
		raw := m[id]
		upgrade := Upgrade{ID: id, Name: raw.Name, Icon: assetIconURL(raw.Icon)}
		for _, itemID := range sortedRawKeys(raw.Items) {
			numericID, err := strconv.Atoi(itemID)
			if err != nil {
				continue
			}
			upgrade.Items = append(upgrade.Items, UpgradeItem{ID: numericID, Rarity: raw.Items[itemID]})
		}
		upgrades = append(upgrades, upgrade)
	}
	return upgrades
}
