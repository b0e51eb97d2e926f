package ambr

import (
	"encoding/json"
	"strconv"
)

// DomainReward is a potential reward from a domain.
type DomainReward struct {
	ID int
}

// Icon returns the icon URL for the reward item.
func (r DomainReward) Icon() string {
	return assetBaseURL + "/UI_ItemIcon_" + strconv.Itoa(r.ID) + ".png"
}

// Domain is a domain and its potential rewards for a specific day.
type Domain struct {
	ID      int    `validate:"required"`
	Name    string `validate:"required"`
	Rewards []DomainReward
	City    City
}

func (d *Domain) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID     int    `json:"id"`
		Name   string `json:"name"`
		Reward []int  `json:"reward"`
		City   City   `json:"city"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	d.ID = raw.ID
	d.Name = RemoveHTMLTags(raw.Name)
	d.City = raw.City
	for _, id := range raw.Reward {
		d.Rewards = append(d.Rewards, DomainReward{ID: id})
	}
	return nil
}

// Domains holds the domains available on each day of the week.
type Domains struct {
	Monday    []Domain
	Tuesday   []Domain
	Wednesday []Domain
	Thursday  []Domain
	Friday    []Domain
	Saturday  []Domain
	Sunday    []Domain
}

func (d *Domains) UnmarshalJSON(data []byte) error {
	var raw struct {
		Monday    map[string]Domain `json:"monday"`
		Tuesday   map[string]Domain `json:"tuesday"`
		Wednesday map[string]Domain `json:"wednesday"`
		Thursday  map[string]Domain `json:"thursday"`
		Friday    map[string]Domain `json:"friday"`
		Saturday  map[string]Domain `json:"saturday"`
		Sunday    map[string]Domain `json:"sunday"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	d.Monday = domainsFromMap(raw.Monday)
	d.Tuesday = domainsFromMap(raw.Tuesday)
	d.Wednesday = domainsFromMap(raw.Wednesday)
	d.Thursday = domainsFromMap(raw.Thursday)
	d.Friday = domainsFromMap(raw.Friday)
	d.Saturday = domainsFromMap(raw.Saturday)
	d.Sunday = domainsFromMap(raw.Sunday)
	return nil
}

func domainsFromMap(m map[string]Domain) []Domain {
	var domains []Domain
	for _, key := range sortedRawKeys(m) {
		domains = append(domains, m[key])
	}
	return domains
}
