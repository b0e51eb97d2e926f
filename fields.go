package ambr

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

const assetBaseURL = "https://gi.yatta.moe/assets/UI"

func assetIconURL(name string) string {
	return assetBaseURL + "/" + name + ".png"
}

func reliquaryIconURL(name string) string {
	return assetBaseURL + "/reliquary/" + name + ".png"
}

func namecardIconURL(name string) string {
	return assetBaseURL + "/namecard/" + name + ".png"
}

func furnitureIconURL(name string) string {
	return assetBaseURL + "/furniture/" + name + ".png"
}

func furnitureSetIconURL(name string) string {
	return assetBaseURL + "/furnitureSuite/" + name + ".png"
}

func gcgIconURL(name string) string {
	return assetBaseURL + "/gcg/" + name + ".png"
}

// monsterIconURL dispatches on the asset name: dedicated monster icons live
// under a separate directory.
func monsterIconURL(name string) string {
	if strings.Contains(name, "MonsterIcon") {
		return assetBaseURL + "/monster/" + name + ".png"
	}
	return assetIconURL(name)
}

// flexString is a string that also accepts JSON numbers, matching the API's
// habit of returning numeric names and ids.
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = flexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*s = flexString(n.String())
	return nil
}

// unixTime decodes a unix timestamp in seconds. Zero or null timestamps decode
// to the zero time.
type unixTime struct {
	time.Time
}

func (t *unixTime) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		t.Time = time.Time{}
		return nil
	}
	var secs int64
	if err := json.Unmarshal(data, &secs); err != nil {
		return err
	}
	if secs != 0 {
		t.Time = time.Unix(secs, 0)
	}
	return nil
}

// sortedRawKeys returns the keys of an id-keyed JSON object, numerically
// ascending where the keys are numeric, lexicographically otherwise. The API
// returns collections as objects keyed by id; sorting keeps list order
// deterministic.
func sortedRawKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, errA := strconv.Atoi(keys[i])
		b, errB := strconv.Atoi(keys[j])
		if errA == nil && errB == nil {
			return a < b
		}
		return keys[i] < keys[j]
	})
	return keys
}
