package ambr

import (
	"context"
	"encoding/json"
	"strconv"
)

// fetchOptions holds per-call overrides.
type fetchOptions struct {
	noCache bool
	lang    *Language
}

// FetchOption configures a single fetch call.
type FetchOption func(*fetchOptions)

// FetchWithoutCache bypasses the cache for this call: the response is fetched
// live and not written back.
func FetchWithoutCache() FetchOption {
	return func(o *fetchOptions) {
		o.noCache = true
	}
}

// FetchWithLanguage overrides the client language for this call.
func FetchWithLanguage(lang Language) FetchOption {
	return func(o *fetchOptions) {
		o.lang = &lang
	}
}

func applyFetchOptions(opts []FetchOption) fetchOptions {
	var options fetchOptions
	for _, opt := range opts {
		opt(&options)
	}
	return options
}

// envelope is the outer response shape common to every endpoint.
type envelope struct {
	Response int             `json:"response"`
	Data     json.RawMessage `json:"data"`
}

// data fetches endpoint and unwraps the response envelope.
func (c *Client) data(ctx context.Context, endpoint string, static bool, opts []FetchOption) (json.RawMessage, error) {
	body, err := c.request(ctx, endpoint, static, applyFetchOptions(opts))
	if err != nil {
		return nil, err
	}
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &SchemaError{Endpoint: endpoint, Err: err}
	}
	return env.Data, nil
}

// fetchItems decodes a list endpoint: the envelope data holds an id-keyed
// "items" object. Items come back sorted by id.
func fetchItems[T any](ctx context.Context, c *Client, endpoint string, opts []FetchOption) ([]T, error) {
	data, err := c.data(ctx, endpoint, false, opts)
	if err != nil {
		return nil, err
	}
	var payload struct {
		Items map[string]T `json:"items"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, &SchemaError{Endpoint: endpoint, Err: err}
	}
	items := make([]T, 0, len(payload.Items))
	for _, key := range sortedRawKeys(payload.Items) {
		item := payload.Items[key]
		if err := c.validator.check(endpoint, item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// fetchOne decodes a detail or singleton endpoint: the envelope data is the
// model itself.
func fetchOne[T any](ctx context.Context, c *Client, endpoint string, static bool, opts []FetchOption) (T, error) {
	var out T
	data, err := c.data(ctx, endpoint, static, opts)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, &SchemaError{Endpoint: endpoint, Err: err}
	}
	if err := c.validator.check(endpoint, out); err != nil {
		return out, err
	}
	return out, nil
}

// FetchAchievementCategories fetches all achievement categories.
func (c *Client) FetchAchievementCategories(ctx context.Context, opts ...FetchOption) ([]AchievementCategory, error) {
	data, err := c.data(ctx, "achievement", false, opts)
	if err != nil {
		return nil, err
	}
	var payload map[string]AchievementCategory
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, &SchemaError{Endpoint: "achievement", Err: err}
	}
	categories := make([]AchievementCategory, 0, len(payload))
	for _, key := range sortedRawKeys(payload) {
		category := payload[key]
		if err := c.validator.check("achievement", category); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, nil
}

// FetchArtifactSets fetches all artifact sets.
func (c *Client) FetchArtifactSets(ctx context.Context, opts ...FetchOption) ([]ArtifactSet, error) {
	return fetchItems[ArtifactSet](ctx, c, "reliquary", opts)
}

// FetchArtifactSetDetail fetches an artifact set detail by id.
func (c *Client) FetchArtifactSetDetail(ctx context.Context, id int, opts ...FetchOption) (ArtifactSetDetail, error) {
	return fetchOne[ArtifactSetDetail](ctx, c, "reliquary/"+strconv.Itoa(id), false, opts)
}

// FetchBooks fetches all books.
func (c *Client) FetchBooks(ctx context.Context, opts ...FetchOption) ([]Book, error) {
	return fetchItems[Book](ctx, c, "book", opts)
}

// FetchBookDetail fetches a book detail by id.
func (c *Client) FetchBookDetail(ctx context.Context, id int, opts ...FetchOption) (BookDetail, error) {
	return fetchOne[BookDetail](ctx, c, "book/"+strconv.Itoa(id), false, opts)
}

// FetchCharacters fetches all characters.
func (c *Client) FetchCharacters(ctx context.Context, opts ...FetchOption) ([]Character, error) {
	return fetchItems[Character](ctx, c, "avatar", opts)
}

// FetchCharacterDetail fetches a character detail by id. Character ids are
// strings: traveler variants look like "10000005-anemo".
func (c *Client) FetchCharacterDetail(ctx context.Context, id string, opts ...FetchOption) (CharacterDetail, error) {
	return fetchOne[CharacterDetail](ctx, c, "avatar/"+id, false, opts)
}

// FetchCharacterFetter fetches a character's quotes and stories by character
// id.
func (c *Client) FetchCharacterFetter(ctx context.Context, id string, opts ...FetchOption) (CharacterFetter, error) {
	return fetchOne[CharacterFetter](ctx, c, "avatarFetter/"+id, false, opts)
}

// FetchCharacterGuide fetches the community guide data for a character.
func (c *Client) FetchCharacterGuide(ctx context.Context, id string, opts ...FetchOption) (CharacterGuide, error) {
	return fetchOne[CharacterGuide](ctx, c, "advanced/avatarGuides/"+id, true, opts)
}

// FetchFoods fetches all food items.
func (c *Client) FetchFoods(ctx context.Context, opts ...FetchOption) ([]Food, error) {
	return fetchItems[Food](ctx, c, "food", opts)
}

// FetchFoodDetail fetches a food detail by id.
func (c *Client) FetchFoodDetail(ctx context.Context, id int, opts ...FetchOption) (FoodDetail, error) {
	return fetchOne[FoodDetail](ctx, c, "food/"+strconv.Itoa(id), false, opts)
}

// FetchFurnitures fetches all furniture.
func (c *Client) FetchFurnitures(ctx context.Context, opts ...FetchOption) ([]Furniture, error) {
	return fetchItems[Furniture](ctx, c, "furniture", opts)
}

// FetchFurnitureDetail fetches a furniture detail by id.
func (c *Client) FetchFurnitureDetail(ctx context.Context, id int, opts ...FetchOption) (FurnitureDetail, error) {
	return fetchOne[FurnitureDetail](ctx, c, "furniture/"+strconv.Itoa(id), false, opts)
}

// FetchFurnitureSets fetches all furniture sets.
func (c *Client) FetchFurnitureSets(ctx context.Context, opts ...FetchOption) ([]FurnitureSet, error) {
	return fetchItems[FurnitureSet](ctx, c, "furnitureSuite", opts)
}

// FetchFurnitureSetDetail fetches a furniture set detail by id.
func (c *Client) FetchFurnitureSetDetail(ctx context.Context, id int, opts ...FetchOption) (FurnitureSetDetail, error) {
	return fetchOne[FurnitureSetDetail](ctx, c, "furnitureSuite/"+strconv.Itoa(id), false, opts)
}

// FetchMaterials fetches all materials.
func (c *Client) FetchMaterials(ctx context.Context, opts ...FetchOption) ([]Material, error) {
	return fetchItems[Material](ctx, c, "material", opts)
}

// FetchMaterialDetail fetches a material detail by id.
func (c *Client) FetchMaterialDetail(ctx context.Context, id int, opts ...FetchOption) (MaterialDetail, error) {
	return fetchOne[MaterialDetail](ctx, c, "material/"+strconv.Itoa(id), false, opts)
}

// FetchMonsters fetches all monsters and living beings.
func (c *Client) FetchMonsters(ctx context.Context, opts ...FetchOption) ([]Monster, error) {
	return fetchItems[Monster](ctx, c, "monster", opts)
}

// FetchMonsterDetail fetches a monster detail by id.
func (c *Client) FetchMonsterDetail(ctx context.Context, id int, opts ...FetchOption) (MonsterDetail, error) {
	return fetchOne[MonsterDetail](ctx, c, "monster/"+strconv.Itoa(id), false, opts)
}

// FetchNamecards fetches all namecards.
func (c *Client) FetchNamecards(ctx context.Context, opts ...FetchOption) ([]Namecard, error) {
	return fetchItems[Namecard](ctx, c, "namecard", opts)
}

// FetchNamecardDetail fetches a namecard detail by id.
func (c *Client) FetchNamecardDetail(ctx context.Context, id int, opts ...FetchOption) (NamecardDetail, error) {
	return fetchOne[NamecardDetail](ctx, c, "namecard/"+strconv.Itoa(id), false, opts)
}

// FetchQuests fetches all quest chapters.
func (c *Client) FetchQuests(ctx context.Context, opts ...FetchOption) ([]Quest, error) {
	return fetchItems[Quest](ctx, c, "quest", opts)
}

// FetchTCGCards fetches all TCG cards.
func (c *Client) FetchTCGCards(ctx context.Context, opts ...FetchOption) ([]TCGCard, error) {
	return fetchItems[TCGCard](ctx, c, "gcg", opts)
}

// FetchTCGCardDetail fetches a TCG card detail by id.
func (c *Client) FetchTCGCardDetail(ctx context.Context, id int, opts ...FetchOption) (TCGCardDetail, error) {
	return fetchOne[TCGCardDetail](ctx, c, "gcg/"+strconv.Itoa(id), false, opts)
}

// FetchWeapons fetches all weapons.
func (c *Client) FetchWeapons(ctx context.Context, opts ...FetchOption) ([]Weapon, error) {
	return fetchItems[Weapon](ctx, c, "weapon", opts)
}

// FetchWeaponDetail fetches a weapon detail by id.
func (c *Client) FetchWeaponDetail(ctx context.Context, id int, opts ...FetchOption) (WeaponDetail, error) {
	return fetchOne[WeaponDetail](ctx, c, "weapon/"+strconv.Itoa(id), false, opts)
}

// FetchWeaponTypes fetches the weapon type identifier to display name
// mapping.
func (c *Client) FetchWeaponTypes(ctx context.Context, opts ...FetchOption) (map[string]string, error) {
	data, err := c.data(ctx, "weapon", false, opts)
	if err != nil {
		return nil, err
	}
	var payload struct {
		Types map[string]string `json:"types"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, &SchemaError{Endpoint: "weapon", Err: err}
	}
	return payload.Types, nil
}

// FetchDomains fetches the domain schedule for every day of the week.
func (c *Client) FetchDomains(ctx context.Context, opts ...FetchOption) (Domains, error) {
	return fetchOne[Domains](ctx, c, "dailyDungeon", false, opts)
}

// FetchChangelogs fetches all game version changelogs.
func (c *Client) FetchChangelogs(ctx context.Context, opts ...FetchOption) ([]Changelog, error) {
	data, err := c.data(ctx, "changelog", true, opts)
	if err != nil {
		return nil, err
	}
	var payload map[string]Changelog
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, &SchemaError{Endpoint: "changelog", Err: err}
	}
	return changelogsFromMap(payload), nil
}

// FetchUpgradeData fetches the upgrade material requirements of all
// characters and weapons.
func (c *Client) FetchUpgradeData(ctx context.Context, opts ...FetchOption) (UpgradeData, error) {
	return fetchOne[UpgradeData](ctx, c, "upgrade", false, opts)
}

// FetchManualWeapon fetches the localized names of fight property and weapon
// identifiers.
func (c *Client) FetchManualWeapon(ctx context.Context, opts ...FetchOption) (map[string]string, error) {
	data, err := c.data(ctx, "manualWeapon", false, opts)
	if err != nil {
		return nil, err
	}
	var payload map[string]string
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, &SchemaError{Endpoint: "manualWeapon", Err: err}
	}
	return payload, nil
}

// FetchReadable fetches a readable (book volume or weapon story text) by id,
// with markup stripped.
func (c *Client) FetchReadable(ctx context.Context, id string, opts ...FetchOption) (string, error) {
	endpoint := "readable/" + id
	data, err := c.data(ctx, endpoint, false, opts)
	if err != nil {
		return "", err
	}
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return "", &SchemaError{Endpoint: endpoint, Err: err}
	}
	return RemoveHTMLTags(text), nil
}

// FetchAvatarCurve fetches the character stat growth curves.
func (c *Client) FetchAvatarCurve(ctx context.Context, opts ...FetchOption) (GrowthCurve, error) {
	return fetchCurve(ctx, c, "avatarCurve", opts)
}

// FetchWeaponCurve fetches the weapon stat growth curves.
func (c *Client) FetchWeaponCurve(ctx context.Context, opts ...FetchOption) (GrowthCurve, error) {
	return fetchCurve(ctx, c, "weaponCurve", opts)
}

// FetchMonsterCurve fetches the monster stat growth curves.
func (c *Client) FetchMonsterCurve(ctx context.Context, opts ...FetchOption) (GrowthCurve, error) {
	return fetchCurve(ctx, c, "monsterCurve", opts)
}

func fetchCurve(ctx context.Context, c *Client, endpoint string, opts []FetchOption) (GrowthCurve, error) {
	data, err := c.data(ctx, endpoint, true, opts)
	if err != nil {
		return nil, err
	}
	var curve GrowthCurve
	if err := json.Unmarshal(data, &curve); err != nil {
		return nil, &SchemaError{Endpoint: endpoint, Err: err}
	}
	return curve, nil
}

// FetchAbyssData fetches the Spiral Abyss cycle configurations and enemy
// roster.
func (c *Client) FetchAbyssData(ctx context.Context, opts ...FetchOption) (AbyssResponse, error) {
	return fetchOne[AbyssResponse](ctx, c, "tower", false, opts)
}
