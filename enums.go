package ambr

// Language is a locale code supported by the API. It selects the language of
// all localized fields in the returned data.
type Language string

const (
	LanguageCHT Language = "cht"
	LanguageCHS Language = "chs"
	LanguageDE  Language = "de"
	LanguageEN  Language = "en"
	LanguageES  Language = "es"
	LanguageFR  Language = "fr"
	LanguageID  Language = "id"
	LanguageJP  Language = "jp"
	LanguageKR  Language = "kr"
	LanguagePT  Language = "pt"
	LanguageRU  Language = "ru"
	LanguageTH  Language = "th"
	LanguageVI  Language = "vi"
	LanguageIT  Language = "it"
	LanguageTR  Language = "tr"
)

// Languages lists every locale code the API supports.
var Languages = []Language{
	LanguageCHT, LanguageCHS, LanguageDE, LanguageEN, LanguageES,
	LanguageFR, LanguageID, LanguageJP, LanguageKR, LanguagePT,
	LanguageRU, LanguageTH, LanguageVI, LanguageIT, LanguageTR,
}

func (l Language) String() string {
	return string(l)
}

// IsValid reports whether l is one of the supported locale codes.
func (l Language) IsValid() bool {
	for _, lang := range Languages {
		if l == lang {
			return true
		}
	}
	return false
}

// WeaponType is a character weapon type identifier.
type WeaponType string

const (
	WeaponTypeBow      WeaponType = "WEAPON_BOW"
	WeaponTypeCatalyst WeaponType = "WEAPON_CATALYST"
	WeaponTypeClaymore WeaponType = "WEAPON_CLAYMORE"
	WeaponTypeSword    WeaponType = "WEAPON_SWORD_ONE_HAND"
	WeaponTypePole     WeaponType = "WEAPON_POLE"
)

// Element is a character element.
type Element string

const (
	ElementAnemo   Element = "Wind"
	ElementGeo     Element = "Rock"
	ElementElectro Element = "Electric"
	ElementPyro    Element = "Fire"
	ElementHydro   Element = "Water"
	ElementCryo    Element = "Ice"
	ElementDendro  Element = "Grass"
)

// SpecialStat is a character's specialized ascension stat identifier.
// Unknown identifiers returned by the API are kept as-is.
type SpecialStat string

const (
	SpecialStatCritRate SpecialStat = "FIGHT_PROP_CRITICAL"
	SpecialStatCritDMG  SpecialStat = "FIGHT_PROP_CRITICAL_HURT"

	SpecialStatBaseAttack SpecialStat = "FIGHT_PROP_BASE_ATTACK"
	SpecialStatAttack     SpecialStat = "FIGHT_PROP_ATTACK_PERCENT"
	SpecialStatHP         SpecialStat = "FIGHT_PROP_HP_PERCENT"
	SpecialStatDefense    SpecialStat = "FIGHT_PROP_DEFENSE_PERCENT"

	SpecialStatHealBonus        SpecialStat = "FIGHT_PROP_HEAL_ADD"
	SpecialStatElementalMastery SpecialStat = "FIGHT_PROP_ELEMENT_MASTERY"
	SpecialStatEnergyRecharge   SpecialStat = "FIGHT_PROP_CHARGE_EFFICIENCY"

	SpecialStatHydroDMGBonus    SpecialStat = "FIGHT_PROP_WATER_ADD_HURT"
	SpecialStatPyroDMGBonus     SpecialStat = "FIGHT_PROP_FIRE_ADD_HURT"
	SpecialStatElectroDMGBonus  SpecialStat = "FIGHT_PROP_ELEC_ADD_HURT"
	SpecialStatAnemoDMGBonus    SpecialStat = "FIGHT_PROP_WIND_ADD_HURT"
	SpecialStatCryoDMGBonus     SpecialStat = "FIGHT_PROP_ICE_ADD_HURT"
	SpecialStatGeoDMGBonus      SpecialStat = "FIGHT_PROP_ROCK_ADD_HURT"
	SpecialStatDendroDMGBonus   SpecialStat = "FIGHT_PROP_GRASS_ADD_HURT"
	SpecialStatPhysicalDMGBonus SpecialStat = "FIGHT_PROP_PHYSICAL_ADD_HURT"
)

// TalentType classifies a character talent.
type TalentType int

const (
	TalentTypeNormal   TalentType = 0
	TalentTypeSkill    TalentType = 1
	TalentTypeUltimate TalentType = 2
	TalentTypePassive  TalentType = 3
)

// ExtraLevelType identifies which talent gains extra levels from a
// constellation.
type ExtraLevelType int

const (
	ExtraLevelTypeNormal   ExtraLevelType = 1
	ExtraLevelTypeSkill    ExtraLevelType = 2
	ExtraLevelTypeUltimate ExtraLevelType = 9
)

// City is a region a domain belongs to.
type City int

const (
	CityMondstadt City = 1
	CityLiyue     City = 2
	CityInazuma   City = 3
	CitySumeru    City = 4
	CityFontaine  City = 5
	CityNatlan    City = 6
)

// ItemCategory is a changelog item category.
type ItemCategory string

const (
	ItemCategoryCharacter ItemCategory = "avatar"
	ItemCategoryWeapon    ItemCategory = "weapon"
	ItemCategoryMaterial  ItemCategory = "material"
	ItemCategoryArtifact  ItemCategory = "reliquary"
	ItemCategoryFood      ItemCategory = "food"
	ItemCategoryBook      ItemCategory = "book"
	ItemCategoryNamecard  ItemCategory = "namecard"
	ItemCategoryMonster   ItemCategory = "monster"
	ItemCategoryFurniture ItemCategory = "furniture"
	ItemCategoryTCG       ItemCategory = "gcg"
	ItemCategoryQuest     ItemCategory = "quest"
)
