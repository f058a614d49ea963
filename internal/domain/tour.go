package domain

// PriceVariation is one pricing tier: an inclusive person range
// ("1-2" or a single value like "6") and a per-person price in euros.
// Tiers are matched in authored order; the first covering tier wins and
// no overlap validation is performed.
type PriceVariation struct {
	ID      string `json:"id"`
	Persons string `json:"persons"`
	Price   int    `json:"price"`
}

type TourSEO struct {
	MetaTitle       LocalizedText `json:"metaTitle"`
	MetaDescription LocalizedText `json:"metaDescription"`
}

type Tour struct {
	ID               string           `json:"id"`
	Title            LocalizedText    `json:"title"`
	Subtitle         LocalizedText    `json:"subtitle"`
	ShortDescription LocalizedText    `json:"shortDescription"`
	LongDescription  LocalizedText    `json:"longDescription"`
	Images           []string         `json:"images"`
	Included         LocalizedList    `json:"included"`
	Duration         LocalizedText    `json:"duration"`
	MaxPeople        int              `json:"maxPeople"`
	PriceVariations  []PriceVariation `json:"priceVariations"`
	IsAvailable      bool             `json:"isAvailable"`
	IsFeatured       bool             `json:"isFeatured"`
	SEO              TourSEO          `json:"seo"`
}

// SiteSettings is a singleton row in the remote store.
type SiteSettings struct {
	HeroImage string `json:"heroImage"`
}

// SettingsRowID is the fixed identity of the settings row.
const SettingsRowID = 1
