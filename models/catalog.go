package models

// Catalog is the static fixture document the whole session runs on. It is
// loaded once at startup and never mutated.
type Catalog struct {
	AppConfig  AppConfig  `json:"appConfig" validate:"required"`
	Categories []Category `json:"categories"`
	TentHouses []Vendor   `json:"tentHouses" validate:"required,min=1,dive"`
}

type AppConfig struct {
	AppName           string   `json:"appName" validate:"required"`
	Tagline           string   `json:"tagline"`
	Currency          string   `json:"currency" validate:"required"`
	SearchPlaceholder string   `json:"searchPlaceholder"`
	SupportedCities   []string `json:"supportedCities" validate:"required,min=1"`
	PopularCities     []string `json:"popularCities"`
}

// Category drives the quick-search grid; tapping one runs its SearchTerm
// through the regular vendor search.
type Category struct {
	Name       string `json:"name"`
	Icon       string `json:"icon"`
	SearchTerm string `json:"searchTerm"`
}

// Vendor is a tent house: a rental-goods provider with its item list.
type Vendor struct {
	ID          uint    `json:"id" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Location    string  `json:"location" validate:"required"`
	Rating      float64 `json:"rating" validate:"gte=0,lte=5"`
	Items       []Item  `json:"items" validate:"dive"`
}

// Item is a single rentable product. Its name is unique within its vendor,
// not globally; cart identity is always (vendor id, item name).
type Item struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	ImageURL    string  `json:"imageUrl"`
}
