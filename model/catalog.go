package model

// City is a locality the upstream rate card API knows about.
type City struct {
	Code  string // City code passed to the rate card API
	Label string // Display name
}

// Product is an orderable forex product.
type Product struct {
	Value string // Machine value used in checkout redirects
	Label string // Display name
}

// Catalog bundles the selectable options of the quick-order form.
type Catalog struct {
	Products   []Product
	Cities     []City
	Currencies []string
}

// DefaultCatalog returns the built-in catalog, used whenever no
// persisted catalog is available.
func DefaultCatalog() Catalog {
	return Catalog{
		Products: []Product{
			{Value: "forex_card", Label: "Forex Card"},
			{Value: "currency_notes", Label: "Currency Notes"},
		},
		Cities: []City{
			{Code: "delhi", Label: "Delhi"},
			{Code: "mumbai", Label: "Mumbai"},
			{Code: "bangalore", Label: "Bangalore"},
			{Code: "hyderabad", Label: "Hyderabad"},
			{Code: "chennai", Label: "Chennai"},
			{Code: "kolkata", Label: "Kolkata"},
			{Code: "pune", Label: "Pune"},
			{Code: "gurgaon", Label: "Gurgaon"},
			{Code: "noida", Label: "Noida"},
			{Code: "ahmedabad", Label: "Ahmedabad"},
			{Code: "jaipur", Label: "Jaipur"},
			{Code: "chandigarh", Label: "Chandigarh"},
		},
		Currencies: []string{
			"USD", "EUR", "GBP", "AED", "SAR", "CAD",
			"AUD", "SGD", "THB", "JPY", "CHF", "HKD",
		},
	}
}

// FallbackDeliverySLA matches the copy shown on the provider's
// own widget when the rate card carries no delivery estimate.
const FallbackDeliverySLA = "Same-day if placed by 1PM on working days; otherwise next working day."
