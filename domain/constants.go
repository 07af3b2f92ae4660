package domain

// Labels of the key/value rows on a listing detail page. The site renders
// them in Finnish; each one routes to exactly one Property field.
const (
	LabelBuildingYear      = "Rakennusvuosi"
	LabelApartmentType     = "Rakennuksen tyyppi"
	LabelDebtFreePrice     = "Velaton hinta"
	LabelMaintenanceCharge = "Hoitovastike"
	LabelLivingArea        = "Asuinpinta-ala"
	LabelRooms             = "Huoneita"
	LabelFloor             = "Kerros"
	LabelDistrict          = "Kaupunginosa"
	LabelCity              = "Kaupunki"
)

// Unit markers stripped by the normalizer.
const (
	UnitCurrency        = "€"
	UnitCurrencyMonthly = "€/kk"
	UnitArea            = "m²"
)

// FloorSeparator splits a "current/total" floor value.
const FloorSeparator = "/"

// PaginationParam is the query parameter the search results page uses for
// its page index.
const PaginationParam = "pagination"
