package domain

// Sentinel is the placeholder written into any field whose source structure
// is absent from the listing page.
const Sentinel = "N/A"

// Property is the canonical record extracted from one listing detail page.
// Every field is always populated: extraction falls back to Sentinel when the
// page lacks the corresponding structure. Values stay strings even when they
// are semantically numeric; normalization only reduces locale formatting.
type Property struct {
	Title             string
	Price             string
	Size              string
	Address           string
	Description       string
	BuildingYear      string
	ApartmentType     string
	DebtFreePrice     string
	MaintenanceCharge string
	LivingArea        string
	Rooms             string
	Floor             string
	TotalFloors       string
	District          string
	City              string
}

// NewProperty returns a record with every field set to the sentinel.
func NewProperty() Property {
	return Property{
		Title:             Sentinel,
		Price:             Sentinel,
		Size:              Sentinel,
		Address:           Sentinel,
		Description:       Sentinel,
		BuildingYear:      Sentinel,
		ApartmentType:     Sentinel,
		DebtFreePrice:     Sentinel,
		MaintenanceCharge: Sentinel,
		LivingArea:        Sentinel,
		Rooms:             Sentinel,
		Floor:             Sentinel,
		TotalFloors:       Sentinel,
		District:          Sentinel,
		City:              Sentinel,
	}
}
