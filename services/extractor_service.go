package services

import (
	"log"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Sami-Mannila/webscraper/domain"
)

// fieldRoute maps one detail-row label to a Property field. When unit is set
// the value passes through Normalize with that marker before assignment.
type fieldRoute struct {
	unit   string
	assign func(*domain.Property, string)
}

// detailRoutes is the static label vocabulary of the detail rows. Kerros is
// handled separately because it fans out into two fields.
var detailRoutes = map[string]fieldRoute{
	domain.LabelBuildingYear: {
		assign: func(p *domain.Property, v string) { p.BuildingYear = v },
	},
	domain.LabelApartmentType: {
		assign: func(p *domain.Property, v string) { p.ApartmentType = v },
	},
	domain.LabelDebtFreePrice: {
		unit:   domain.UnitCurrency,
		assign: func(p *domain.Property, v string) { p.DebtFreePrice = v },
	},
	domain.LabelMaintenanceCharge: {
		unit:   domain.UnitCurrencyMonthly,
		assign: func(p *domain.Property, v string) { p.MaintenanceCharge = v },
	},
	domain.LabelLivingArea: {
		unit:   domain.UnitArea,
		assign: func(p *domain.Property, v string) { p.LivingArea = v },
	},
	domain.LabelRooms: {
		assign: func(p *domain.Property, v string) { p.Rooms = v },
	},
	domain.LabelDistrict: {
		assign: func(p *domain.Property, v string) { p.District = v },
	},
	domain.LabelCity: {
		assign: func(p *domain.Property, v string) { p.City = v },
	},
}

// ExtractorService maps a parsed listing detail page into a Property record.
// Every lookup is independent and tolerant: a missing node leaves the
// corresponding field at its sentinel and never fails the extraction.
type ExtractorService struct{}

func NewExtractorService() *ExtractorService {
	return &ExtractorService{}
}

// Extract runs the fixed set of structural queries against doc and returns
// the resulting record. It never returns an error; missing structure only
// produces sentinel fields.
func (s *ExtractorService) Extract(doc *goquery.Document) domain.Property {
	prop := domain.NewProperty()

	if title := doc.Find(domain.SelectorTitle).First(); title.Length() > 0 {
		prop.Title = cleanText(title.Text())
		if addr := title.Find("span").First(); addr.Length() > 0 {
			prop.Address = cleanText(addr.Text())
		}
	}

	if group := doc.Find(domain.SelectorPriceSizeGroup).First(); group.Length() > 0 {
		if price := group.Find(domain.SelectorPriceColumn).First(); price.Length() > 0 {
			prop.Price = Normalize(price.Text(), domain.UnitCurrency)
		}
		if size := group.Find(domain.SelectorSizeColumn).First(); size.Length() > 0 {
			prop.Size = Normalize(size.Text(), domain.UnitArea)
		}
	}

	if desc := doc.Find(domain.SelectorDescription).First(); desc.Length() > 0 {
		prop.Description = cleanText(desc.Text())
	}

	details := doc.Find(domain.SelectorDetails).First()
	if details.Length() == 0 {
		log.Println("details container missing, keeping defaults")
		return prop
	}

	details.Find(domain.SelectorDetailsRow).Each(func(_ int, row *goquery.Selection) {
		term := row.Find(domain.SelectorDetailsTerm).First()
		value := row.Find(domain.SelectorDetailsValue).First()
		if term.Length() == 0 || value.Length() == 0 {
			log.Println("skipping detail row with missing term or value")
			return
		}
		routeDetail(&prop, cleanText(term.Text()), cleanText(value.Text()))
	})

	return prop
}

// routeDetail assigns one detail-row value to its field. Unknown labels
// mutate nothing.
func routeDetail(prop *domain.Property, label, value string) {
	if label == domain.LabelFloor {
		current, total, found := strings.Cut(value, domain.FloorSeparator)
		prop.Floor = Normalize(current, "")
		if found {
			prop.TotalFloors = Normalize(total, "")
		}
		return
	}

	route, ok := detailRoutes[label]
	if !ok {
		return
	}
	if route.unit != "" {
		value = Normalize(value, route.unit)
	}
	route.assign(prop, value)
}

// cleanText trims and collapses internal whitespace, which rendered markup
// carries in abundance.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
