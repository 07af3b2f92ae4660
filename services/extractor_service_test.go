package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"

	"github.com/Sami-Mannila/webscraper/domain"
)

func docFromHTML(t *testing.T, markup string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("failed to parse fixture: %v", err)
	}
	return doc
}

func detailPage(rows string) string {
	return fmt.Sprintf(`
		<html><body>
		<h1 class="heading listing-header__headline">Kaunis kaksio <span class="link__text">Kalasatama, Helsinki</span></h1>
		<div class="card-v2-text-container__group card-v2-text-container__group--boxed">
			<div class="card-v2-text-container__column card-v2-text-container__column--desktop-wide">
				<h2 class="card-v2-text-container__title">350 000 €</h2>
			</div>
			<div class="card-v2-text-container__column">
				<h2 class="card-v2-text-container__title">45,5 m²</h2>
			</div>
		</div>
		<div class="listing-overview">Valoisa kaksio meren äärellä.</div>
		<div class="listing-details-container"><dl>%s</dl></div>
		</body></html>`, rows)
}

func detailRow(term, value string) string {
	return fmt.Sprintf("<div><dt>%s</dt><dd>%s</dd></div>", term, value)
}

func TestExtract_FullDocument(t *testing.T) {
	rows := detailRow("Rakennusvuosi", "2018") +
		detailRow("Rakennuksen tyyppi", "Kerrostalo") +
		detailRow("Velaton hinta", "352 000 €") +
		detailRow("Hoitovastike", "245,50 €/kk") +
		detailRow("Asuinpinta-ala", "45,5 m²") +
		detailRow("Huoneita", "2") +
		detailRow("Kerros", "3/5") +
		detailRow("Kaupunginosa", "Kalasatama") +
		detailRow("Kaupunki", "Helsinki")

	prop := NewExtractorService().Extract(docFromHTML(t, detailPage(rows)))

	assert.Equal(t, "Kaunis kaksio Kalasatama, Helsinki", prop.Title)
	assert.Equal(t, "Kalasatama, Helsinki", prop.Address)
	assert.Equal(t, "350000", prop.Price)
	assert.Equal(t, "45.5", prop.Size)
	assert.Equal(t, "Valoisa kaksio meren äärellä.", prop.Description)
	assert.Equal(t, "2018", prop.BuildingYear)
	assert.Equal(t, "Kerrostalo", prop.ApartmentType)
	assert.Equal(t, "352000", prop.DebtFreePrice)
	assert.Equal(t, "245.50", prop.MaintenanceCharge)
	assert.Equal(t, "45.5", prop.LivingArea)
	assert.Equal(t, "2", prop.Rooms)
	assert.Equal(t, "3", prop.Floor)
	assert.Equal(t, "5", prop.TotalFloors)
	assert.Equal(t, "Kalasatama", prop.District)
	assert.Equal(t, "Helsinki", prop.City)
}

func TestExtract_EmptyDocumentDefaultsEveryField(t *testing.T) {
	prop := NewExtractorService().Extract(docFromHTML(t, "<html><body></body></html>"))
	assert.Equal(t, domain.NewProperty(), prop)
}

func TestExtract_MissingTitleNode(t *testing.T) {
	markup := `<html><body><div class="listing-overview">Teksti</div></body></html>`
	prop := NewExtractorService().Extract(docFromHTML(t, markup))

	assert.Equal(t, domain.Sentinel, prop.Title)
	assert.Equal(t, domain.Sentinel, prop.Address)
	assert.Equal(t, "Teksti", prop.Description)
}

func TestExtract_FloorWithoutSeparator(t *testing.T) {
	prop := NewExtractorService().Extract(docFromHTML(t, detailPage(detailRow("Kerros", "3"))))

	assert.Equal(t, "3", prop.Floor)
	assert.Equal(t, domain.Sentinel, prop.TotalFloors)
}

func TestExtract_SingleRoomsRowMutatesOnlyRooms(t *testing.T) {
	markup := `<html><body><div class="listing-details-container"><dl>` +
		detailRow("Huoneita", "3") +
		`</dl></div></body></html>`
	prop := NewExtractorService().Extract(docFromHTML(t, markup))

	expected := domain.NewProperty()
	expected.Rooms = "3"
	assert.Equal(t, expected, prop)
}

func TestExtract_UnknownLabelMutatesNothing(t *testing.T) {
	markup := `<html><body><div class="listing-details-container"><dl>` +
		detailRow("Tontin omistus", "Oma") +
		`</dl></div></body></html>`
	prop := NewExtractorService().Extract(docFromHTML(t, markup))

	assert.Equal(t, domain.NewProperty(), prop)
}

func TestExtract_RowWithMissingValueIsSkipped(t *testing.T) {
	markup := `<html><body><div class="listing-details-container"><dl>` +
		"<div><dt>Huoneita</dt></div>" +
		detailRow("Kaupunki", "Helsinki") +
		`</dl></div></body></html>`
	prop := NewExtractorService().Extract(docFromHTML(t, markup))

	assert.Equal(t, domain.Sentinel, prop.Rooms)
	assert.Equal(t, "Helsinki", prop.City)
}

// Every vocabulary label must route to exactly one field; Kerros fans out
// into the floor pair. This guards the route table against schema drift.
func TestExtract_VocabularyCoversSchema(t *testing.T) {
	cases := []struct {
		label  string
		value  string
		mutate func(*domain.Property)
	}{
		{"Rakennusvuosi", "1979", func(p *domain.Property) { p.BuildingYear = "1979" }},
		{"Rakennuksen tyyppi", "Kerrostalo", func(p *domain.Property) { p.ApartmentType = "Kerrostalo" }},
		{"Velaton hinta", "200 000 €", func(p *domain.Property) { p.DebtFreePrice = "200000" }},
		{"Hoitovastike", "300 €/kk", func(p *domain.Property) { p.MaintenanceCharge = "300" }},
		{"Asuinpinta-ala", "62 m²", func(p *domain.Property) { p.LivingArea = "62" }},
		{"Huoneita", "3", func(p *domain.Property) { p.Rooms = "3" }},
		{"Kerros", "2/6", func(p *domain.Property) { p.Floor = "2"; p.TotalFloors = "6" }},
		{"Kaupunginosa", "Vallila", func(p *domain.Property) { p.District = "Vallila" }},
		{"Kaupunki", "Helsinki", func(p *domain.Property) { p.City = "Helsinki" }},
	}

	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			markup := `<html><body><div class="listing-details-container"><dl>` +
				detailRow(tc.label, tc.value) +
				`</dl></div></body></html>`
			prop := NewExtractorService().Extract(docFromHTML(t, markup))

			expected := domain.NewProperty()
			tc.mutate(&expected)
			assert.Equal(t, expected, prop)
		})
	}
}
