package repositories

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"

	"github.com/Sami-Mannila/webscraper/domain"
)

// csvHeader fixes the column order of the output table; unit-bearing columns
// carry their unit in the header.
var csvHeader = []string{
	"Title",
	"Price (EUR)",
	"Size (m2)",
	"Address",
	"Description",
	"Building year",
	"Apartment type",
	"Debt-free price (EUR)",
	"Maintenance charge (EUR/month)",
	"Living area (m2)",
	"Rooms",
	"Floor",
	"Total floors",
	"District",
	"City",
}

// CSVRepository persists an ordered sequence of records to a delimited file:
// one header row, one row per record.
type CSVRepository struct {
	path      string
	delimiter rune
}

func NewCSVRepository(path string, delimiter rune) *CSVRepository {
	if delimiter == 0 {
		delimiter = ';'
	}
	return &CSVRepository{path: path, delimiter: delimiter}
}

func (r *CSVRepository) Write(properties []domain.Property) error {
	f, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", r.path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = r.delimiter

	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, p := range properties {
		if err := w.Write(propertyRow(p)); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", r.path, err)
	}

	log.Printf("Data saved to %s", r.path)
	return nil
}

// propertyRow orders the record's fields to match csvHeader.
func propertyRow(p domain.Property) []string {
	return []string{
		p.Title,
		p.Price,
		p.Size,
		p.Address,
		p.Description,
		p.BuildingYear,
		p.ApartmentType,
		p.DebtFreePrice,
		p.MaintenanceCharge,
		p.LivingArea,
		p.Rooms,
		p.Floor,
		p.TotalFloors,
		p.District,
		p.City,
	}
}
