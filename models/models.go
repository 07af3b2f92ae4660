package models

import (
	"time"

	"github.com/Sami-Mannila/webscraper/domain"
)

// Listing is the persisted form of one extracted property record.
type Listing struct {
	ID                int       `gorm:"primaryKey;autoIncrement"`
	Title             string    `gorm:"type:text"`
	Price             string    `gorm:"type:text"`
	Size              string    `gorm:"type:text"`
	Address           string    `gorm:"type:text"`
	Description       string    `gorm:"type:text"`
	BuildingYear      string    `gorm:"column:building_year;type:text"`
	ApartmentType     string    `gorm:"column:apartment_type;type:text"`
	DebtFreePrice     string    `gorm:"column:debt_free_price;type:text"`
	MaintenanceCharge string    `gorm:"column:maintenance_charge;type:text"`
	LivingArea        string    `gorm:"column:living_area;type:text"`
	Rooms             string    `gorm:"type:text"`
	Floor             string    `gorm:"type:text"`
	TotalFloors       string    `gorm:"column:total_floors;type:text"`
	District          string    `gorm:"type:text"`
	City              string    `gorm:"type:text"`
	ScrapedAt         time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP"`
}

// TableName overrides the table name
func (Listing) TableName() string {
	return "listings"
}

// FromProperty maps an extracted record into its persisted form.
func FromProperty(p domain.Property) Listing {
	return Listing{
		Title:             p.Title,
		Price:             p.Price,
		Size:              p.Size,
		Address:           p.Address,
		Description:       p.Description,
		BuildingYear:      p.BuildingYear,
		ApartmentType:     p.ApartmentType,
		DebtFreePrice:     p.DebtFreePrice,
		MaintenanceCharge: p.MaintenanceCharge,
		LivingArea:        p.LivingArea,
		Rooms:             p.Rooms,
		Floor:             p.Floor,
		TotalFloors:       p.TotalFloors,
		District:          p.District,
		City:              p.City,
	}
}
