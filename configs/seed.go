package configs

import (
	"log"

	"github.com/mauz21/Heat-box/entity"
	"github.com/shopspring/decimal"
)

// SeedCatalog inserts the launch menu once. Guarded by an emptiness check
// so restarts are no-ops.
func SeedCatalog() error {
	db := DB()

	var count int64
	if err := db.Model(&entity.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := []entity.Product{
		{
			Name:        "Diamond Crust Pizza",
			Description: "Signature spicy stuffed crust with triple-layered premium pepperoni and melt-in-your-mouth mozzarella.",
			Price:       decimal.RequireFromString("1850.00"),
			Category:    "Pizzas",
			ImageURL:    "https://images.unsplash.com/photo-1513104890138-7c749659a591",
			SpicyLevel:  2,
			IsPopular:   true,
		},
		{
			Name:        "Zinger Burger",
			Description: "Hand-breaded crispy chicken fillet, toasted sesame bun, and our top-secret spicy mayo infusion.",
			Price:       decimal.RequireFromString("650.00"),
			Category:    "Burgers",
			ImageURL:    "https://images.unsplash.com/photo-1568901346375-23c9450c58cd",
			SpicyLevel:  1,
			IsPopular:   true,
		},
		{
			Name:        "Atomic Wings",
			Description: "8 jumbo wings flame-grilled and tossed in our secret atomic sauce. Served with cool yogurt dip.",
			Price:       decimal.RequireFromString("950.00"),
			Category:    "Wings",
			ImageURL:    "https://images.unsplash.com/photo-1567620832903-9fc6debc209f",
			SpicyLevel:  3,
			IsPopular:   true,
		},
		{
			Name:         "Veggie Delight",
			Description:  "Fresh bell peppers, onions, mushrooms, and black olives on a crispy crust.",
			Price:        decimal.RequireFromString("1450.00"),
			Category:     "Pizzas",
			ImageURL:     "https://images.unsplash.com/photo-1574071318508-1cdbab80d002",
			SpicyLevel:   0,
			IsVegetarian: true,
		},
	}

	if err := db.Create(&products).Error; err != nil {
		return err
	}
	log.Println("product catalog seeded")
	return nil
}

// SeedLocations inserts the branch list once, same emptiness guard.
func SeedLocations() error {
	db := DB()

	var count int64
	if err := db.Model(&entity.Location{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	locations := []entity.Location{
		{
			Name:      "Heat Box F-7",
			Address:   "Shop 16, Block 12-B, F-7 Markaz, Islamabad",
			Latitude:  decimal.RequireFromString("33.7215"),
			Longitude: decimal.RequireFromString("73.0537"),
			Phone:     "+92 300 1234567",
			Hours:     "Mon - Sun: 12:00 PM - 12:00 AM",
		},
		{
			Name:      "Heat Box DHA Phase 2",
			Address:   "Sector E, DHA Phase 2, Islamabad",
			Latitude:  decimal.RequireFromString("33.5686"),
			Longitude: decimal.RequireFromString("73.1664"),
			Phone:     "+92 300 7654321",
			Hours:     "Mon - Sun: 12:00 PM - 02:00 AM",
		},
	}

	if err := db.Create(&locations).Error; err != nil {
		return err
	}
	log.Println("locations seeded")
	return nil
}
