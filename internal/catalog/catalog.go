package catalog

import "github.com/stpnv0/VillaBooker/internal/domain"

const (
	CheckInTime  = "15:00"
	CheckOutTime = "11:00"
)

// Default returns the rooms and pricing rules of the property.
func Default() *domain.Catalog {
	return &domain.Catalog{
		Rooms: []domain.Room{
			{
				ID: "ocean-suite-a", Name: "Ocean Suite A",
				StandardGuests: 2, MaxGuests: 4,
				Prices: domain.RatePlan{Weekday: 290000, Friday: 350000, Weekend: 420000},
			},
			{
				ID: "ocean-suite-b", Name: "Ocean Suite B",
				StandardGuests: 2, MaxGuests: 4,
				Prices: domain.RatePlan{Weekday: 310000, Friday: 370000, Weekend: 450000},
			},
			{
				ID: "family-poolvilla-c", Name: "Family Pool Villa C",
				StandardGuests: 4, MaxGuests: 6,
				Prices: domain.RatePlan{Weekday: 390000, Friday: 450000, Weekend: 520000},
			},
			{
				ID: "garden-poolvilla-d", Name: "Garden Pool Villa D",
				StandardGuests: 2, MaxGuests: 4,
				Prices: domain.RatePlan{Weekday: 260000, Friday: 320000, Weekend: 390000},
			},
			{
				ID: "rooftop-poolvilla-e", Name: "Rooftop Pool Villa E",
				StandardGuests: 2, MaxGuests: 4,
				Prices: domain.RatePlan{Weekday: 340000, Friday: 410000, Weekend: 490000},
			},
			{
				ID: "private-spa-f", Name: "Private Spa F",
				StandardGuests: 2, MaxGuests: 3,
				Prices: domain.RatePlan{Weekday: 240000, Friday: 290000, Weekend: 350000},
			},
		},
		Rules: domain.PricingRules{
			BaseGuestCount:      2,
			ExtraGuestSurcharge: 30000,
			Options: []domain.Option{
				{ID: "bbq", Name: "BBQ set", Price: 30000, Type: domain.OptionPerStay},
				{ID: "warm_water", Name: "Heated pool", Price: 50000, Type: domain.OptionPerStay},
			},
		},
	}
}
