package domain

type OptionType string

const (
	OptionPerStay  OptionType = "PER_STAY"
	OptionPerNight OptionType = "PER_NIGHT"
)

type RatePlan struct {
	Weekday int64 `json:"weekday"`
	Friday  int64 `json:"friday"`
	Weekend int64 `json:"weekend"`
}

type Room struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	StandardGuests int      `json:"standard_guests"`
	MaxGuests      int      `json:"max_guests"`
	Prices         RatePlan `json:"prices"`
}

type Option struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Price int64      `json:"price"`
	Type  OptionType `json:"type"`
}

type PricingRules struct {
	BaseGuestCount      int      `json:"base_guest_count"`
	ExtraGuestSurcharge int64    `json:"extra_guest_surcharge"`
	Options             []Option `json:"options"`
}

type Catalog struct {
	Rooms []Room
	Rules PricingRules
}

func (c *Catalog) Room(id string) (Room, bool) {
	for _, r := range c.Rooms {
		if r.ID == id {
			return r, true
		}
	}
	return Room{}, false
}

func (c *Catalog) Option(id string) (Option, bool) {
	for _, o := range c.Rules.Options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}
