// Package pricing computes the itemised price of a stay.
//
// Every night is priced on its own by the weekday of that night's date,
// so per-date overrides can be added without changing the totals logic.
package pricing

import (
	"time"

	"github.com/stpnv0/VillaBooker/internal/domain"
)

const day = 24 * time.Hour

type Engine struct {
	catalog *domain.Catalog
}

func New(catalog *domain.Catalog) *Engine {
	return &Engine{catalog: catalog}
}

// Quote is deterministic and has no side effects.
// Unknown option ids are ignored; a repeated option id is charged once.
func (e *Engine) Quote(in domain.QuoteInput) (*domain.Quote, error) {
	room, ok := e.catalog.Room(in.RoomID)
	if !ok {
		return nil, domain.ErrInvalidUnit
	}

	checkIn := domain.DateOnly(in.CheckIn)
	checkOut := domain.DateOnly(in.CheckOut)

	nights := int(checkOut.Sub(checkIn) / day)
	if nights < 1 {
		return nil, domain.ErrInvalidRange
	}

	q := &domain.Quote{
		Nights:    nights,
		Breakdown: make([]domain.NightPrice, 0, nights),
	}

	for i := 0; i < nights; i++ {
		date := checkIn.AddDate(0, 0, i)
		price, weekend := nightlyRate(room.Prices, date.Weekday())

		q.Breakdown = append(q.Breakdown, domain.NightPrice{
			Date:      date.Format(domain.DateLayout),
			Price:     price,
			IsWeekend: weekend,
		})
		q.BaseTotal += price
	}

	rules := e.catalog.Rules
	extraGuests := int64(max(0, in.Guests-rules.BaseGuestCount))
	q.GuestSurcharge = extraGuests * rules.ExtraGuestSurcharge * int64(nights)

	seen := make(map[string]struct{}, len(in.Options))
	for _, id := range in.Options {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		opt, ok := e.catalog.Option(id)
		if !ok {
			continue
		}
		if opt.Type == domain.OptionPerNight {
			q.OptionTotal += opt.Price * int64(nights)
		} else {
			q.OptionTotal += opt.Price
		}
	}

	q.TotalAmount = q.BaseTotal + q.GuestSurcharge + q.OptionTotal

	return q, nil
}

// Saturday is the weekend tier; Friday has its own tier and is flagged as weekend too.
func nightlyRate(p domain.RatePlan, wd time.Weekday) (int64, bool) {
	switch wd {
	case time.Saturday:
		return p.Weekend, true
	case time.Friday:
		return p.Friday, true
	default:
		return p.Weekday, false
	}
}
