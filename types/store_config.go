package types

import (
	"time"
)

const (
	// StoreConfigID is the key of the only StoreConfig record.
	StoreConfigID      = "main"
	DefaultDeliveryFee = 5.0

	clockLayout = "15:04"
	dateLayout  = "2006-01-02"
)

type DayHours struct {
	Open  bool   `json:"open"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// window returns the opening window in minutes since midnight.
func (d DayHours) window() (start, end int, ok bool) {
	s, err := time.Parse(clockLayout, d.Start)
	if err != nil {
		return 0, 0, false
	}
	e, err := time.Parse(clockLayout, d.End)
	if err != nil {
		return 0, 0, false
	}
	return s.Hour()*60 + s.Minute(), e.Hour()*60 + e.Minute(), true
}

// sameDay reports whether minute m falls in the part of the window that
// belongs to this day.
func (d DayHours) sameDay(m int) bool {
	start, end, ok := d.window()
	if !ok || !d.Open {
		return false
	}
	if end <= start {
		return m >= start
	}
	return m >= start && m < end
}

// spill reports whether minute m of the next day is still inside a window
// that runs past midnight.
func (d DayHours) spill(m int) bool {
	start, end, ok := d.window()
	if !ok || !d.Open {
		return false
	}
	return end <= start && m < end
}

type OperatingHours struct {
	Monday    DayHours `json:"monday"`
	Tuesday   DayHours `json:"tuesday"`
	Wednesday DayHours `json:"wednesday"`
	Thursday  DayHours `json:"thursday"`
	Friday    DayHours `json:"friday"`
	Saturday  DayHours `json:"saturday"`
	Sunday    DayHours `json:"sunday"`
}

func (h OperatingHours) Day(d time.Weekday) DayHours {
	switch d {
	case time.Monday:
		return h.Monday
	case time.Tuesday:
		return h.Tuesday
	case time.Wednesday:
		return h.Wednesday
	case time.Thursday:
		return h.Thursday
	case time.Friday:
		return h.Friday
	case time.Saturday:
		return h.Saturday
	default:
		return h.Sunday
	}
}

func (h OperatingHours) days() []DayHours {
	return []DayHours{h.Monday, h.Tuesday, h.Wednesday, h.Thursday, h.Friday, h.Saturday, h.Sunday}
}

// SpecialDate overrides the weekday hours for one calendar date (holidays,
// events). Date is YYYY-MM-DD.
type SpecialDate struct {
	Date        string `json:"date"`
	Open        bool   `json:"open"`
	Start       string `json:"start,omitempty"`
	End         string `json:"end,omitempty"`
	Description string `json:"description,omitempty"`
}

type StoreConfig struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	LogoURL        string         `json:"logoUrl"`
	DeliveryFee    float64        `json:"deliveryFee"`
	IsOpen         bool           `json:"isOpen"`
	OperatingHours OperatingHours `json:"operatingHours"`
	SpecialDates   []SpecialDate  `json:"specialDates"`
}

// DefaultStoreConfig is what a brand new store starts with.
func DefaultStoreConfig() *StoreConfig {
	weekday := DayHours{Open: true, Start: "18:00", End: "23:00"}
	return &StoreConfig{
		ID:          StoreConfigID,
		Name:        "Storefront",
		DeliveryFee: DefaultDeliveryFee,
		IsOpen:      true,
		OperatingHours: OperatingHours{
			Monday:    weekday,
			Tuesday:   weekday,
			Wednesday: weekday,
			Thursday:  weekday,
			Friday:    weekday,
			Saturday:  weekday,
			Sunday:    DayHours{Open: true, Start: "18:00", End: "22:00"},
		},
		SpecialDates: []SpecialDate{},
	}
}

func (c *StoreConfig) Validate() error {
	if c.ID != StoreConfigID {
		return invalid("store config", "id must be %q, got %q", StoreConfigID, c.ID)
	}
	if c.DeliveryFee < 0 {
		return invalid("store config", "negative delivery fee")
	}
	for _, d := range c.OperatingHours.days() {
		if !d.Open {
			continue
		}
		if _, _, ok := d.window(); !ok {
			return invalid("store config", "bad operating hours %s-%s", d.Start, d.End)
		}
	}
	for _, sd := range c.SpecialDates {
		if _, err := time.Parse(dateLayout, sd.Date); err != nil {
			return invalid("store config", "bad special date %q", sd.Date)
		}
		if !sd.Open {
			continue
		}
		hours := DayHours{Open: true, Start: sd.Start, End: sd.End}
		if _, _, ok := hours.window(); !ok {
			return invalid("store config", "special date %s open with bad hours %q-%q", sd.Date, sd.Start, sd.End)
		}
	}
	return nil
}

func (c *StoreConfig) Normalize() {
	if c.SpecialDates == nil {
		c.SpecialDates = []SpecialDate{}
	}
}

// OpenAt reports whether the store takes orders at t, evaluated in t's
// location. IsOpen=false closes the store whatever the hours say; a special
// date replaces that day's weekday hours.
func (c *StoreConfig) OpenAt(t time.Time) bool {
	if !c.IsOpen {
		return false
	}
	minute := t.Hour()*60 + t.Minute()
	if c.hoursFor(t).sameDay(minute) {
		return true
	}
	return c.hoursFor(t.AddDate(0, 0, -1)).spill(minute)
}

func (c *StoreConfig) hoursFor(t time.Time) DayHours {
	date := t.Format(dateLayout)
	for _, sd := range c.SpecialDates {
		if sd.Date == date {
			return DayHours{Open: sd.Open, Start: sd.Start, End: sd.End}
		}
	}
	return c.OperatingHours.Day(t.Weekday())
}
