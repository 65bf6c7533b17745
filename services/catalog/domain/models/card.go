package models

import (
	"fmt"
	"strings"
	"time"
)

// Card condition grades. The catalog also accepts free-form grades for
// oddball items (e.g. graded slabs), so Condition stays a plain string.
const (
	ConditionMint      = "Mint"
	ConditionNearMint  = "Near Mint"
	ConditionExcellent = "Excellent"
	ConditionGood      = "Good"
	ConditionFair      = "Fair"
	ConditionPoor      = "Poor"
)

// Conditions lists the standard grades in best-to-worst order, as offered
// by the browse filters.
func Conditions() []string {
	return []string{
		ConditionMint,
		ConditionNearMint,
		ConditionExcellent,
		ConditionGood,
		ConditionFair,
		ConditionPoor,
	}
}

// Card is a single catalog entry. The collection is loaded once at process
// start and is read-only for the lifetime of the process.
//
// Price and AverageValue are nil when unknown; a nil price means "inquire".
// Available=false excludes the card from purchase actions but it stays
// browsable.
type Card struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Player       string   `json:"player"`
	Images       []string `json:"images"`
	Year         int      `json:"year"`
	Brand        string   `json:"brand"`
	Set          string   `json:"set,omitempty"`
	Condition    string   `json:"condition"`
	Description  string   `json:"description"`
	CardNumber   string   `json:"cardNumber,omitempty"`
	Price        *float64 `json:"price,omitempty"`
	AverageValue *float64 `json:"averageValue,omitempty"`
	Available    bool     `json:"available"`
	DateAdded    Date     `json:"dateAdded"`
	Tags         []string `json:"tags,omitempty"`
}

// Validate enforces the structural invariants every catalog entry must hold.
// Uniqueness across the collection is checked by the loader, not here.
func (c *Card) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return fmt.Errorf("card id must not be empty")
	}
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("card %q: title must not be empty", c.ID)
	}
	if c.Year < 1000 || c.Year > 9999 {
		return fmt.Errorf("card %q: year must be a 4-digit integer, got %d", c.ID, c.Year)
	}
	if c.Price != nil && *c.Price < 0 {
		return fmt.Errorf("card %q: price must not be negative", c.ID)
	}
	if c.AverageValue != nil && *c.AverageValue < 0 {
		return fmt.Errorf("card %q: averageValue must not be negative", c.ID)
	}
	if c.DateAdded.IsZero() {
		return fmt.Errorf("card %q: dateAdded must be set", c.ID)
	}
	return nil
}

const dateLayout = "2006-01-02"

// Date is a calendar date (no time-of-day component) serialized as
// YYYY-MM-DD. dateAdded comparisons are calendar-date comparisons.
type Date struct {
	time.Time
}

// NewDate returns the Date for the given year, month and day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

// MarshalJSON writes the date as a quoted YYYY-MM-DD string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// UnmarshalJSON accepts a quoted YYYY-MM-DD string.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
