package valueobject

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// Unit is a value object for the closed set of measurement units the bakery
// uses. Units are labels only: they are copied verbatim between recipe, stock
// and order records and never converted between each other.
type Unit string

const (
	UnitGram     Unit = "g"
	UnitKilogram Unit = "kg"
	UnitOunce    Unit = "oz"
	UnitPound    Unit = "lbs"
	UnitMillilit Unit = "ml"
	UnitLitre    Unit = "L"
	UnitCup      Unit = "cups"
	UnitPiece    Unit = "units"
	UnitDozen    Unit = "dozen"
	UnitTray     Unit = "trays"
)

// AllUnits lists every valid unit, in display order.
var AllUnits = []Unit{
	UnitGram, UnitKilogram, UnitOunce, UnitPound,
	UnitMillilit, UnitLitre, UnitCup,
	UnitPiece, UnitDozen, UnitTray,
}

// ParseUnit validates a unit string against the closed enumeration.
// Matching is case-sensitive except for "L"/"l".
func ParseUnit(s string) (Unit, error) {
	candidate := strings.TrimSpace(s)
	for _, u := range AllUnits {
		if candidate == string(u) {
			return u, nil
		}
	}
	if strings.EqualFold(candidate, string(UnitLitre)) {
		return UnitLitre, nil
	}
	return "", fmt.Errorf("invalid unit %q", s)
}

// IsValid returns true if the unit belongs to the enumeration
func (u Unit) IsValid() bool {
	for _, v := range AllUnits {
		if u == v {
			return true
		}
	}
	return false
}

// String returns the unit label
func (u Unit) String() string {
	return string(u)
}

// Value implements driver.Valuer for database storage
func (u Unit) Value() (driver.Value, error) {
	return string(u), nil
}

// Scan implements sql.Scanner for database retrieval
func (u *Unit) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*u = Unit(v)
	case []byte:
		*u = Unit(v)
	case nil:
		*u = ""
	default:
		return fmt.Errorf("cannot scan %T into Unit", value)
	}
	return nil
}

// MarshalJSON implements json.Marshaler
func (u Unit) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(u))
}

// UnmarshalJSON implements json.Unmarshaler and validates the unit
func (u *Unit) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseUnit(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
