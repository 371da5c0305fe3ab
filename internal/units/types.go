package units

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Category selects the unit set and conversion rule.
// The zero value is not a valid category.
type Category int

const (
	Length Category = iota + 1
	Mass
	Temperature
)

var categoryNames = map[Category]string{
	Length:      "Length",
	Mass:        "Mass",
	Temperature: "Temperature",
}

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{Length, Mass, Temperature}
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := categoryNames[c]
	return ok
}

// MarshalJSON encodes the category by name.
func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// Unit is a measurement unit. Each unit belongs to exactly one Category.
// The zero value is not a valid unit.
type Unit int

const (
	Meter Unit = iota + 1
	Kilometer
	Centimeter
	Millimeter
	Foot
	Inch

	Kilogram
	Gram
	Pound
	Ounce

	Celsius
	Fahrenheit
	Kelvin
)

var unitNames = map[Unit]string{
	Meter:      "Meter",
	Kilometer:  "Kilometer",
	Centimeter: "Centimeter",
	Millimeter: "Millimeter",
	Foot:       "Foot",
	Inch:       "Inch",
	Kilogram:   "Kilogram",
	Gram:       "Gram",
	Pound:      "Pound",
	Ounce:      "Ounce",
	Celsius:    "Celsius",
	Fahrenheit: "Fahrenheit",
	Kelvin:     "Kelvin",
}

// unitsByCategory holds each category's units in selector order.
var unitsByCategory = map[Category][]Unit{
	Length:      {Meter, Kilometer, Centimeter, Millimeter, Foot, Inch},
	Mass:        {Kilogram, Gram, Pound, Ounce},
	Temperature: {Celsius, Fahrenheit, Kelvin},
}

func (u Unit) String() string {
	if name, ok := unitNames[u]; ok {
		return name
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// MarshalJSON encodes the unit by name.
func (u Unit) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

// Category returns the category u belongs to, or 0 for an invalid unit.
func (u Unit) Category() Category {
	for c, list := range unitsByCategory {
		for _, candidate := range list {
			if candidate == u {
				return c
			}
		}
	}
	return 0
}

// Units returns the units of c in display order.
// Returns nil for an invalid category.
func Units(c Category) []Unit {
	list := unitsByCategory[c]
	if list == nil {
		return nil
	}
	out := make([]Unit, len(list))
	copy(out, list)
	return out
}

// BaseUnit returns the reference unit of c: Meter, Kilogram or Celsius.
func BaseUnit(c Category) (Unit, error) {
	switch c {
	case Length:
		return Meter, nil
	case Mass:
		return Kilogram, nil
	case Temperature:
		return Celsius, nil
	default:
		return 0, NewUnknownCategoryError(c.String())
	}
}

// In reports whether u is part of c's unit set.
func (u Unit) In(c Category) bool {
	for _, candidate := range unitsByCategory[c] {
		if candidate == u {
			return true
		}
	}
	return false
}

// normalizeLabel folds case and composes to NFC so that "meter", "METER"
// and decomposed input all compare equal.
// A Caser is stateful, so one is built per call.
func normalizeLabel(s string) string {
	return cases.Fold().String(norm.NFC.String(strings.TrimSpace(s)))
}

// ParseCategory resolves a category label, ignoring case.
func ParseCategory(label string) (Category, error) {
	key := normalizeLabel(label)
	for _, c := range Categories() {
		if normalizeLabel(categoryNames[c]) == key {
			return c, nil
		}
	}
	return 0, NewUnknownCategoryError(label)
}

// ParseUnit resolves a unit label within c, ignoring case.
// A label that names a unit of a different category is still UNKNOWN_UNIT.
func ParseUnit(c Category, label string) (Unit, error) {
	if !c.Valid() {
		return 0, NewUnknownCategoryError(c.String())
	}
	key := normalizeLabel(label)
	for _, u := range unitsByCategory[c] {
		if normalizeLabel(unitNames[u]) == key {
			return u, nil
		}
	}
	return 0, NewUnknownUnitError(c, label)
}
