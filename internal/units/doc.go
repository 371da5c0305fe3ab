// Package units converts measurements between units of the same category.
//
// Three categories are supported, each with a closed set of units:
//
//   - Length: Meter, Kilometer, Centimeter, Millimeter, Foot, Inch
//   - Mass: Kilogram, Gram, Pound, Ounce
//   - Temperature: Celsius, Fahrenheit, Kelvin
//
// Length and Mass use factor tables relative to a base unit (Meter, Kilogram).
// A value is first normalized to the base unit and then scaled to the target,
// so converting a unit to itself returns the input up to float rounding.
//
// Temperature uses formulas through Celsius. Converting a temperature unit to
// itself returns the input bit-for-bit.
//
// Every function here is pure. Units outside a category's set fail with an
// UNKNOWN_UNIT error, never a silent default.
package units
