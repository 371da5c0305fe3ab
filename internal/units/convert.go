package units

// Factors relative to the base unit of each table.
// The base unit's factor is exactly 1.
var (
	lengthFactors = map[Unit]float64{
		Meter:      1,
		Kilometer:  0.001,
		Centimeter: 100,
		Millimeter: 1000,
		Foot:       3.28084,
		Inch:       39.3701,
	}

	massFactors = map[Unit]float64{
		Kilogram: 1,
		Gram:     1000,
		Pound:    2.20462,
		Ounce:    35.274,
	}
)

// Conversion is the outcome of one convert action.
type Conversion struct {
	Category Category `json:"category"`
	Value    float64  `json:"value"`
	From     Unit     `json:"from"`
	Result   float64  `json:"result"`
	To       Unit     `json:"to"`
}

// String renders the conversion as an equation line, e.g. "1.0 Meter = 3.2808 Foot".
func (c Conversion) String() string {
	return FormatEquation(c.Category, c.Value, c.From, c.Result, c.To)
}

// Convert dispatches to the conversion rule of category.
func Convert(category Category, value float64, from, to Unit) (float64, error) {
	switch category {
	case Length:
		return ConvertLength(value, from, to)
	case Mass:
		return ConvertMass(value, from, to)
	case Temperature:
		return ConvertTemperature(value, from, to)
	default:
		return 0, NewUnknownCategoryError(category.String())
	}
}

// ConvertLength converts value between two Length units via meters.
func ConvertLength(value float64, from, to Unit) (float64, error) {
	return convertByFactor(Length, lengthFactors, value, from, to)
}

// ConvertMass converts value between two Mass units via kilograms.
func ConvertMass(value float64, from, to Unit) (float64, error) {
	return convertByFactor(Mass, massFactors, value, from, to)
}

// convertByFactor normalizes value to the base unit, then scales it to the target.
func convertByFactor(c Category, factors map[Unit]float64, value float64, from, to Unit) (float64, error) {
	fromFactor, ok := factors[from]
	if !ok {
		return 0, NewUnknownUnitError(c, from.String())
	}
	toFactor, ok := factors[to]
	if !ok {
		return 0, NewUnknownUnitError(c, to.String())
	}

	valueInBase := value / fromFactor
	return valueInBase * toFactor, nil
}

// ConvertTemperature converts value between Celsius, Fahrenheit and Kelvin.
// Same-unit conversions return value unchanged.
func ConvertTemperature(value float64, from, to Unit) (float64, error) {
	if !from.In(Temperature) {
		return 0, NewUnknownUnitError(Temperature, from.String())
	}
	if !to.In(Temperature) {
		return 0, NewUnknownUnitError(Temperature, to.String())
	}
	if from == to {
		return value, nil
	}

	var celsius float64
	switch from {
	case Celsius:
		celsius = value
	case Fahrenheit:
		celsius = (value - 32) * 5 / 9
	case Kelvin:
		celsius = value - 273.15
	}

	switch to {
	case Fahrenheit:
		return (celsius * 9 / 5) + 32, nil
	case Kelvin:
		return celsius + 273.15, nil
	default:
		return celsius, nil
	}
}

// New converts value and returns the full Conversion.
func New(category Category, value float64, from, to Unit) (Conversion, error) {
	result, err := Convert(category, value, from, to)
	if err != nil {
		return Conversion{}, err
	}
	return Conversion{
		Category: category,
		Value:    value,
		From:     from,
		Result:   result,
		To:       to,
	}, nil
}
