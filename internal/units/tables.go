// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package units

import "math"

const (
	mile        = 1609.344
	usGallon    = 3.785411784
	imperialGal = 4.54609
	fahrenheitK = 5.0 / 9.0
)

var registry = map[Category]Table{
	Angle: {
		Category: Angle,
		Base:     "degree",
		Units: []Unit{
			{Key: "degree", Name: "Degree", Symbol: "°", Factor: 1},
			{Key: "radian", Name: "Radian", Symbol: "rad", Factor: 180 / math.Pi},
			{Key: "gradian", Name: "Gradian", Symbol: "gon", Factor: 0.9},
			{Key: "milliradian", Name: "Milliradian", Symbol: "mrad", Factor: 0.18 / math.Pi},
			{Key: "arcminute", Name: "Minute of arc", Symbol: "′", Factor: 1.0 / 60},
			{Key: "arcsecond", Name: "Second of arc", Symbol: "″", Factor: 1.0 / 3600},
			{Key: "turn", Name: "Turn", Symbol: "tr", Factor: 360},
		},
	},
	Area: {
		Category: Area,
		Base:     "square-meter",
		Units: []Unit{
			{Key: "square-meter", Name: "Square meter", Symbol: "m²", Factor: 1},
			{Key: "square-kilometer", Name: "Square kilometer", Symbol: "km²", Factor: 1e6},
			{Key: "square-centimeter", Name: "Square centimeter", Symbol: "cm²", Factor: 1e-4},
			{Key: "square-millimeter", Name: "Square millimeter", Symbol: "mm²", Factor: 1e-6},
			{Key: "hectare", Name: "Hectare", Symbol: "ha", Factor: 1e4},
			{Key: "acre", Name: "Acre", Symbol: "ac", Factor: 4046.8564224},
			{Key: "square-mile", Name: "Square mile", Symbol: "mi²", Factor: mile * mile},
			{Key: "square-yard", Name: "Square yard", Symbol: "yd²", Factor: 0.83612736},
			{Key: "square-foot", Name: "Square foot", Symbol: "ft²", Factor: 0.09290304},
			{Key: "square-inch", Name: "Square inch", Symbol: "in²", Factor: 0.00064516},
		},
	},
	Digital: {
		Category: Digital,
		Base:     "bit",
		Units: []Unit{
			{Key: "bit", Name: "Bit", Symbol: "b", Factor: 1},
			{Key: "nibble", Name: "Nibble", Symbol: "nibble", Factor: 4},
			{Key: "byte", Name: "Byte", Symbol: "B", Factor: 8},
			{Key: "kilobit", Name: "Kilobit", Symbol: "kb", Factor: 1e3},
			{Key: "kilobyte", Name: "Kilobyte", Symbol: "kB", Factor: 8e3},
			{Key: "kibibyte", Name: "Kibibyte", Symbol: "KiB", Factor: 8 * 1 << 10},
			{Key: "megabit", Name: "Megabit", Symbol: "Mb", Factor: 1e6},
			{Key: "megabyte", Name: "Megabyte", Symbol: "MB", Factor: 8e6},
			{Key: "mebibyte", Name: "Mebibyte", Symbol: "MiB", Factor: 8 * 1 << 20},
			{Key: "gigabit", Name: "Gigabit", Symbol: "Gb", Factor: 1e9},
			{Key: "gigabyte", Name: "Gigabyte", Symbol: "GB", Factor: 8e9},
			{Key: "gibibyte", Name: "Gibibyte", Symbol: "GiB", Factor: 8 * 1 << 30},
			{Key: "terabit", Name: "Terabit", Symbol: "Tb", Factor: 1e12},
			{Key: "terabyte", Name: "Terabyte", Symbol: "TB", Factor: 8e12},
			{Key: "tebibyte", Name: "Tebibyte", Symbol: "TiB", Factor: 8 * 1 << 40},
			{Key: "petabyte", Name: "Petabyte", Symbol: "PB", Factor: 8e15},
		},
	},
	Energy: {
		Category: Energy,
		Base:     "joule",
		Units: []Unit{
			{Key: "joule", Name: "Joule", Symbol: "J", Factor: 1},
			{Key: "kilojoule", Name: "Kilojoule", Symbol: "kJ", Factor: 1e3},
			{Key: "megajoule", Name: "Megajoule", Symbol: "MJ", Factor: 1e6},
			{Key: "calorie", Name: "Calorie", Symbol: "cal", Factor: 4.184},
			{Key: "kilocalorie", Name: "Kilocalorie", Symbol: "kcal", Factor: 4184},
			{Key: "watt-hour", Name: "Watt-hour", Symbol: "Wh", Factor: 3600},
			{Key: "kilowatt-hour", Name: "Kilowatt-hour", Symbol: "kWh", Factor: 3.6e6},
			{Key: "electronvolt", Name: "Electronvolt", Symbol: "eV", Factor: 1.602176634e-19},
			{Key: "btu", Name: "British thermal unit", Symbol: "BTU", Factor: 1055.05585262},
			{Key: "therm", Name: "US therm", Symbol: "thm", Factor: 1.054804e8},
			{Key: "foot-pound", Name: "Foot-pound", Symbol: "ft⋅lbf", Factor: 1.3558179483314004},
		},
	},
	Frequency: {
		Category: Frequency,
		Base:     "hertz",
		Units: []Unit{
			{Key: "hertz", Name: "Hertz", Symbol: "Hz", Factor: 1},
			{Key: "kilohertz", Name: "Kilohertz", Symbol: "kHz", Factor: 1e3},
			{Key: "megahertz", Name: "Megahertz", Symbol: "MHz", Factor: 1e6},
			{Key: "gigahertz", Name: "Gigahertz", Symbol: "GHz", Factor: 1e9},
			{Key: "terahertz", Name: "Terahertz", Symbol: "THz", Factor: 1e12},
			{Key: "rpm", Name: "Revolutions per minute", Symbol: "rpm", Factor: 1.0 / 60},
		},
	},
	Fuel: {
		Category: Fuel,
		Base:     "kilometer-per-liter",
		Units: []Unit{
			{Key: "kilometer-per-liter", Name: "Kilometers per liter", Symbol: "km/L", Factor: 1},
			{Key: "mile-per-gallon-us", Name: "Miles per US gallon", Symbol: "mpg (US)", Factor: mile / 1000 / usGallon},
			{Key: "mile-per-gallon-uk", Name: "Miles per imperial gallon", Symbol: "mpg (UK)", Factor: mile / 1000 / imperialGal},
			{Key: "mile-per-liter", Name: "Miles per liter", Symbol: "mi/L", Factor: mile / 1000},
			{Key: "liter-per-100km", Name: "Liters per 100 kilometers", Symbol: "L/100km", Factor: 100, Inverse: true},
		},
	},
	Length: {
		Category: Length,
		Base:     "meter",
		Units: []Unit{
			{Key: "meter", Name: "Meter", Symbol: "m", Factor: 1},
			{Key: "kilometer", Name: "Kilometer", Symbol: "km", Factor: 1e3},
			{Key: "centimeter", Name: "Centimeter", Symbol: "cm", Factor: 1e-2},
			{Key: "millimeter", Name: "Millimeter", Symbol: "mm", Factor: 1e-3},
			{Key: "micrometer", Name: "Micrometer", Symbol: "µm", Factor: 1e-6},
			{Key: "nanometer", Name: "Nanometer", Symbol: "nm", Factor: 1e-9},
			{Key: "mile", Name: "Mile", Symbol: "mi", Factor: mile},
			{Key: "yard", Name: "Yard", Symbol: "yd", Factor: 0.9144},
			{Key: "foot", Name: "Foot", Symbol: "ft", Factor: 0.3048},
			{Key: "inch", Name: "Inch", Symbol: "in", Factor: 0.0254},
			{Key: "nautical-mile", Name: "Nautical mile", Symbol: "nmi", Factor: 1852},
		},
	},
	Mass: {
		Category: Mass,
		Base:     "kilogram",
		Units: []Unit{
			{Key: "kilogram", Name: "Kilogram", Symbol: "kg", Factor: 1},
			{Key: "gram", Name: "Gram", Symbol: "g", Factor: 1e-3},
			{Key: "milligram", Name: "Milligram", Symbol: "mg", Factor: 1e-6},
			{Key: "microgram", Name: "Microgram", Symbol: "µg", Factor: 1e-9},
			{Key: "tonne", Name: "Metric ton", Symbol: "t", Factor: 1e3},
			{Key: "pound", Name: "Pound", Symbol: "lb", Factor: 0.45359237},
			{Key: "ounce", Name: "Ounce", Symbol: "oz", Factor: 0.028349523125},
			{Key: "stone", Name: "Stone", Symbol: "st", Factor: 6.35029318},
			{Key: "us-ton", Name: "US ton", Symbol: "ton (US)", Factor: 907.18474},
			{Key: "imperial-ton", Name: "Imperial ton", Symbol: "ton (UK)", Factor: 1016.0469088},
		},
	},
	Pressure: {
		Category: Pressure,
		Base:     "pascal",
		Units: []Unit{
			{Key: "pascal", Name: "Pascal", Symbol: "Pa", Factor: 1},
			{Key: "kilopascal", Name: "Kilopascal", Symbol: "kPa", Factor: 1e3},
			{Key: "megapascal", Name: "Megapascal", Symbol: "MPa", Factor: 1e6},
			{Key: "bar", Name: "Bar", Symbol: "bar", Factor: 1e5},
			{Key: "millibar", Name: "Millibar", Symbol: "mbar", Factor: 100},
			{Key: "psi", Name: "Pound per square inch", Symbol: "psi", Factor: 6894.757293168},
			{Key: "atmosphere", Name: "Standard atmosphere", Symbol: "atm", Factor: 101325},
			{Key: "torr", Name: "Torr", Symbol: "Torr", Factor: 101325.0 / 760},
			{Key: "mmhg", Name: "Millimeter of mercury", Symbol: "mmHg", Factor: 133.322387415},
			{Key: "inhg", Name: "Inch of mercury", Symbol: "inHg", Factor: 3386.389},
		},
	},
	Speed: {
		Category: Speed,
		Base:     "meter-per-second",
		Units: []Unit{
			{Key: "meter-per-second", Name: "Meters per second", Symbol: "m/s", Factor: 1},
			{Key: "kilometer-per-hour", Name: "Kilometers per hour", Symbol: "km/h", Factor: 1 / 3.6},
			{Key: "mile-per-hour", Name: "Miles per hour", Symbol: "mph", Factor: mile / 3600},
			{Key: "foot-per-second", Name: "Feet per second", Symbol: "ft/s", Factor: 0.3048},
			{Key: "knot", Name: "Knot", Symbol: "kn", Factor: 1852.0 / 3600},
		},
	},
	Temperature: {
		Category: Temperature,
		Base:     "kelvin",
		Units: []Unit{
			{Key: "kelvin", Name: "Kelvin", Symbol: "K", Factor: 1},
			{Key: "celsius", Name: "Celsius", Symbol: "°C", Factor: 1, Offset: 273.15},
			{Key: "fahrenheit", Name: "Fahrenheit", Symbol: "°F", Factor: fahrenheitK, Offset: 459.67 * fahrenheitK},
			{Key: "rankine", Name: "Rankine", Symbol: "°R", Factor: fahrenheitK},
		},
	},
	Time: {
		Category: Time,
		Base:     "second",
		Units: []Unit{
			{Key: "nanosecond", Name: "Nanosecond", Symbol: "ns", Factor: 1e-9},
			{Key: "microsecond", Name: "Microsecond", Symbol: "µs", Factor: 1e-6},
			{Key: "millisecond", Name: "Millisecond", Symbol: "ms", Factor: 1e-3},
			{Key: "second", Name: "Second", Symbol: "s", Factor: 1},
			{Key: "minute", Name: "Minute", Symbol: "min", Factor: 60},
			{Key: "hour", Name: "Hour", Symbol: "h", Factor: 3600},
			{Key: "day", Name: "Day", Symbol: "d", Factor: 86400},
			{Key: "week", Name: "Week", Symbol: "wk", Factor: 604800},
			// Gregorian averages: 365.2425 days per year.
			{Key: "month", Name: "Month", Symbol: "mo", Factor: 2629746},
			{Key: "year", Name: "Year", Symbol: "yr", Factor: 31556952},
			{Key: "decade", Name: "Decade", Symbol: "dec", Factor: 315569520},
			{Key: "century", Name: "Century", Symbol: "c", Factor: 3155695200},
		},
	},
	Volume: {
		Category: Volume,
		Base:     "liter",
		Units: []Unit{
			{Key: "liter", Name: "Liter", Symbol: "L", Factor: 1},
			{Key: "milliliter", Name: "Milliliter", Symbol: "mL", Factor: 1e-3},
			{Key: "cubic-meter", Name: "Cubic meter", Symbol: "m³", Factor: 1e3},
			{Key: "cubic-centimeter", Name: "Cubic centimeter", Symbol: "cm³", Factor: 1e-3},
			{Key: "cubic-foot", Name: "Cubic foot", Symbol: "ft³", Factor: 28.316846592},
			{Key: "cubic-inch", Name: "Cubic inch", Symbol: "in³", Factor: 0.016387064},
			{Key: "us-gallon", Name: "US gallon", Symbol: "gal (US)", Factor: usGallon},
			{Key: "us-quart", Name: "US quart", Symbol: "qt (US)", Factor: usGallon / 4},
			{Key: "us-pint", Name: "US pint", Symbol: "pt (US)", Factor: usGallon / 8},
			{Key: "us-cup", Name: "US cup", Symbol: "cup (US)", Factor: usGallon / 16},
			{Key: "us-fluid-ounce", Name: "US fluid ounce", Symbol: "fl oz (US)", Factor: usGallon / 128},
			{Key: "us-tablespoon", Name: "US tablespoon", Symbol: "tbsp (US)", Factor: usGallon / 256},
			{Key: "us-teaspoon", Name: "US teaspoon", Symbol: "tsp (US)", Factor: usGallon / 768},
			{Key: "imperial-gallon", Name: "Imperial gallon", Symbol: "gal (UK)", Factor: imperialGal},
			{Key: "imperial-pint", Name: "Imperial pint", Symbol: "pt (UK)", Factor: imperialGal / 8},
		},
	},
}
