// Package domain models daily weather observations from Australian Bureau of
// Meteorology station exports (the "Rain in Australia" CSV layout).
//
// # Data Source
//
// Each row is one day at one station. The columns this service reads:
//
//	Date      observation date, YYYY-MM-DD
//	Location  station name, e.g. "Albury"
//	MinTemp   daily minimum temperature, °C
//	MaxTemp   daily maximum temperature, °C
//	Rainfall  precipitation for the day, mm
//
// Any other columns in the export (humidity, wind, pressure, RainToday, ...)
// are carried in the tabular view but ignored by the row model.
//
// # Missing Values
//
// The export uses the literal string "NA" for unmeasured values; empty cells
// occur as well. Both become nil pointers (numeric fields) or an empty string
// (Location) on the Row, never zero: a day with no rainfall reading is not a
// dry day, and aggregations must skip it rather than count it.
package domain
