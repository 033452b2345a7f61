package domain

// Row is one weather observation as loaded from the source file. Values the
// source marks as NA are nil (numeric fields) or empty (Location). Rows are
// immutable once loaded.
type Row struct {
	Date     string
	Location string
	Rainfall *float64
	MinTemp  *float64
	MaxTemp  *float64
}

// HasLocation reports whether the observation carries a usable location.
func (r Row) HasLocation() bool {
	return r.Location != ""
}

// RainfallValue returns the rainfall measurement, if present.
func (r Row) RainfallValue() (float64, bool) {
	if r.Rainfall == nil {
		return 0, false
	}
	return *r.Rainfall, true
}

// TempRange returns the daily temperature span, MaxTemp minus MinTemp. It
// reports false when either bound is missing; missing values are never
// coerced to zero.
func (r Row) TempRange() (float64, bool) {
	if r.MinTemp == nil || r.MaxTemp == nil {
		return 0, false
	}
	return *r.MaxTemp - *r.MinTemp, true
}
