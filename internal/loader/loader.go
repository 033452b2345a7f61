// Package loader reads delimited weather observation files into a DataFrame.
// It is deliberately thin: parsing mechanics live in gota, and everything
// downstream consumes the store.Container built from the result.
package loader

import (
	"fmt"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// naSentinels are the values the source export uses for missing measurements.
var naSentinels = []string{"", "NA", "NaN"}

// Load reads the file at path into a DataFrame. Column types are detected
// from the data; NA sentinels become missing values rather than zeros.
func Load(path string, delimiter rune) (dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()

	df := dataframe.ReadCSV(f,
		dataframe.WithDelimiter(delimiter),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(naSentinels),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("parse data file %s: %w", path, df.Err)
	}
	return df, nil
}
