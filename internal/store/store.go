package store

import (
	"iter"
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/couchcryptid/weather-report-service/internal/domain"
)

// Container exclusively owns one loaded dataset: the tabular DataFrame and a
// row-record view derived from it once at construction. It is read-only for
// the remainder of the process, so every report observes the same snapshot
// and no locking is needed.
type Container struct {
	df   dataframe.DataFrame
	rows []domain.Row
}

// New builds a Container around a loaded DataFrame and derives the row view.
// The caller must not mutate the DataFrame afterwards.
func New(df dataframe.DataFrame) *Container {
	return &Container{df: df, rows: rowsFromDataFrame(df)}
}

// DataFrame returns the underlying tabular view. It returns ErrEmptyDataset
// before a non-empty dataset has been loaded.
func (c *Container) DataFrame() (dataframe.DataFrame, error) {
	if c.empty() {
		return dataframe.DataFrame{}, domain.ErrEmptyDataset
	}
	return c.df, nil
}

// Rows returns the ordered row view. The dataset never changes after load, so
// the underlying slice is returned directly rather than a copy that could
// silently diverge from the table.
func (c *Container) Rows() ([]domain.Row, error) {
	if c.empty() {
		return nil, domain.ErrEmptyDataset
	}
	return c.rows, nil
}

// IterRows returns a lazy, finite traversal over the rows in load order.
// Each ranged use of the returned sequence restarts from the first row, so
// repeated reports can reuse it.
func (c *Container) IterRows() (iter.Seq[domain.Row], error) {
	if c.empty() {
		return nil, domain.ErrEmptyDataset
	}
	return func(yield func(domain.Row) bool) {
		for _, r := range c.rows {
			if !yield(r) {
				return
			}
		}
	}, nil
}

// HasColumn reports whether the loaded dataset contains the named column.
func (c *Container) HasColumn(name string) bool {
	if c.empty() {
		return false
	}
	for _, n := range c.df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

// Len returns the number of loaded rows.
func (c *Container) Len() int {
	if c == nil {
		return 0
	}
	return len(c.rows)
}

func (c *Container) empty() bool {
	return c == nil || c.df.Nrow() == 0
}

// rowsFromDataFrame projects the columns the row model knows about out of the
// table. Columns absent from the export leave their fields at the null value;
// reports that need them surface ErrMissingColumn at first use.
func rowsFromDataFrame(df dataframe.DataFrame) []domain.Row {
	n := df.Nrow()
	if n == 0 {
		return nil
	}

	date := columnOrNil(df, "Date")
	loc := columnOrNil(df, "Location")
	rain := columnOrNil(df, "Rainfall")
	minTemp := columnOrNil(df, "MinTemp")
	maxTemp := columnOrNil(df, "MaxTemp")

	rows := make([]domain.Row, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, domain.Row{
			Date:     stringAt(date, i),
			Location: stringAt(loc, i),
			Rainfall: floatAt(rain, i),
			MinTemp:  floatAt(minTemp, i),
			MaxTemp:  floatAt(maxTemp, i),
		})
	}
	return rows
}

func columnOrNil(df dataframe.DataFrame, name string) *series.Series {
	for _, n := range df.Names() {
		if n == name {
			s := df.Col(name)
			return &s
		}
	}
	return nil
}

func stringAt(s *series.Series, i int) string {
	if s == nil {
		return ""
	}
	el := s.Elem(i)
	if el.IsNA() {
		return ""
	}
	return el.String()
}

func floatAt(s *series.Series, i int) *float64 {
	if s == nil {
		return nil
	}
	el := s.Elem(i)
	if el.IsNA() {
		return nil
	}
	v := el.Float()
	if math.IsNaN(v) {
		return nil
	}
	return &v
}
