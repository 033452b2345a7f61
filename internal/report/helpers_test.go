package report_test

import (
	"context"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/weather-report-service/internal/render"
	"github.com/couchcryptid/weather-report-service/internal/store"
)

// stubRenderer records chart specs instead of drawing, and can be primed to
// fail like a broken plotting backend.
type stubRenderer struct {
	err   error
	calls int
	specs []render.ChartSpec
}

func (s *stubRenderer) RenderBarChart(_ context.Context, spec render.ChartSpec) error {
	s.calls++
	if s.err != nil {
		return s.err
	}
	s.specs = append(s.specs, spec)
	return nil
}

func (s *stubRenderer) lastSpec(t *testing.T) render.ChartSpec {
	t.Helper()
	require.NotEmpty(t, s.specs)
	return s.specs[len(s.specs)-1]
}

func newContainer(t *testing.T, records [][]string) *store.Container {
	t.Helper()

	df := dataframe.LoadRecords(records,
		dataframe.NaNValues([]string{"", "NA", "NaN"}),
	)
	require.NoError(t, df.Err)
	return store.New(df)
}

func emptyContainer() *store.Container {
	return store.New(dataframe.DataFrame{})
}
