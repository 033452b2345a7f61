package domain

import "errors"

var (
	// ErrEmptyDataset indicates no usable rows: either the container was
	// accessed before a non-empty dataset was loaded, or a report's own
	// filtering left nothing to aggregate.
	ErrEmptyDataset = errors.New("empty dataset")

	// ErrUnknownReportType indicates a configuration named a report
	// identifier with no registered action.
	ErrUnknownReportType = errors.New("unknown report type")

	// ErrMissingColumn indicates a required column is absent from the loaded
	// data. Surfaced at first use, not at load time.
	ErrMissingColumn = errors.New("missing column")

	// ErrRender indicates the plotting collaborator failed.
	ErrRender = errors.New("render failed")
)

// ErrorKind maps an error chain onto a stable label for log lines and metric
// label values.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, ErrEmptyDataset):
		return "empty_dataset"
	case errors.Is(err, ErrUnknownReportType):
		return "unknown_report_type"
	case errors.Is(err, ErrMissingColumn):
		return "missing_column"
	case errors.Is(err, ErrRender):
		return "render"
	default:
		return "internal"
	}
}
