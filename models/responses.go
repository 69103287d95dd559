package models

// RowsReport is one page of a list response. End reports that no rows
// exist beyond the ones returned.
type RowsReport[T any] struct {
	Rows []T  `json:"rows"`
	End  bool `json:"end"`
}

// NewRowsReport builds the page for limit out of rows fetched with a
// lookahead of one: rows must hold at most limit+1 elements read in a stable
// order. When the lookahead row is present it is dropped and End is false.
func NewRowsReport[T any](rows []T, limit int64) RowsReport[T] {
	if rows == nil {
		rows = []T{}
	}

	if limit < 0 {
		limit = 0
	}

	if int64(len(rows)) <= limit {
		return RowsReport[T]{Rows: rows, End: true}
	}

	return RowsReport[T]{Rows: rows[:limit], End: false}
}
