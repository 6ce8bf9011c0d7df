package service

import (
	"sort"

	"hydromon/internal/domain"
)

// ResultAggregator collects row rejections from every stage. It keeps the
// maxErrors rejections with the lowest row numbers, arrival order breaking
// ties, while counting all of them.
type ResultAggregator struct {
	maxErrors  int
	errors     []domain.ImportError
	rejected   int
	duplicates int
}

// NewResultAggregator creates an aggregator; a non-positive cap uses DefaultMaxErrors.
func NewResultAggregator(maxErrors int) *ResultAggregator {
	if maxErrors <= 0 {
		maxErrors = DefaultMaxErrors
	}
	return &ResultAggregator{
		maxErrors: maxErrors,
		errors:    make([]domain.ImportError, 0, min(maxErrors, 16)),
	}
}

// Reject records rejected rows.
func (a *ResultAggregator) Reject(errs ...domain.ImportError) {
	for _, e := range errs {
		a.rejected++
		if e.Kind.IsDuplicate() {
			a.duplicates++
		}
		a.keep(e)
	}
}

func (a *ResultAggregator) keep(e domain.ImportError) {
	n := len(a.errors)
	if n == a.maxErrors && e.RowNumber >= a.errors[n-1].RowNumber {
		return
	}

	// insert after any entry with the same row number
	i := sort.Search(n, func(i int) bool { return a.errors[i].RowNumber > e.RowNumber })
	if n < a.maxErrors {
		a.errors = append(a.errors, domain.ImportError{})
	}
	copy(a.errors[i+1:], a.errors[i:])
	a.errors[i] = e
}

// Rejected returns how many rows were rejected so far.
func (a *ResultAggregator) Rejected() int {
	return a.rejected
}

// Result builds the final summary. errorRows is derived from the totals so the
// summary always satisfies totalRows == successRows + errorRows.
func (a *ResultAggregator) Result(totalRows, successRows int) domain.ImportResult {
	errs := make([]domain.ImportError, len(a.errors))
	copy(errs, a.errors)

	return domain.ImportResult{
		TotalRows:     totalRows,
		SuccessRows:   successRows,
		ErrorRows:     totalRows - successRows,
		DuplicateRows: a.duplicates,
		Errors:        errs,
	}
}
