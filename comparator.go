package convref

import "fmt"

// MismatchRecord is one coordinate where the dump disagrees with the model.
type MismatchRecord struct {
	Row      int
	Col      int
	Expected byte
	Actual   byte
}

func (m MismatchRecord) String() string {
	return fmt.Sprintf("at row %d and col %d, expected %x, found %x", m.Row, m.Col, m.Expected, m.Actual)
}

// Reporter receives mismatches as they are recorded.
type Reporter interface {
	Mismatch(rec MismatchRecord)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(rec MismatchRecord)

// Mismatch calls f(rec).
func (f ReporterFunc) Mismatch(rec MismatchRecord) { f(rec) }

// ComparisonResult is the verdict of one run.
type ComparisonResult struct {
	// Mismatches holds at most the error cap records, in scan order.
	Mismatches []MismatchRecord
	// Total counts every mismatch seen, including the one that hit the cap.
	Total int
	// Visited counts sampled coordinates; Compared those actually compared.
	Visited  int
	Compared int
	Aborted  bool
	Passed   bool
}

// Err returns nil for a passing run, ErrErrorCapExceeded for an aborted
// run and a mismatch error otherwise.
func (r ComparisonResult) Err() error {
	switch {
	case r.Aborted:
		return ErrErrorCapExceeded
	case r.Total > 0:
		return NewMismatchError(r.Total)
	}
	return nil
}

// Comparator accumulates mismatches for a single run.
type Comparator struct {
	maxErrors  int
	reporter   Reporter
	mismatches []MismatchRecord
	total      int
	compared   int
	aborted    bool
}

// NewComparator returns a comparator that aborts on the mismatch after
// maxErrors recorded ones. A nil reporter is allowed.
func NewComparator(maxErrors int, reporter Reporter) *Comparator {
	if maxErrors <= 0 {
		maxErrors = MaxErrors
	}
	return &Comparator{maxErrors: maxErrors, reporter: reporter}
}

// Record compares the masked expected value with the stored byte. It
// returns false when the scan must stop; the run's error is then
// reported by the Result.
func (cmp *Comparator) Record(r, c int, expected int64, actual byte) bool {
	if cmp.aborted {
		return false
	}
	cmp.compared++
	want := MaskByte(expected)
	if want == actual {
		return true
	}
	cmp.total++
	if len(cmp.mismatches) >= cmp.maxErrors {
		cmp.aborted = true
		return false
	}
	rec := MismatchRecord{Row: r, Col: c, Expected: want, Actual: actual}
	cmp.mismatches = append(cmp.mismatches, rec)
	if cmp.reporter != nil {
		cmp.reporter.Mismatch(rec)
	}
	return true
}

// Result finalizes the verdict. visited is the number of sampled
// coordinates, compared or not.
func (cmp *Comparator) Result(visited int) ComparisonResult {
	return ComparisonResult{
		Mismatches: append([]MismatchRecord(nil), cmp.mismatches...),
		Total:      cmp.total,
		Visited:    visited,
		Compared:   cmp.compared,
		Aborted:    cmp.aborted,
		Passed:     cmp.total == 0,
	}
}
