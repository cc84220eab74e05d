package savings

import "slices"

// Store is the ordered, append-only sequence of records.
//
// It performs no validation and no derivation: it is a mechanical container
// answering positional and back-scan queries. The zero value is an empty store.
type Store struct {
	records []Record
}

// Append adds records at the end of the store.
func (s *Store) Append(records ...Record) {
	s.records = append(s.records, records...)
}

// Len returns the number of records, blank ones included.
func (s *Store) Len() int { return len(s.records) }

// At returns the i-th record.
func (s *Store) At(i int) Record { return s.records[i] }

// Records returns a copy of all records in order.
func (s *Store) Records() []Record { return slices.Clone(s.records) }

// LastNonEmpty scans records from the end and returns the first non-blank
// cell of column c. ok is false when no record has a value in that column.
func (s *Store) LastNonEmpty(c Column) (cell string, ok bool) {
	return s.LastMatching(c, func(cell string) bool { return !isBlank(cell) })
}

// LastMatching scans records from the end and returns the first cell of
// column c accepted by match.
func (s *Store) LastMatching(c Column, match func(cell string) bool) (cell string, ok bool) {
	for i := len(s.records) - 1; i >= 0; i-- {
		if cell := s.records[i][c]; match(cell) {
			return cell, true
		}
	}
	return "", false
}

// RemoveBlank deletes every record whose cells are all blank and returns how
// many were removed. Non-blank records keep their relative order.
func (s *Store) RemoveBlank() int {
	n := len(s.records)
	s.records = slices.DeleteFunc(s.records, Record.IsBlank)
	return n - len(s.records)
}
