package date

// Range represents a range of dates. A zero boundary leaves that side open.
type Range struct{ From, To Date }

// NewRange returns the range between from and to, boundaries included.
func NewRange(from, to Date) Range { return Range{From: from, To: to} }

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool {
	if !r.From.IsZero() && date.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && date.After(r.To) {
		return false
	}
	return true
}
