package date

import (
	"fmt"
	"strings"
	"time"
)

// Period is a calendar period used to select records.
type Period int

const (
	Monthly Period = iota
	Quarterly
	Yearly
)

func (p Period) String() string {
	switch p {
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	case Yearly:
		return "yearly"
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

// ParsePeriod accepts "monthly", "quarterly", "yearly" and their short forms.
func ParsePeriod(p string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(p)) {
	case "monthly", "month":
		return Monthly, nil
	case "quarterly", "quarter":
		return Quarterly, nil
	case "yearly", "year":
		return Yearly, nil
	default:
		return Monthly, fmt.Errorf("unknown period %q", p)
	}
}

// Range returns the period containing d, boundaries included.
func (p Period) Range(d Date) Range {
	var from Date
	var months int
	switch p {
	case Monthly:
		from, months = New(d.y, d.m, 1), 1
	case Quarterly:
		from, months = New(d.y, d.m-(d.m-time.January)%3, 1), 3
	case Yearly:
		from, months = New(d.y, time.January, 1), 12
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
	return Range{From: from, To: New(from.y, from.m+time.Month(months), 0)}
}
