package savings

import "errors"

// Kind classifies why a record was refused.
type Kind int

const (
	InvalidDate Kind = iota + 1
	NonPositiveTotalDeposit
	NegativeSalary
	NegativeFixedDeposit
	FixedExceedsTotal
	TotalExceedsPriorPlusSalary
	NegativeExpenseUnconfirmed
)

func (k Kind) String() string {
	switch k {
	case InvalidDate:
		return "invalid date"
	case NonPositiveTotalDeposit:
		return "non-positive total deposit"
	case NegativeSalary:
		return "negative salary"
	case NegativeFixedDeposit:
		return "negative fixed deposit"
	case FixedExceedsTotal:
		return "fixed deposit exceeds total deposit"
	case TotalExceedsPriorPlusSalary:
		return "total deposit exceeds previous total plus salary"
	case NegativeExpenseUnconfirmed:
		return "negative expense not confirmed"
	default:
		return "unknown"
	}
}

// ValidationError reports a record refused by admission.
type ValidationError struct {
	Kind    Kind
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Message
}

// Is matches any ValidationError of the same Kind, so that errors.Is works
// against the sentinels below.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Kind == e.Kind
}

func invalid(k Kind, msg string) error { return &ValidationError{Kind: k, Message: msg} }

var (
	ErrInvalidDate                 = &ValidationError{Kind: InvalidDate}
	ErrNonPositiveTotalDeposit     = &ValidationError{Kind: NonPositiveTotalDeposit}
	ErrNegativeSalary              = &ValidationError{Kind: NegativeSalary}
	ErrNegativeFixedDeposit        = &ValidationError{Kind: NegativeFixedDeposit}
	ErrFixedExceedsTotal           = &ValidationError{Kind: FixedExceedsTotal}
	ErrTotalExceedsPriorPlusSalary = &ValidationError{Kind: TotalExceedsPriorPlusSalary}
	ErrNegativeExpenseUnconfirmed  = &ValidationError{Kind: NegativeExpenseUnconfirmed}
)

// ErrPersistenceWrite is returned when the ledger destination cannot be
// opened or written. The in-memory ledger is left untouched.
var ErrPersistenceWrite = errors.New("could not write ledger")
