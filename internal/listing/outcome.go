package listing

import "github.com/nmehta/movebot/internal/model"

// OutcomeKind is the terminal state of one listing request.
type OutcomeKind int

const (
	// OutcomeUnauthorized: the caller failed the authorization check.
	OutcomeUnauthorized OutcomeKind = iota
	// OutcomeNoCredentials: the caller has zero stored credential records.
	OutcomeNoCredentials
	// OutcomeDecryptFailed: a record exists but its secret could not be recovered.
	OutcomeDecryptFailed
	// OutcomeFetchFailed: the exchange returned a failure envelope, the
	// call faulted, or the credential lookup itself failed.
	OutcomeFetchFailed
	// OutcomeEmpty: the exchange succeeded but no live contracts matched.
	OutcomeEmpty
	// OutcomeListed: live matching contracts are ready for display.
	OutcomeListed
)

// String returns the outcome kind as a stable label (also used as a
// metric label value).
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeUnauthorized:
		return "unauthorized"
	case OutcomeNoCredentials:
		return "no_credentials"
	case OutcomeDecryptFailed:
		return "decrypt_failed"
	case OutcomeFetchFailed:
		return "fetch_failed"
	case OutcomeEmpty:
		return "empty"
	case OutcomeListed:
		return "listed"
	default:
		return "unknown"
	}
}

// Outcome is the tagged terminal state handed to the presenter.
type Outcome struct {
	Kind  OutcomeKind
	Asset string // Uppercase asset ticker the request was for

	// ErrMessage carries the user-visible error text for
	// OutcomeFetchFailed, already truncated for display.
	ErrMessage string

	// Contracts carries the filtered listing for OutcomeListed.
	Contracts []model.MoveContract
}

// OK reports whether the flow reached the exchange and got a usable
// answer (a listing or a legitimately empty one).
func (o Outcome) OK() bool {
	return o.Kind == OutcomeListed || o.Kind == OutcomeEmpty
}
