package preview

import "github.com/dukerupert/previewbtn/internal/domain"

// Reason explains why a button was or was not rendered.
type Reason string

const (
	ReasonShown        Reason = "shown"
	ReasonNotFound     Reason = "not_found"
	ReasonLookupFailed Reason = "lookup_failed"
	ReasonNewAction    Reason = "new_action"
	ReasonExcluded     Reason = "excluded"
	ReasonNotVisible   Reason = "not_visible"
	ReasonScopeFailed  Reason = "scope_failed"
	ReasonNoPath       Reason = "no_path"
	ReasonURLFailed    Reason = "url_failed"
)

// Decision is the result of one provider evaluation. Button is only
// populated when Reason is ReasonShown.
type Decision struct {
	Button domain.ButtonDescriptor
	Reason Reason
	ID     int64
	Err    error
}

// Shown reports whether the admin UI should render the button.
func (d Decision) Shown() bool {
	return d.Reason == ReasonShown
}

// Failed reports whether the decision hides a backend failure rather
// than a normal "no button" condition.
func (d Decision) Failed() bool {
	switch d.Reason {
	case ReasonLookupFailed, ReasonScopeFailed, ReasonURLFailed:
		return true
	}
	return false
}

func hide(reason Reason, id int64, err error) Decision {
	return Decision{Reason: reason, ID: id, Err: err}
}
