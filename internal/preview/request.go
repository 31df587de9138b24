package preview

import "math"

// Request parameter names read by the providers.
const (
	ParamID     = "id"
	ParamPageID = "page_id"
	ParamStore  = "store"

	// ActionNew is the admin action that renders an empty creation form.
	ActionNew = "new"
)

// Request is the admin request the button is rendered for.
type Request interface {
	// Param returns a request parameter, or "" when absent.
	Param(name string) string

	// ActionName is the admin controller action, e.g. "edit" or "new".
	ActionName() string
}

// Params is a Request backed by a map. Handy for tests and tooling.
type Params struct {
	Values map[string]string
	Action string
}

func (p Params) Param(name string) string { return p.Values[name] }
func (p Params) ActionName() string       { return p.Action }

// IntParam coerces a parameter to an integer the way admin forms do:
// leading whitespace is skipped, an optional sign and the leading digits
// are used, and anything else yields 0. "42abc" is 42, "abc" is 0.
func IntParam(value string) int64 {
	i := 0
	for i < len(value) && isSpace(value[i]) {
		i++
	}

	negative := false
	if i < len(value) && (value[i] == '+' || value[i] == '-') {
		negative = value[i] == '-'
		i++
	}

	var n int64
	for ; i < len(value) && value[i] >= '0' && value[i] <= '9'; i++ {
		d := int64(value[i] - '0')
		if n > (math.MaxInt64-d)/10 {
			// Saturate instead of wrapping around.
			if negative {
				return math.MinInt64
			}
			return math.MaxInt64
		}
		n = n*10 + d
	}

	if negative {
		return -n
	}
	return n
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
