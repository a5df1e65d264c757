package plugin

import (
	"errors"
)

// Instantiation and recall failures. Returned errors wrap one of these.
var (
	ErrMissingFeature = errors.New("missing required host feature")
	ErrMissingOption  = errors.New("missing required option")
	ErrMissingEngine  = errors.New("engine construction failed")
	ErrIncompatibleIO = errors.New("incompatible channel configuration")
	ErrMissingBypass  = errors.New("engine has no bypass parameter")
	ErrNoParameters   = errors.New("engine has too few parameters")
)

// Category names the failure class of an adapter error: "feature",
// "configuration", "construction", "shape" or "" for anything else.
func Category(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingFeature):
		return "feature"
	case errors.Is(err, ErrMissingOption):
		return "configuration"
	case errors.Is(err, ErrMissingEngine):
		return "construction"
	case errors.Is(err, ErrIncompatibleIO), errors.Is(err, ErrMissingBypass), errors.Is(err, ErrNoParameters):
		return "shape"
	}
	return ""
}
