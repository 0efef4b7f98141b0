package launch

import (
	"errors"
	"fmt"
)

// ErrMissingTarget reports a request with neither name nor AppID.
var ErrMissingTarget = errors.New("provide name or app_id")

// ErrNoLaunchMethod reports a resolved record with no usable launch
// mechanism: no AppID and no existing executable path.
var ErrNoLaunchMethod = errors.New("no launch method available for this app; try using app_id from the app list")

// NoMatchError reports that name resolution produced zero candidates.
type NoMatchError struct {
	Name string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no apps found matching %q", e.Name)
}

// AmbiguousError reports that name resolution produced more than one
// candidate. Candidates carries up to MaxCandidates summaries for caller
// disambiguation; no launch side effect has occurred.
type AmbiguousError struct {
	Name       string
	Candidates []Candidate
}

func (e *AmbiguousError) Error() string {
	return "multiple matches found; use a more specific name or app_id"
}

// MechanismError reports that the selected launcher itself failed.
type MechanismError struct {
	Method string
	Err    error
}

func (e *MechanismError) Error() string {
	return fmt.Sprintf("failed to launch via %s: %v", e.Method, e.Err)
}

func (e *MechanismError) Unwrap() error { return e.Err }
