package flow

import "errors"

// ErrValidation marks a submission rejected before any network call: a
// required form field is missing or inconsistent. The user corrects the
// form and resubmits.
var ErrValidation = errors.New("validation error")
