package forms

import "strings"

// CombineAddress folds the five address inputs into the single string the
// backend stores, in fixed order: street, line 2, city, state, zip. All five
// positions are kept even when blank, matching what the server already holds
// for existing profiles.
func CombineAddress(street, line2, city, state, zip string) string {
	return strings.Join([]string{street, line2, city, state, zip}, ", ")
}
