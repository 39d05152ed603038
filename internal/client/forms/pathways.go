package forms

import (
	"strings"

	"github.com/ARPaule28/fynd-app/internal/client/catalog"
)

// PathwayForm is the state of the career-pathways step: a boolean selection
// over the fixed category → option tree.
type PathwayForm struct {
	groups []*MultiSelect
}

func NewPathwayForm() *PathwayForm {
	f := &PathwayForm{}
	for _, g := range catalog.CareerPathways {
		f.groups = append(f.groups, NewMultiSelect(g))
	}
	return f
}

func (f *PathwayForm) Groups() []*MultiSelect { return f.groups }

func (f *PathwayForm) Group(name string) *MultiSelect {
	for _, g := range f.groups {
		if g.Name() == name {
			return g
		}
	}
	return nil
}

// Toggle flips one option inside a category.
func (f *PathwayForm) Toggle(category, option string) {
	if g := f.Group(category); g != nil {
		g.Toggle(option)
	}
}

// Serialize renders "Category: opt1, opt2 | Category2: opt3". Categories with
// no selected options are omitted entirely, so the result never contains a
// dangling "Category: " with an empty tail. No selections at all yields "".
func (f *PathwayForm) Serialize() string {
	parts := make([]string, 0, len(f.groups))
	for _, g := range f.groups {
		if s := g.Serialize(); s != "" {
			parts = append(parts, g.Name()+": "+s)
		}
	}
	return strings.Join(parts, " | ")
}
