package forms

import (
	"strings"

	"github.com/ARPaule28/fynd-app/internal/client/catalog"
)

// SkillsForm is the state of the skills step: three checkbox categories with
// free-text "Others" entries, plus one personal-skills free-text field.
type SkillsForm struct {
	groups   []*MultiSelect
	personal string
}

func NewSkillsForm() *SkillsForm {
	f := &SkillsForm{}
	for _, g := range catalog.SkillGroups {
		f.groups = append(f.groups, NewMultiSelect(g))
	}
	return f
}

// Groups returns the categories in rendering order.
func (f *SkillsForm) Groups() []*MultiSelect { return f.groups }

// Group returns the category with the given name, or nil.
func (f *SkillsForm) Group(name string) *MultiSelect {
	for _, g := range f.groups {
		if g.Name() == name {
			return g
		}
	}
	return nil
}

// Toggle flips one checkbox. Unknown categories are ignored: the rendering
// surface only offers catalog names.
func (f *SkillsForm) Toggle(category, option string) {
	if g := f.Group(category); g != nil {
		g.Toggle(option)
	}
}

func (f *SkillsForm) SetPersonal(text string) { f.personal = text }

func (f *SkillsForm) Personal() string { return f.personal }

// Serialize flattens the whole form into the single comma-joined skills
// string the backend stores: each category's serialized selection, then the
// personal text, with empty parts dropped.
func (f *SkillsForm) Serialize() string {
	parts := make([]string, 0, len(f.groups)+1)
	for _, g := range f.groups {
		if s := g.Serialize(); s != "" {
			parts = append(parts, s)
		}
	}
	if p := strings.TrimSpace(f.personal); p != "" {
		parts = append(parts, p)
	}
	return strings.Join(parts, ", ")
}
