// Package forms holds the in-memory selection state behind the onboarding
// form steps and the deterministic serializers applied on submission.
package forms

import (
	"strings"

	"github.com/ARPaule28/fynd-app/internal/client/catalog"
)

// MultiSelect is one category of checkbox options plus an optional free-text
// "other" entry. Options keep the catalog order, so serialization is
// deterministic for a given selection state.
type MultiSelect struct {
	name    string
	options []string
	checked map[string]bool
	other   string
}

// NewMultiSelect builds an empty selection over the group's options.
func NewMultiSelect(g catalog.Group) *MultiSelect {
	return &MultiSelect{
		name:    g.Name,
		options: g.Options,
		checked: make(map[string]bool, len(g.Options)),
	}
}

func (m *MultiSelect) Name() string { return m.name }

// Options returns the renderable option names in catalog order.
func (m *MultiSelect) Options() []string { return m.options }

// Toggle flips the boolean at option. Pure state change, no I/O; toggling
// twice restores the previous value.
func (m *MultiSelect) Toggle(option string) {
	m.checked[option] = !m.checked[option]
}

func (m *MultiSelect) IsChecked(option string) bool {
	return m.checked[option]
}

// SetOther replaces the free-text entry for this category.
func (m *MultiSelect) SetOther(text string) { m.other = text }

func (m *MultiSelect) Other() string { return m.other }

// Selected returns the checked option names in catalog order, with a
// non-empty other text appended as one more item.
func (m *MultiSelect) Selected() []string {
	out := make([]string, 0, len(m.options))
	for _, opt := range m.options {
		if m.checked[opt] {
			out = append(out, opt)
		}
	}
	if other := strings.TrimSpace(m.other); other != "" {
		out = append(out, other)
	}
	return out
}

// Serialize joins the selected options with ", ". An empty selection
// serializes to "".
func (m *MultiSelect) Serialize() string {
	return strings.Join(m.Selected(), ", ")
}
