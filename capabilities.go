package paramselect

import (
	"slices"

	"github.com/samber/lo"
)

// Capabilities lists the options offered for each named parameter,
// e.g. the focus modes or preview sizes a device reports.
type Capabilities map[string][]string

// Options returns the offered options for name, or nil if name is unknown.
func (c Capabilities) Options(name string) []string {
	return c[name]
}

// Supports reports whether value is offered for name.
func (c Capabilities) Supports(name, value string) bool {
	return lo.Contains(c[name], value)
}

// Names returns the parameter names in sorted order.
func (c Capabilities) Names() []string {
	names := lo.Keys(c)
	slices.Sort(names)
	return names
}
