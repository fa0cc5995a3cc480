// Package icons maps achievement icon names onto the glyph identifiers
// the frontend renders. Unknown names fall back to a default glyph
// instead of failing.
package icons

// DefaultIcon is rendered for any unknown icon name.
const DefaultIcon = "award"

var table = map[string]string{
	"Award":         "award",
	"Brain":         "brain",
	"Users":         "users",
	"Lightbulb":     "lightbulb",
	"Zap":           "zap",
	"Cog":           "cog",
	"SearchCode":    "search-code",
	"BarChart3":     "bar-chart-3",
	"Briefcase":     "briefcase",
	"GraduationCap": "graduation-cap",
	"CheckSquare":   "check-square",
}

// Lookup resolves an icon name to its glyph identifier.
func Lookup(name string) string {
	if glyph, ok := table[name]; ok {
		return glyph
	}
	return DefaultIcon
}

// Known reports whether the name maps to a real icon.
func Known(name string) bool {
	_, ok := table[name]
	return ok
}

// Names returns the accepted icon names for the admin form's picker.
func Names() []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	return names
}
