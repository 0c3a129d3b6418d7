package models

// Categories is the fixed set a wish can belong to. Order matters: the
// /categories endpoint returns it as-is.
var Categories = []string{
	"Medical",
	"Education",
	"Family",
	"Emergency",
	"Home & Living",
	"Food & Essentials",
	"Travel",
	"Technology",
	"Community",
	"Other",
}

// ValidCategory reports whether name is one of the fixed categories.
func ValidCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}
