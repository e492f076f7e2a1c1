package model

// Settings holds the operator-editable app branding shown in the header
// and on the billing document.
type Settings struct {
	PrimaryTitle   string `json:"primary_title"`
	SecondaryTitle string `json:"secondary_title"`
}

// DefaultSettings returns the titles used until the operator changes them.
func DefaultSettings() Settings {
	return Settings{
		PrimaryTitle:   "PRECISION",
		SecondaryTitle: "Gram Tracker Pro",
	}
}

// Themes.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// ValidTheme reports whether theme is a known theme name.
func ValidTheme(theme string) bool {
	return theme == ThemeLight || theme == ThemeDark
}
