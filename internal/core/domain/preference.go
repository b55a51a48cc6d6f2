package domain

// DisplayPreference is the visitor's stored currency choice: either the
// AUTO sentinel (derive from detected country) or an explicit currency code.
// It is persisted across sessions as a single string.
type DisplayPreference string

// DisplayAuto derives the display currency from the detected (or fallback)
// country instead of an explicit code.
const DisplayAuto DisplayPreference = "AUTO"

// ParseDisplayPreference normalizes a persisted preference string. Empty or
// unreadable values collapse to AUTO; anything else is kept verbatim as an
// uppercased code.
func ParseDisplayPreference(s string) DisplayPreference {
	code := NormalizeCurrency(s)
	if code == "" || code == string(DisplayAuto) {
		return DisplayAuto
	}
	return DisplayPreference(code)
}

// IsAuto reports whether the preference asks for country-derived currency.
func (p DisplayPreference) IsAuto() bool {
	return p == DisplayAuto || p == ""
}

// Explicit returns the explicit currency code, if the preference is one.
func (p DisplayPreference) Explicit() (string, bool) {
	if p.IsAuto() {
		return "", false
	}
	return NormalizeCurrency(string(p)), true
}
