// Package jurisdiction holds the static lookup tables mapping jurisdiction
// codes to display names and flag glyphs.
package jurisdiction

import "strings"

var names = map[string]string{
	"us": "United States",
	"eu": "European Union",
	"uk": "United Kingdom",
	"in": "India",
	"sg": "Singapore",
	"au": "Australia",
	"ca": "Canada",
	"ch": "Switzerland",
	"hk": "Hong Kong",
	"jp": "Japan",
	"de": "Germany",
	"fr": "France",
	"cn": "China",
	"br": "Brazil",
	"za": "South Africa",
	"ae": "United Arab Emirates",
}

var flags = map[string]string{
	"us": "🇺🇸",
	"eu": "🇪🇺",
	"uk": "🇬🇧",
	"in": "🇮🇳",
	"sg": "🇸🇬",
	"au": "🇦🇺",
	"ca": "🇨🇦",
	"ch": "🇨🇭",
	"hk": "🇭🇰",
	"jp": "🇯🇵",
	"de": "🇩🇪",
	"fr": "🇫🇷",
	"cn": "🇨🇳",
	"br": "🇧🇷",
	"za": "🇿🇦",
	"ae": "🇦🇪",
}

// Name returns the display name for a code, or the code itself when unknown.
func Name(id string) string {
	if n, ok := names[strings.ToLower(id)]; ok {
		return n
	}
	return id
}

// Flag returns the flag glyph for a code, or a globe when unknown.
func Flag(id string) string {
	if f, ok := flags[strings.ToLower(id)]; ok {
		return f
	}
	return "🌐"
}
