package domain

import "strings"

// Platform is the closed set of console families the store trades in.
type Platform int

const (
	PlatformUnknown Platform = iota
	PlatformPlaystation
	PlatformXbox
	PlatformNintendo

	platformCount
)

// Theme holds the presentation accents associated with a platform.
type Theme struct {
	Accent     string `json:"accent"`
	Background string `json:"background"`
}

type platformInfo struct {
	key            string
	label          string
	theme          Theme
	controllerCost int
}

// platformTable is indexed by Platform. Every value must have an entry.
var platformTable = [platformCount]platformInfo{
	PlatformUnknown: {
		key:   "unknown",
		label: "Unknown",
		theme: Theme{Accent: "#6B7280", Background: "#F97316"},
	},
	PlatformPlaystation: {
		key:            "playstation",
		label:          "Playstation",
		theme:          Theme{Accent: "#1861C0", Background: "#2563EB"},
		controllerCost: 40,
	},
	PlatformXbox: {
		key:            "xbox",
		label:          "Xbox",
		theme:          Theme{Accent: "#3BAE3B", Background: "#16A34A"},
		controllerCost: 30,
	},
	PlatformNintendo: {
		key:   "nintendo",
		label: "Nintendo",
		theme: Theme{Accent: "#D61D1E", Background: "#DC2626"},
	},
}

// Platforms returns the selectable platforms in display order.
func Platforms() []Platform {
	return []Platform{PlatformPlaystation, PlatformXbox, PlatformNintendo}
}

// ParsePlatform maps a product type tag to a Platform.
// Unrecognized tags map to PlatformUnknown.
func ParsePlatform(s string) Platform {
	key := strings.ToLower(strings.TrimSpace(s))
	for p := PlatformUnknown + 1; p < platformCount; p++ {
		if platformTable[p].key == key {
			return p
		}
	}
	return PlatformUnknown
}

func (p Platform) info() platformInfo {
	if p < 0 || p >= platformCount {
		return platformTable[PlatformUnknown]
	}
	return platformTable[p]
}

// String returns the lowercase product type tag (e.g. "xbox").
func (p Platform) String() string { return p.info().key }

// Label returns the display name (e.g. "Xbox").
func (p Platform) Label() string { return p.info().label }

// Theme returns the accent colors for the platform.
func (p Platform) Theme() Theme { return p.info().theme }

// ControllerCost is the price of one extra controller for a console of this platform.
func (p Platform) ControllerCost() Amount { return Units(p.info().controllerCost) }

// MarshalText implements encoding.TextMarshaler.
func (p Platform) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Platform) UnmarshalText(text []byte) error {
	*p = ParsePlatform(string(text))
	return nil
}
