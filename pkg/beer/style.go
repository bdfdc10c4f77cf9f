package beer

import (
	"fmt"
	"strings"
)

// Style is the enumerated category of a beer.
type Style string

// Known beer styles.
const (
	StyleLager   Style = "LAGER"
	StylePilsner Style = "PILSNER"
	StyleStout   Style = "STOUT"
	StyleGose    Style = "GOSE"
	StylePorter  Style = "PORTER"
	StyleAle     Style = "ALE"
	StyleWheat   Style = "WHEAT"
	StyleIPA     Style = "IPA"
	StylePaleAle Style = "PALE_ALE"
	StyleSaison  Style = "SAISON"
)

// Styles lists every known style in declaration order.
func Styles() []Style {
	return []Style{
		StyleLager,
		StylePilsner,
		StyleStout,
		StyleGose,
		StylePorter,
		StyleAle,
		StyleWheat,
		StyleIPA,
		StylePaleAle,
		StyleSaison,
	}
}

// ParseStyle converts user input into a Style. Matching is case-insensitive
// and accepts "pale-ale" as well as "PALE_ALE".
func ParseStyle(value string) (Style, error) {
	normalized := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(value), "-", "_"))

	for _, style := range Styles() {
		if string(style) == normalized {
			return style, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownStyle, value)
}

// IsKnown reports whether s is one of the styles this client knows about.
// Styles sent by the server are never rejected, so a decoded Beer may carry
// an unknown style.
func (s Style) IsKnown() bool {
	for _, style := range Styles() {
		if s == style {
			return true
		}
	}

	return false
}

func (s Style) String() string {
	return string(s)
}
