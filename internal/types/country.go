package types

import "strings"

// CountrySummary is the per-country projection of the visited cities
type CountrySummary struct {
	Country string `json:"country" example:"Portugal" doc:"Country name"`
	Emoji   string `json:"emoji" example:"🇵🇹" doc:"Flag of the first city seen in this country"`
}

// regionalIndicatorA is the code point of REGIONAL INDICATOR SYMBOL LETTER A.
const regionalIndicatorA = 0x1F1E6

// FlagEmoji converts an ISO 3166-1 alpha-2 country code into its flag emoji.
// Anything that is not two ASCII letters yields "".
func FlagEmoji(countryCode string) string {
	code := strings.ToUpper(strings.TrimSpace(countryCode))
	if len(code) != 2 {
		return ""
	}

	var b strings.Builder
	for i := 0; i < len(code); i++ {
		c := code[i]
		if c < 'A' || c > 'Z' {
			return ""
		}
		b.WriteRune(rune(regionalIndicatorA + int(c-'A')))
	}
	return b.String()
}
