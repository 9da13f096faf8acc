package minecraft

import "strings"

// UnknownFlag is used when no usable country code is available.
const UnknownFlag = "🌍"

const regionalIndicatorA = 0x1F1E6

// CountryFlag maps an ISO 3166 alpha-2 code to its flag emoji, built from
// two regional indicator symbols. Anything that is not exactly two ASCII
// letters maps to UnknownFlag.
func CountryFlag(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 2 {
		return UnknownFlag
	}

	var b strings.Builder
	for i := 0; i < 2; i++ {
		c := code[i]
		if c < 'A' || c > 'Z' {
			return UnknownFlag
		}
		b.WriteRune(rune(regionalIndicatorA + int(c-'A')))
	}
	return b.String()
}
