package twilio

import "strings"

// ToE164 normalizes a raw phone string to E.164. Numbers already carrying a
// leading + are passed through after stripping separators. Bare 10-digit
// numbers get the default country code; 11-digit national numbers with a
// leading zero have the zero stripped first. Anything else does not
// normalize.
func ToE164(raw, defaultCountry string) (string, bool) {
	var digits strings.Builder
	for _, r := range raw {
		if r == '+' || (r >= '0' && r <= '9') {
			digits.WriteRune(r)
		}
	}

	cleaned := digits.String()
	if strings.HasPrefix(cleaned, "+") {
		return cleaned, true
	}

	only := strings.ReplaceAll(cleaned, "+", "")
	if defaultCountry == "" {
		defaultCountry = "+1"
	}

	if len(only) == 10 {
		return defaultCountry + only, true
	}
	if len(only) == 11 && strings.HasPrefix(only, "0") {
		return defaultCountry + only[1:], true
	}
	return "", false
}
