package paymul

import (
	"regexp"
	"strings"
)

var ibanPattern = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[A-Z0-9]{11,30}$`)

// NormalizeIBAN removes the grouping spaces of the printed form.
func NormalizeIBAN(iban string) string {
	return strings.ToUpper(strings.Join(strings.Fields(iban), ""))
}

// ValidIBAN checks the ISO 13616 shape and the ISO 7064 mod-97-10 check digits.
func ValidIBAN(iban string) bool {
	iban = NormalizeIBAN(iban)
	if !ibanPattern.MatchString(iban) {
		return false
	}

	rearranged := iban[4:] + iban[:4]

	remainder := 0
	for _, r := range rearranged {
		switch {
		case r >= '0' && r <= '9':
			remainder = (remainder*10 + int(r-'0')) % 97
		default:
			v := int(r-'A') + 10
			remainder = (remainder*100 + v) % 97
		}
	}

	return remainder == 1
}
