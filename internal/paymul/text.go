package paymul

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	maxLineLength    = 35
	maxAddressLines  = 5
	maxHolderLines   = 2
	maxReference     = 18
	maxInterchangeID = 15
	maxMessageID     = 35
	maxClientID      = 35
	maxAmountLength  = 18
	maxAccountLength = 35
)

var (
	validate = validator.New()

	alnumPattern = regexp.MustCompile(`^[A-Z0-9 ]*$`)
	digitPattern = regexp.MustCompile(`^[0-9]+$`)
)

// Letters NFKD leaves whole but that have a conventional ASCII spelling.
var letterFolds = strings.NewReplacer(
	"ß", "ss", "ẞ", "SS",
	"æ", "ae", "Æ", "AE",
	"œ", "oe", "Œ", "OE",
	"ø", "o", "Ø", "O",
	"đ", "d", "Đ", "D",
	"ł", "l", "Ł", "L",
	"þ", "th", "Þ", "TH",
	"ð", "d", "Ð", "D",
	"ı", "i",
)

// foldText strips diacritics so that "Café" becomes "Cafe" and spells out
// letters such as ß before the character set is restricted.
func foldText(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, letterFolds.Replace(s))
	if err != nil {
		return s
	}
	return folded
}

// Sanitize upper-cases s and reduces it to the UNOA subset accepted by the
// bank: letters, digits and single spaces.
func Sanitize(s string) string {
	s = strings.ToUpper(foldText(s))

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			continue
		}
		b.WriteByte(' ')
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// SanitizeLines sanitizes each line of a multi-line block and drops the
// lines left empty.
func SanitizeLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")

	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if line = Sanitize(line); line != "" {
			lines = append(lines, line)
		}
	}

	return lines
}

// addressLines sanitizes a name and address block. It must fit in five NAD
// components of 35 characters; longer blocks are rejected, never cut.
func addressLines(field, s string) ([]string, error) {
	lines := SanitizeLines(s)
	if len(lines) > maxAddressLines {
		return nil, &FieldError{
			Field:  field,
			Value:  s,
			Reason: fmt.Sprintf("must have at most %d lines", maxAddressLines),
			Err:    ErrFieldOverflow,
		}
	}
	for _, line := range lines {
		if len(line) > maxLineLength {
			return nil, overflow(field, line, maxLineLength)
		}
	}

	return lines, nil
}

// textField sanitizes value and rejects it when it does not fit in max
// characters.
func textField(field, value string, max int) (string, error) {
	clean := Sanitize(value)
	if len(clean) > max {
		return "", overflow(field, clean, max)
	}

	return clean, nil
}

func checkAlnum(field, value string, max int) error {
	if len(value) > max {
		return overflow(field, value, max)
	}
	if !alnumPattern.MatchString(value) {
		return invalid(field, value, "must contain only letters, digits and spaces")
	}

	return nil
}

func isDigits(s string, min, max int) bool {
	if !digitPattern.MatchString(s) {
		return false
	}
	return len(s) >= min && (max == 0 || len(s) <= max)
}

func validCurrency(code string) bool {
	return validate.Var(code, "required,iso4217") == nil
}

func validBIC(bic string) bool {
	return validate.Var(bic, "required,bic") == nil
}

func validCountry(code string) bool {
	return validate.Var(code, "required,iso3166_1_alpha2") == nil
}
