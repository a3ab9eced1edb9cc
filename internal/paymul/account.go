package paymul

import (
	"fmt"
	"strings"
)

// Kind tags the shape of an Account.
type Kind int

const (
	KindIBAN Kind = iota + 1
	KindUK
	KindNorthAmerican
	KindSWIFT
)

func (k Kind) String() string {
	switch k {
	case KindIBAN:
		return "IBAN"
	case KindUK:
		return "UK"
	case KindNorthAmerican:
		return "NorthAmerican"
	case KindSWIFT:
		return "SWIFT"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Account is a bank account normalized into one of the four shapes the bank
// accepts. The zero value is not a valid account.
type Account struct {
	kind          Kind
	holder        []string
	currency      string
	iban          string
	bic           string
	number        string
	sortcode      string
	country       string
	originCountry string
	isOrigin      bool
}

// RoutedAccount holds the fields shared by North American and SWIFT accounts.
type RoutedAccount struct {
	Number          string
	Sortcode        string
	BIC             string
	Country         string
	Holder          string
	Currency        string
	OriginCountry   string
	IsOriginAccount bool
}

func (a Account) Kind() Kind { return a.kind }

func (a Account) IsZero() bool { return a.kind == 0 }

// Holder returns the sanitized holder name, one line per row.
func (a Account) Holder() string { return strings.Join(a.holder, "\n") }

func (a Account) Currency() string { return a.currency }

func (a Account) IBAN() string { return a.iban }

func (a Account) BIC() string { return a.bic }

func (a Account) Number() string { return a.number }

// Sortcode returns the sort code or routing number as it was supplied,
// separators included.
func (a Account) Sortcode() string { return a.sortcode }

func (a Account) Country() string { return a.country }

func (a Account) OriginCountry() string { return a.originCountry }

func (a Account) IsOriginAccount() bool { return a.isOrigin }

// NewIBANAccount builds an IBAN account. The country is taken from the IBAN.
func NewIBANAccount(iban, bic, holder, currency string) (Account, error) {
	iban = NormalizeIBAN(iban)
	if !ValidIBAN(iban) {
		return Account{}, malformed("iban", iban, "not a valid ISO 13616 IBAN")
	}

	a := Account{
		kind:    KindIBAN,
		iban:    iban,
		country: iban[:2],
	}
	if err := a.setCommon(bic, holder, currency, true); err != nil {
		return Account{}, err
	}

	return a, nil
}

// NewUKAccount builds a UK domestic account from an 8 digit account number
// and a 6 digit sort code (dashes allowed).
func NewUKAccount(number, sortcode, holder, currency string) (Account, error) {
	number = strings.ReplaceAll(number, " ", "")
	if !isDigits(number, 8, 8) {
		return Account{}, malformed("number", number, "must be 8 digits long")
	}
	if !isDigits(stripSeparators(sortcode), 6, 6) {
		return Account{}, malformed("sortcode", sortcode, "must be 6 digits long")
	}

	a := Account{
		kind:     KindUK,
		number:   number,
		sortcode: sortcode,
		country:  "GB",
	}
	if err := a.setCommon("", holder, currency, false); err != nil {
		return Account{}, err
	}

	return a, nil
}

// NewNorthAmericanAccount builds a US or Canadian account. The routing number
// has 9 digits, except for a Canadian debiting account where it has 6.
func NewNorthAmericanAccount(p RoutedAccount) (Account, error) {
	digits := 9
	if strings.ToUpper(p.OriginCountry) == "CA" && p.IsOriginAccount {
		digits = 6
	}
	if !isDigits(stripSeparators(p.Sortcode), digits, digits) {
		return Account{}, malformed("sortcode", p.Sortcode, fmt.Sprintf("routing number must be %d digits long", digits))
	}

	a, err := newRoutedAccount(KindNorthAmerican, p)
	if err != nil {
		return Account{}, err
	}
	a.originCountry = strings.ToUpper(p.OriginCountry)
	a.isOrigin = p.IsOriginAccount

	return a, nil
}

// NewSWIFTAccount builds an account routed by BIC only.
func NewSWIFTAccount(p RoutedAccount) (Account, error) {
	return newRoutedAccount(KindSWIFT, p)
}

func newRoutedAccount(kind Kind, p RoutedAccount) (Account, error) {
	number := strings.ReplaceAll(p.Number, " ", "")
	if len(number) > maxAccountLength {
		return Account{}, overflow("number", number, maxAccountLength)
	}
	if !isDigits(number, 1, 0) {
		return Account{}, malformed("number", number, "must contain digits only")
	}

	country := strings.ToUpper(p.Country)
	if !validCountry(country) {
		return Account{}, invalid("country", p.Country, "must be an ISO 3166 alpha-2 code")
	}

	a := Account{
		kind:     kind,
		number:   number,
		sortcode: p.Sortcode,
		country:  country,
	}
	if err := a.setCommon(p.BIC, p.Holder, p.Currency, true); err != nil {
		return Account{}, err
	}

	return a, nil
}

func (a *Account) setCommon(bic, holder, currency string, needBIC bool) error {
	if needBIC {
		bic = strings.ToUpper(strings.TrimSpace(bic))
		if !validBIC(bic) {
			return invalid("bic", bic, "must be an 8 or 11 character ISO 9362 code")
		}
		a.bic = bic
	}

	lines, err := holderLines(holder)
	if err != nil {
		return err
	}
	a.holder = lines

	if currency != "" {
		currency = strings.ToUpper(currency)
		if !validCurrency(currency) {
			return invalid("currency", currency, "must be an ISO 4217 code")
		}
		a.currency = currency
	}

	return nil
}

func holderLines(holder string) ([]string, error) {
	lines := SanitizeLines(holder)
	if len(lines) == 0 {
		return nil, invalid("holder", holder, "must not be empty")
	}
	if len(lines) > maxHolderLines {
		return nil, &FieldError{
			Field:  "holder",
			Value:  holder,
			Reason: fmt.Sprintf("must have at most %d lines", maxHolderLines),
			Err:    ErrFieldOverflow,
		}
	}
	for _, line := range lines {
		if len(line) > maxLineLength {
			return nil, overflow("holder", line, maxLineLength)
		}
	}

	return lines, nil
}

func stripSeparators(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "-", ""), " ", "")
}

func malformed(field, value, reason string) error {
	return &FieldError{
		Field:  field,
		Value:  value,
		Reason: reason,
		Err:    ErrMalformedAccountNumber,
	}
}
