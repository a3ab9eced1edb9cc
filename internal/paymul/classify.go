package paymul

import (
	"fmt"
	"strings"
	"unicode"
)

// Descriptor is a bank account as the surrounding application stores it.
type Descriptor struct {
	Number      string
	CountryCode string
	IsIBAN      bool
	BIC         string
	// OwnerName is the holder name recorded on the account itself and wins
	// over PartnerName when set.
	OwnerName   string
	PartnerName string
	Currency    string
}

// Origin describes the debiting side of the payment being built.
type Origin struct {
	Country         string
	IsOriginAccount bool
}

func (d Descriptor) holder() string {
	if strings.TrimSpace(d.OwnerName) != "" {
		return d.OwnerName
	}
	return d.PartnerName
}

// Classify selects the account shape for d: IBAN when the account is held in
// IBAN form, UK for GB, NorthAmerican for US and CA, SWIFT otherwise.
func Classify(d Descriptor, origin Origin) (Account, error) {
	if d.IsIBAN {
		return NewIBANAccount(d.Number, d.BIC, d.holder(), d.Currency)
	}

	country := strings.ToUpper(strings.TrimSpace(d.CountryCode))

	sortcode, number, err := SplitAccountNumber(d.Number)
	if err != nil {
		return Account{}, fmt.Errorf("%s account: %w", country, err)
	}

	switch country {
	case "GB":
		return NewUKAccount(number, sortcode, d.holder(), d.Currency)
	case "US", "CA":
		return NewNorthAmericanAccount(RoutedAccount{
			Number:          number,
			Sortcode:        sortcode,
			BIC:             d.BIC,
			Country:         country,
			Holder:          d.holder(),
			Currency:        d.Currency,
			OriginCountry:   origin.Country,
			IsOriginAccount: origin.IsOriginAccount,
		})
	default:
		return NewSWIFTAccount(RoutedAccount{
			Number:   number,
			Sortcode: sortcode,
			BIC:      d.BIC,
			Country:  country,
			Holder:   d.holder(),
			Currency: d.Currency,
		})
	}
}

// SplitAccountNumber splits "<sortcode> <number>" on its single space.
// Anything other than exactly two non-empty tokens is malformed.
func SplitAccountNumber(raw string) (sortcode, number string, err error) {
	parts := strings.Split(raw, " ")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" ||
		strings.ContainsFunc(raw, isOtherSpace) {
		return "", "", fmt.Errorf("%w: %q", ErrMalformedAccountNumber, raw)
	}

	return parts[0], parts[1], nil
}

func isOtherSpace(r rune) bool {
	return r != ' ' && unicode.IsSpace(r)
}
