package paymul

import (
	"strings"

	"github.com/shopspring/decimal"
)

// TransactionParams is one payment line as supplied by the caller.
type TransactionParams struct {
	Amount            decimal.Decimal
	Currency          string
	Beneficiary       *Account
	PaymentType       string
	NameAddress       string
	Channel           string
	CustomerReference string
	PaymentReference  string
}

// Transaction is a single credit transfer to one beneficiary.
type Transaction struct {
	amount            decimal.Decimal
	currency          string
	account           Account
	means             Means
	charges           Charges
	nameAddress       []string
	channel           string
	customerReference string
	paymentReference  string
}

// NewTransaction validates p and resolves its means and charges codes.
func NewTransaction(p TransactionParams) (Transaction, error) {
	if p.Beneficiary == nil || p.Beneficiary.IsZero() {
		return Transaction{}, ErrMissingBeneficiaryAccount
	}

	means, err := MeansFor(p.PaymentType)
	if err != nil {
		return Transaction{}, err
	}

	nameAddress, err := addressLines("beneficiary_name_address", p.NameAddress)
	if err != nil {
		return Transaction{}, err
	}
	if len(nameAddress) == 0 {
		return Transaction{}, ErrMissingBeneficiaryAddress
	}

	if err = checkAmount("amount", p.Amount); err != nil {
		return Transaction{}, err
	}

	currency := strings.ToUpper(strings.TrimSpace(p.Currency))
	if !validCurrency(currency) {
		return Transaction{}, invalid("currency", p.Currency, "must be an ISO 4217 code")
	}

	channel := strings.ToUpper(p.Channel)
	if err = checkAlnum("channel", channel, 3); err != nil {
		return Transaction{}, err
	}

	customerReference, err := textField("customer_reference", p.CustomerReference, maxReference)
	if err != nil {
		return Transaction{}, err
	}

	paymentReference, err := textField("payment_reference", p.PaymentReference, maxReference)
	if err != nil {
		return Transaction{}, err
	}

	return Transaction{
		amount:            p.Amount,
		currency:          currency,
		account:           *p.Beneficiary,
		means:             means,
		charges:           ChargesFor(*p.Beneficiary),
		nameAddress:       nameAddress,
		channel:           channel,
		customerReference: customerReference,
		paymentReference:  paymentReference,
	}, nil
}

func (t Transaction) Amount() decimal.Decimal { return t.amount }

func (t Transaction) Currency() string { return t.currency }

func (t Transaction) Account() Account { return t.account }

func (t Transaction) Means() Means { return t.means }

func (t Transaction) Charges() Charges { return t.charges }

func (t Transaction) NameAddress() string { return strings.Join(t.nameAddress, "\n") }

func (t Transaction) Channel() string { return t.channel }

func (t Transaction) CustomerReference() string { return t.customerReference }

func (t Transaction) PaymentReference() string { return t.paymentReference }

// checkAmount accepts strictly positive amounts with at most two decimals.
// Amounts are never rounded here.
func checkAmount(field string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return invalid(field, amount.String(), "must be greater than zero")
	}
	if !amount.Equal(amount.Truncate(2)) {
		return invalid(field, amount.String(), "must not have more than two decimal places")
	}
	if s := formatAmount(amount); len(s) > maxAmountLength {
		return overflow(field, s, maxAmountLength)
	}

	return nil
}

func formatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
