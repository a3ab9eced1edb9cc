package paymul

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var (
	testCreatedAt = time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)
	testExecDate  = time.Date(2026, 10, 21, 0, 0, 0, 0, time.UTC)
)

const (
	testDebitAddress       = "ACME LTD\n1 High Street\nLondon EC1A 1BB\nUnited Kingdom"
	testBeneficiaryAddress = "Müller GmbH\nHauptstr. 1\n10115 Berlin\nGermany"
)

func debitAccount(t *testing.T) Account {
	t.Helper()

	account, err := Classify(Descriptor{
		Number:      "20-30-40 00112233",
		CountryCode: "GB",
		PartnerName: "ACME LTD",
	}, Origin{Country: "GB", IsOriginAccount: true})
	require.NoError(t, err)

	return account
}

func swiftAccount(t *testing.T) Account {
	t.Helper()

	account, err := Classify(Descriptor{
		Number:      "370400 440532013000",
		CountryCode: "DE",
		BIC:         "DEUTDEFF",
		PartnerName: "Müller GmbH",
	}, Origin{Country: "GB"})
	require.NoError(t, err)

	return account
}

func ibanAccount(t *testing.T) Account {
	t.Helper()

	account, err := Classify(Descriptor{
		Number:      "DE89 3704 0044 0532 0130 00",
		IsIBAN:      true,
		BIC:         "DEUTDEFF",
		PartnerName: "Berlin Supplies",
	}, Origin{Country: "GB"})
	require.NoError(t, err)

	return account
}

func transaction(t *testing.T, amount string, beneficiary Account, paymentType string) Transaction {
	t.Helper()

	tx, err := NewTransaction(TransactionParams{
		Amount:            decimal.RequireFromString(amount),
		Currency:          "GBP",
		Beneficiary:       &beneficiary,
		PaymentType:       paymentType,
		NameAddress:       testBeneficiaryAddress,
		CustomerReference: "INV/2026/001",
		PaymentReference:  "INV/2026/001",
	})
	require.NoError(t, err)

	return tx
}

func batch(t *testing.T, transactions ...Transaction) *Batch {
	t.Helper()

	b, err := NewBatch(testExecDate, "PAYRUN 42", debitAccount(t), testDebitAddress, transactions...)
	require.NoError(t, err)

	return b
}

func interchange(t *testing.T, batches ...*Batch) Interchange {
	t.Helper()

	builder := NewBuilder("ABC12345", "PM000001", testCreatedAt)
	for _, b := range batches {
		builder.AddBatch(b)
	}

	ic, err := builder.Build()
	require.NoError(t, err)

	return ic
}
