package paymul

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Batch groups the transactions debited from one account on one execution
// date.
type Batch struct {
	execDate     time.Time
	reference    string
	debit        Account
	nameAddress  []string
	transactions []Transaction
}

// NewBatch validates the batch header. The debit account must be a UK
// domestic account.
func NewBatch(execDate time.Time, reference string, debit Account, nameAddress string, transactions ...Transaction) (*Batch, error) {
	if debit.Kind() != KindUK {
		return nil, fmt.Errorf("%w: debit account must be a UK account number, got %s", ErrInvalidSourceAccount, debit.Kind())
	}

	if execDate.IsZero() {
		return nil, invalid("execution_date", "", "must be set")
	}

	reference = strings.ToUpper(reference)
	if err := checkBatchReference(reference); err != nil {
		return nil, err
	}

	lines, err := addressLines("ordering_name_address", nameAddress)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, invalid("name_address", nameAddress, "ordering party name and address must be set")
	}

	b := &Batch{
		execDate:    execDate,
		reference:   reference,
		debit:       debit,
		nameAddress: lines,
	}
	b.Add(transactions...)

	return b, nil
}

func checkBatchReference(reference string) error {
	if reference == "" {
		return invalid("batch_reference", reference, "must be set")
	}
	if err := checkAlnum("batch_reference", reference, maxReference); err != nil {
		return err
	}
	if strings.Contains(reference, "  ") || strings.TrimSpace(reference) != reference {
		return invalid("batch_reference", reference, "must not contain leading, trailing or consecutive spaces")
	}

	return nil
}

func (b *Batch) Add(transactions ...Transaction) {
	b.transactions = append(b.transactions, transactions...)
}

// Remove drops the transaction at index i.
func (b *Batch) Remove(i int) error {
	if i < 0 || i >= len(b.transactions) {
		return fmt.Errorf("transaction index %d out of range [0, %d)", i, len(b.transactions))
	}
	b.transactions = append(b.transactions[:i:i], b.transactions[i+1:]...)

	return nil
}

func (b *Batch) Len() int { return len(b.transactions) }

// Transactions returns a copy of the batch transactions in order.
func (b *Batch) Transactions() []Transaction {
	return append([]Transaction(nil), b.transactions...)
}

// Amount sums the transaction amounts.
func (b *Batch) Amount() decimal.Decimal {
	total := decimal.Zero
	for _, t := range b.transactions {
		total = total.Add(t.amount)
	}

	return total
}

// Currency returns the currency shared by every transaction of the batch.
func (b *Batch) Currency() (string, error) {
	if len(b.transactions) == 0 {
		return "", invalid("transactions", "", "batch has no transactions")
	}

	currency := b.transactions[0].currency
	for _, t := range b.transactions[1:] {
		if t.currency != currency {
			return "", fmt.Errorf("%w: %s and %s", ErrMixedCurrencies, currency, t.currency)
		}
	}

	return currency, nil
}

func (b *Batch) ExecutionDate() time.Time { return b.execDate }

func (b *Batch) Reference() string { return b.reference }

func (b *Batch) DebitAccount() Account { return b.debit }

func (b *Batch) NameAddress() string { return strings.Join(b.nameAddress, "\n") }

func (b *Batch) clone() *Batch {
	c := *b
	c.nameAddress = append([]string(nil), b.nameAddress...)
	c.transactions = b.Transactions()

	return &c
}
