package paymul

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

const (
	syntaxIdentifier = "UNOA"
	syntaxVersion    = "3"
	recipientID      = "HEXAGON ABC"

	messageType         = "PAYMUL"
	messageVersion      = "D"
	messageRelease      = "96A"
	controllingAgency   = "UN"
	associationCode     = "FUN01G"
	messageSequence     = "1"
	messageFunctionCode = "452"
	messageOriginal     = "9"

	dateFormatCCYYMMDD = "102"
	qualifierCreated   = "137"
	qualifierExecution = "203"
	qualifierAmount    = "9"
	qualifierBatchRef  = "AEK"
	qualifierCustRef   = "CR"
	qualifierPayRef    = "PQ"
	qualifierTotalTxns = "39"

	partyOrderingCustomer = "OY"
	partyBeneficiary      = "BE"
	accountOrdering       = "OR"
	accountBeneficiary    = "BF"

	maxLineNumber = 999999
)

type encoder struct {
	segments []segment
	line     int
	details  int
}

func (e *encoder) add(segments ...segment) {
	e.segments = append(e.segments, segments...)
}

// Encode renders the interchange as an HSBC PAYMUL (EDIFACT D.96A) file. The
// whole tree is checked and laid out before any byte is written, so an error
// never comes with partial output.
func Encode(ic Interchange) ([]byte, error) {
	if len(ic.message.batches) == 0 {
		return nil, invalid("interchange", "", "interchange is empty")
	}

	e := &encoder{}
	if err := e.interchange(ic); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	for i, s := range e.segments {
		if i > 0 {
			buf.WriteByte(segmentSeparator)
		}
		s.writeTo(&buf)
	}

	return buf.Bytes(), nil
}

func (e *encoder) interchange(ic Interchange) error {
	e.add(seg("UNB",
		el(syntaxIdentifier, syntaxVersion),
		el("", "", ic.clientID),
		el("", "", recipientID),
		el(ic.createdAt.Format("060102"), ic.createdAt.Format("1504")),
		el(ic.reference),
	))

	if err := e.message(ic.message); err != nil {
		return err
	}

	e.add(seg("UNZ", el("1"), el(ic.reference)))

	return nil
}

func (e *encoder) message(m Message) error {
	start := len(e.segments)

	e.add(
		seg("UNH", el(messageSequence), el(messageType, messageVersion, messageRelease, controllingAgency, associationCode)),
		seg("BGM", el(messageFunctionCode), el(m.reference), el(messageOriginal)),
		seg("DTM", el(qualifierCreated, m.createdAt.Format("20060102"), dateFormatCCYYMMDD)),
	)

	for _, b := range m.batches {
		if err := e.batch(b); err != nil {
			return fmt.Errorf("batch %s: %w", b.reference, err)
		}
	}

	e.add(seg("CNT", el(qualifierTotalTxns, strconv.Itoa(e.details))))

	count := len(e.segments) - start + 1
	e.add(seg("UNT", el(strconv.Itoa(count)), el(messageSequence)))

	return nil
}

func (e *encoder) batch(b *Batch) error {
	if b.debit.Kind() != KindUK {
		return fmt.Errorf("%w: debit account must be a UK account number, got %s", ErrInvalidSourceAccount, b.debit.Kind())
	}

	currency, err := b.Currency()
	if err != nil {
		return err
	}

	means := b.transactions[0].means
	for _, t := range b.transactions[1:] {
		if t.means != means {
			return invalid("means", string(t.means), "transactions in a batch must share one payment means")
		}
	}

	debit, err := fiiSegment(accountOrdering, b.debit)
	if err != nil {
		return err
	}

	// Priority payments need one line item per transaction.
	if means == MeansPriorityPayment {
		for _, t := range b.transactions {
			if err = e.lineItem(b, debit, currency, t.amount, t); err != nil {
				return err
			}
		}
		return nil
	}

	return e.lineItem(b, debit, currency, b.Amount(), b.transactions...)
}

func (e *encoder) lineItem(b *Batch, debit segment, currency string, total decimal.Decimal, transactions ...Transaction) error {
	if e.line >= maxLineNumber {
		return overflow("line_number", strconv.Itoa(e.line+1), len(strconv.Itoa(maxLineNumber)))
	}
	if err := checkAmount("batch_total", total); err != nil {
		return err
	}
	e.line++

	e.add(
		seg("LIN", el(strconv.Itoa(e.line))),
		seg("DTM", el(qualifierExecution, b.execDate.Format("20060102"), dateFormatCCYYMMDD)),
		seg("RFF", el(qualifierBatchRef, b.reference)),
		seg("MOA", el(qualifierAmount, formatAmount(total), currency)),
		debit,
		seg("NAD", el(partyOrderingCustomer), el(""), el(b.nameAddress...)),
	)

	for i, t := range transactions {
		segments, err := transactionSegments(i+1, t)
		if err != nil {
			return fmt.Errorf("transaction %d: %w", i+1, err)
		}
		e.add(segments...)
		e.details++
	}

	return nil
}

func transactionSegments(index int, t Transaction) ([]segment, error) {
	if err := checkAmount("amount", t.amount); err != nil {
		return nil, err
	}

	beneficiary, err := fiiSegment(accountBeneficiary, t.account)
	if err != nil {
		return nil, err
	}

	segments := []segment{
		seg("SEQ", el(""), el(strconv.Itoa(index))),
		seg("MOA", el(qualifierAmount, formatAmount(t.amount), t.currency)),
	}
	if t.customerReference != "" {
		segments = append(segments, seg("RFF", el(qualifierCustRef, t.customerReference)))
	}
	if t.paymentReference != "" {
		segments = append(segments, seg("RFF", el(qualifierPayRef, t.paymentReference)))
	}

	if t.channel != "" {
		segments = append(segments, seg("PAI", el("", "", string(t.means), "", "", t.channel)))
	} else {
		segments = append(segments, seg("PAI", el("", "", string(t.means))))
	}

	segments = append(segments,
		seg("FCA", el(string(t.charges))),
		beneficiary,
		seg("NAD", el(partyBeneficiary), el(""), el(t.nameAddress...)),
	)

	return segments, nil
}

// fiiSegment lays out the financial institution information of an account.
// Each account kind has its own institution identification template.
func fiiSegment(qualifier string, a Account) (segment, error) {
	if len(a.holder) == 0 {
		return segment{}, invalid("holder", "", "must not be empty")
	}

	number := a.number
	if a.kind == KindIBAN {
		number = a.iban
	}
	if len(number) > maxAccountLength {
		return segment{}, overflow("number", number, maxAccountLength)
	}

	identification := el(number, a.holder[0])
	if len(a.holder) > 1 || a.currency != "" {
		second := ""
		if len(a.holder) > 1 {
			second = a.holder[1]
		}
		identification = append(identification, second)
	}
	if a.currency != "" {
		identification = append(identification, a.currency)
	}

	var institution element
	switch a.kind {
	case KindUK:
		institution = el("", "", "", stripSeparators(a.sortcode), "154", "133")
	case KindNorthAmerican:
		if a.originCountry == "US" || a.originCountry == "CA" {
			institution = el("", "", "", stripSeparators(a.sortcode), "155", "114")
		} else {
			institution = el(a.bic, "25", "5")
		}
	case KindSWIFT, KindIBAN:
		institution = el(a.bic, "25", "5")
	default:
		return segment{}, invalid("account", a.kind.String(), "unknown account kind")
	}

	return seg("FII", el(qualifier), identification, institution, el(a.country)), nil
}
