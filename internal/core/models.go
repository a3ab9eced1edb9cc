package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"paymulexport/internal/paymul"
)

type BankAccount struct {
	AccountNumber string
	IsIBAN        bool
	CountryCode   string
	CountryName   string
	BIC           string
	OwnerName     string
	PartnerName   string
	Street        string
	Zip           string
	City          string
	ClientID      string
}

func (a BankAccount) HasHolder() bool {
	return strings.TrimSpace(a.OwnerName) != "" || strings.TrimSpace(a.PartnerName) != ""
}

func (a BankAccount) HolderName() string {
	if strings.TrimSpace(a.OwnerName) != "" {
		return a.OwnerName
	}
	return a.PartnerName
}

// NameAddress renders the holder block sent in NAD segments: name, street,
// zip and city, country. It is empty when the account has no holder.
func (a BankAccount) NameAddress() string {
	if !a.HasHolder() {
		return ""
	}

	zipCity := strings.TrimSpace(strings.Join([]string{a.Zip, a.City}, " "))

	return strings.Join([]string{a.HolderName(), a.Street, zipCity, a.CountryName}, "\n")
}

func (a BankAccount) Descriptor() paymul.Descriptor {
	return paymul.Descriptor{
		Number:      a.AccountNumber,
		CountryCode: a.CountryCode,
		IsIBAN:      a.IsIBAN,
		BIC:         a.BIC,
		OwnerName:   a.OwnerName,
		PartnerName: a.PartnerName,
	}
}

type PaymentLine struct {
	Name         string
	Amount       decimal.Decimal
	Currency     string
	Beneficiary  *BankAccount
	MaturityDate time.Time
}

type DatePreference string

const (
	DateNow   DatePreference = "now"
	DateDue   DatePreference = "due"
	DateFixed DatePreference = "fixed"
)

type PaymentOrder struct {
	Reference      string
	PaymentType    string
	SourceAccount  BankAccount
	DatePreference DatePreference
	ScheduledDate  time.Time
	ExecutionDate  time.Time
	BatchReference string
	Lines          []PaymentLine
}

func (o PaymentOrder) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, l := range o.Lines {
		total = total.Add(l.Amount)
	}

	return total
}

// Sequence issues interchange references, e.g. prefix "PM" and padding 6
// gives PM000001, PM000002, ...
type Sequence struct {
	ID         int64
	Code       string
	Prefix     string
	Padding    int
	NextNumber int64
}

func (s *Sequence) Issue() string {
	reference := fmt.Sprintf("%s%0*d", s.Prefix, s.Padding, s.NextNumber)
	s.NextNumber++

	return reference
}

type Export struct {
	FileName             string
	Content              []byte
	Reference            string
	InterchangeReference string
	ExecutionDate        time.Time
	TotalAmount          decimal.Decimal
	TransactionCount     int
}
