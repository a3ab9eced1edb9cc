package http

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"paymulexport/internal/core"
)

const dateLayout = "2006-01-02"

type ExportRequest struct {
	Reference      string        `json:"reference" validate:"required"`
	PaymentType    string        `json:"payment_type" validate:"required"`
	DatePreference string        `json:"date_preference" validate:"omitempty,oneof=now due fixed"`
	ScheduledDate  string        `json:"scheduled_date" validate:"required_if=DatePreference fixed,omitempty,datetime=2006-01-02"`
	ExecutionDate  string        `json:"execution_date" validate:"omitempty,datetime=2006-01-02"`
	BatchReference string        `json:"batch_reference" validate:"omitempty,max=18"`
	SourceAccount  BankAccount   `json:"source_account" validate:"required"`
	Lines          []PaymentLine `json:"lines" validate:"required,min=1,dive"`
}

type BankAccount struct {
	AccountNumber string `json:"account_number" validate:"required"`
	IsIBAN        bool   `json:"is_iban"`
	CountryCode   string `json:"country_code" validate:"required,iso3166_1_alpha2"`
	CountryName   string `json:"country_name"`
	BIC           string `json:"bic" validate:"omitempty,bic"`
	OwnerName     string `json:"owner_name"`
	PartnerName   string `json:"partner_name" validate:"required_without=OwnerName"`
	Street        string `json:"street"`
	Zip           string `json:"zip"`
	City          string `json:"city"`
	ClientID      string `json:"client_id"`
}

type PaymentLine struct {
	Name         string       `json:"name" validate:"required"`
	Amount       string       `json:"amount" validate:"required"`
	Currency     string       `json:"currency" validate:"required,iso4217"`
	MaturityDate string       `json:"maturity_date" validate:"omitempty,datetime=2006-01-02"`
	Beneficiary  *BankAccount `json:"beneficiary" validate:"required"`
}

type ExportResponse struct {
	FileName             string `json:"file_name"`
	Content              []byte `json:"content"`
	Reference            string `json:"reference"`
	InterchangeReference string `json:"interchange_reference"`
	ExecutionDate        string `json:"execution_date"`
	TotalAmount          string `json:"total_amount"`
	TransactionCount     int    `json:"transaction_count"`
}

func ParseAmount(amount string) (decimal.Decimal, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return decimal.Decimal{}, fmt.Errorf("amount cannot be empty")
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount format: %w", err)
	}

	if !value.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("amount must be positive")
	}

	return value, nil
}

func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}

	return time.Parse(dateLayout, value)
}

func (a BankAccount) toDomain() core.BankAccount {
	return core.BankAccount{
		AccountNumber: a.AccountNumber,
		IsIBAN:        a.IsIBAN,
		CountryCode:   strings.ToUpper(a.CountryCode),
		CountryName:   a.CountryName,
		BIC:           a.BIC,
		OwnerName:     a.OwnerName,
		PartnerName:   a.PartnerName,
		Street:        a.Street,
		Zip:           a.Zip,
		City:          a.City,
		ClientID:      a.ClientID,
	}
}

func (req ExportRequest) ToDomain() (core.PaymentOrder, error) {
	scheduled, err := parseDate(req.ScheduledDate)
	if err != nil {
		return core.PaymentOrder{}, fmt.Errorf("invalid scheduled date %s: %w", req.ScheduledDate, err)
	}

	execution, err := parseDate(req.ExecutionDate)
	if err != nil {
		return core.PaymentOrder{}, fmt.Errorf("invalid execution date %s: %w", req.ExecutionDate, err)
	}

	preference := core.DatePreference(req.DatePreference)
	if preference == "" {
		preference = core.DateNow
	}

	lines := make([]core.PaymentLine, 0, len(req.Lines))
	for _, l := range req.Lines {
		amount, err := ParseAmount(l.Amount)
		if err != nil {
			return core.PaymentOrder{}, fmt.Errorf("invalid amount for line %s: %w", l.Name, err)
		}

		maturity, err := parseDate(l.MaturityDate)
		if err != nil {
			return core.PaymentOrder{}, fmt.Errorf("invalid maturity date for line %s: %w", l.Name, err)
		}

		line := core.PaymentLine{
			Name:         l.Name,
			Amount:       amount,
			Currency:     strings.ToUpper(l.Currency),
			MaturityDate: maturity,
		}
		if l.Beneficiary != nil {
			beneficiary := l.Beneficiary.toDomain()
			line.Beneficiary = &beneficiary
		}

		lines = append(lines, line)
	}

	return core.PaymentOrder{
		Reference:      req.Reference,
		PaymentType:    req.PaymentType,
		SourceAccount:  req.SourceAccount.toDomain(),
		DatePreference: preference,
		ScheduledDate:  scheduled,
		ExecutionDate:  execution,
		BatchReference: req.BatchReference,
		Lines:          lines,
	}, nil
}

func NewExportResponse(export core.Export) ExportResponse {
	return ExportResponse{
		FileName:             export.FileName,
		Content:              export.Content,
		Reference:            export.Reference,
		InterchangeReference: export.InterchangeReference,
		ExecutionDate:        export.ExecutionDate.Format(dateLayout),
		TotalAmount:          export.TotalAmount.StringFixed(2),
		TransactionCount:     export.TransactionCount,
	}
}
