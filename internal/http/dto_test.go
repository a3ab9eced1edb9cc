package http

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"paymulexport/internal/core"
)

func TestParseAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		amount        string
		expected      string
		expectedError bool
	}{
		{
			name:     "whole_number",
			amount:   "999",
			expected: "999",
		},
		{
			name:     "decimal_with_one_place",
			amount:   "14.5",
			expected: "14.5",
		},
		{
			name:     "decimal_with_two_places",
			amount:   "13.22",
			expected: "13.22",
		},
		{
			name:     "sum_is_exact",
			amount:   "0.3",
			expected: "0.3",
		},
		{
			name:     "amount_with_spaces",
			amount:   "  100.50  ",
			expected: "100.5",
		},
		{
			name:          "empty_string",
			amount:        "",
			expectedError: true,
		},
		{
			name:          "zero",
			amount:        "0.00",
			expectedError: true,
		},
		{
			name:          "negative",
			amount:        "-10.00",
			expectedError: true,
		},
		{
			name:          "not_a_number",
			amount:        "12,50",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := ParseAmount(tt.amount)

			if tt.expectedError {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.True(t, decimal.RequireFromString(tt.expected).Equal(result), "got %s", result)
		})
	}
}

func TestExportRequest_ToDomain(t *testing.T) {
	t.Parallel()

	t.Run("maps_order_and_lines", func(t *testing.T) {
		t.Parallel()

		req := validRequest()
		req.DatePreference = "fixed"
		req.ScheduledDate = "2026-10-21"
		req.Lines[0].MaturityDate = "2026-11-01"

		order, err := req.ToDomain()
		require.NoError(t, err)

		require.Equal(t, "PO/2026/0042", order.Reference)
		require.Equal(t, "Faster Payment", order.PaymentType)
		require.Equal(t, core.DateFixed, order.DatePreference)
		require.Equal(t, time.Date(2026, 10, 21, 0, 0, 0, 0, time.UTC), order.ScheduledDate)
		require.True(t, order.ExecutionDate.IsZero())
		require.Equal(t, "20-30-40 00112233", order.SourceAccount.AccountNumber)
		require.Equal(t, "GB", order.SourceAccount.CountryCode)

		require.Len(t, order.Lines, 1)
		line := order.Lines[0]
		require.Equal(t, "INV-001", line.Name)
		require.True(t, decimal.RequireFromString("1250.5").Equal(line.Amount))
		require.Equal(t, "GBP", line.Currency)
		require.Equal(t, time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC), line.MaturityDate)
		require.NotNil(t, line.Beneficiary)
		require.Equal(t, "Northwind Traders", line.Beneficiary.PartnerName)
	})

	t.Run("defaults_date_preference_to_now", func(t *testing.T) {
		t.Parallel()

		order, err := validRequest().ToDomain()
		require.NoError(t, err)
		require.Equal(t, core.DateNow, order.DatePreference)
	})

	t.Run("invalid_amount_returns_error", func(t *testing.T) {
		t.Parallel()

		req := validRequest()
		req.Lines[0].Amount = "abc"

		_, err := req.ToDomain()
		require.ErrorContains(t, err, "invalid amount for line INV-001")
	})

	t.Run("invalid_execution_date_returns_error", func(t *testing.T) {
		t.Parallel()

		req := validRequest()
		req.ExecutionDate = "21/10/2026"

		_, err := req.ToDomain()
		require.ErrorContains(t, err, "invalid execution date")
	})
}

func TestNewExportResponse(t *testing.T) {
	t.Parallel()

	response := NewExportResponse(core.Export{
		FileName:             "a.paymul",
		Content:              []byte("UNB'"),
		Reference:            "PO 2026 0042",
		InterchangeReference: "PM000001",
		ExecutionDate:        time.Date(2026, 10, 21, 0, 0, 0, 0, time.UTC),
		TotalAmount:          decimal.RequireFromString("1250.5"),
		TransactionCount:     1,
	})

	require.Equal(t, "2026-10-21", response.ExecutionDate)
	require.Equal(t, "1250.50", response.TotalAmount)
	require.Equal(t, []byte("UNB'"), response.Content)
}

func validRequest() ExportRequest {
	return ExportRequest{
		Reference:   "PO/2026/0042",
		PaymentType: "Faster Payment",
		SourceAccount: BankAccount{
			AccountNumber: "20-30-40 00112233",
			CountryCode:   "GB",
			CountryName:   "United Kingdom",
			OwnerName:     "Acme Ltd",
			Street:        "1 High Street",
			Zip:           "EC1A 1BB",
			City:          "London",
			ClientID:      "ABC12345",
		},
		Lines: []PaymentLine{
			{
				Name:     "INV-001",
				Amount:   "1250.50",
				Currency: "GBP",
				Beneficiary: &BankAccount{
					AccountNumber: "40-50-60 87654321",
					CountryCode:   "GB",
					CountryName:   "United Kingdom",
					PartnerName:   "Northwind Traders",
					Street:        "2 Low Road",
					Zip:           "M1 1AA",
					City:          "Manchester",
				},
			},
		},
	}
}
