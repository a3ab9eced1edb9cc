package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	httpHandler "paymulexport/internal/http"
)

var now = time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

func exportRequest() httpHandler.ExportRequest {
	return httpHandler.ExportRequest{
		Reference:      "PO/2026/0042",
		PaymentType:    "ACH or EZONE",
		DatePreference: "fixed",
		ScheduledDate:  "2026-10-21",
		SourceAccount: httpHandler.BankAccount{
			AccountNumber: "20-30-40 00112233",
			CountryCode:   "GB",
			CountryName:   "United Kingdom",
			OwnerName:     "Acme Ltd",
			Street:        "1 High Street",
			Zip:           "EC1A 1BB",
			City:          "London",
			ClientID:      "ABC12345",
		},
		Lines: []httpHandler.PaymentLine{
			{
				Name:     "INV/2026/001",
				Amount:   "100.50",
				Currency: "GBP",
				Beneficiary: &httpHandler.BankAccount{
					AccountNumber: "40-50-60 87654321",
					CountryCode:   "GB",
					CountryName:   "United Kingdom",
					PartnerName:   "Alice Smith",
					Street:        "2 Low Road",
					Zip:           "M1 1AA",
					City:          "Manchester",
				},
			},
			{
				Name:     "INV/2026/002",
				Amount:   "250.75",
				Currency: "GBP",
				Beneficiary: &httpHandler.BankAccount{
					AccountNumber: "DE89 3704 0044 0532 0130 00",
					IsIBAN:        true,
					CountryCode:   "DE",
					CountryName:   "Germany",
					BIC:           "DEUTDEFF",
					PartnerName:   "Bob Jones",
					Street:        "Hauptstr. 1",
					Zip:           "10115",
					City:          "Berlin",
				},
			},
		},
	}
}

func post(t *testing.T, handler http.Handler, body httpHandler.ExportRequest) *httptest.ResponseRecorder {
	t.Helper()

	bodyBytes, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/exports/paymul", bytes.NewReader(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	return w
}

func TestExport_E2E_HappyPath(t *testing.T) {
	suite := NewTestSuite(t, now)
	defer suite.Teardown()

	w := post(t, suite.Handler, exportRequest())
	require.Equal(t, http.StatusCreated, w.Code, "expected 201 Created, got: %s", w.Body.String())
	require.NotEmpty(t, w.Header().Get("X-Request-Id"))

	var response httpHandler.ExportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	require.Equal(t, "PM000001", response.InterchangeReference)
	require.Equal(t, "PO 2026 0042", response.Reference)
	require.Equal(t, "2026-10-21", response.ExecutionDate)
	require.Equal(t, "351.25", response.TotalAmount)
	require.Equal(t, 2, response.TransactionCount)
	require.Equal(t, "20-30-40_00112233_2026-10-21_PO_2026_0042.paymul", response.FileName)

	segments := strings.Split(string(response.Content), "\n")
	require.Equal(t, "UNB+UNOA:3+::ABC12345+::HEXAGON ABC+261019:0930+PM000001'", segments[0])
	require.Equal(t, "UNZ+1+PM000001'", segments[len(segments)-1])

	expectedSegments := []string{
		"DTM+203:20261021:102'",
		"MOA+9:351.25:GBP'",
		"FII+BF+87654321:ALICE SMITH+:::405060:154:133+GB'",
		"FII+BF+DE89370400440532013000:BOB JONES+DEUTDEFF:25:5+DE'",
		"FCA+13'",
		"FCA+14'",
		"CNT+39:2'",
	}
	for _, segment := range expectedSegments {
		require.Contains(t, segments, segment)
	}

	second := post(t, suite.Handler, exportRequest())
	require.Equal(t, http.StatusCreated, second.Code, second.Body.String())
	require.Contains(t, second.Body.String(), `"interchange_reference":"PM000002"`)
}

func TestExport_E2E_RejectsInvalidSourceAccount(t *testing.T) {
	suite := NewTestSuite(t, now)
	defer suite.Teardown()

	req := exportRequest()
	req.SourceAccount = httpHandler.BankAccount{
		AccountNumber: "GB29 NWBK 6016 1331 9268 19",
		IsIBAN:        true,
		CountryCode:   "GB",
		BIC:           "NWBKGB2L",
		OwnerName:     "Acme Ltd",
		ClientID:      "ABC12345",
	}

	w := post(t, suite.Handler, req)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	require.Contains(t, w.Body.String(), "UK account number")
}

func TestExport_E2E_RejectsDistantExecutionDate(t *testing.T) {
	suite := NewTestSuite(t, now)
	defer suite.Teardown()

	req := exportRequest()
	req.ExecutionDate = "2027-01-31"

	w := post(t, suite.Handler, req)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	require.Contains(t, w.Body.String(), "execution date out of range")
}
