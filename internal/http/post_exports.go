package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"paymulexport/internal/core"
	"paymulexport/internal/paymul"
)

//go:generate go tool go.uber.org/mock/mockgen -source=post_exports.go -destination=service_mock.go -package=http

type PaymulExporter interface {
	ExportPaymul(ctx context.Context, order core.PaymentOrder) (core.Export, error)
}

// Rejections the caller can fix by changing the payment order.
var orderErrors = []error{
	core.ErrEmptyPaymentOrder,
	core.ErrExecutionDateOutOfRange,
	paymul.ErrMalformedAccountNumber,
	paymul.ErrUnsupportedPaymentType,
	paymul.ErrMissingBeneficiaryAddress,
	paymul.ErrMissingBeneficiaryAccount,
	paymul.ErrInvalidSourceAccount,
	paymul.ErrFieldOverflow,
	paymul.ErrInvalidField,
	paymul.ErrMixedCurrencies,
}

type Handler struct {
	paymulExporter PaymulExporter
	validate       *validator.Validate
	logger         core.Logger
}

func NewHandler(paymulExporter PaymulExporter, logger core.Logger) Handler {
	return Handler{
		paymulExporter: paymulExporter,
		validate:       validator.New(validator.WithRequiredStructEnabled()),
		logger:         logger,
	}
}

func (h Handler) PostExports(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validate.StructCtx(ctx, req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	order, err := req.ToDomain()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	export, err := h.paymulExporter.ExportPaymul(ctx, order)
	if err != nil {
		for _, target := range orderErrors {
			if errors.Is(err, target) {
				http.Error(w, err.Error(), http.StatusUnprocessableEntity)
				return
			}
		}

		h.logger.ErrorContext(ctx, "Failed to export payment order", "error", err)
		http.Error(w, "Failed to export payment order", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(NewExportResponse(export)); err != nil {
		h.logger.ErrorContext(ctx, "Failed to write export response", "error", err)
	}
}
