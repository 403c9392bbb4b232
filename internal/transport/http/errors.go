package http

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	catalog "github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/domain"
	devices "github.com/ahmadnk31/5gfones-sub000/internal/app/devices/domain"
	orders "github.com/ahmadnk31/5gfones-sub000/internal/app/orders/domain"
	repairs "github.com/ahmadnk31/5gfones-sub000/internal/app/repairs/domain"
	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/committer"
	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/httpx"
	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/payments"
)

// writeDomainError maps application errors onto the JSON error envelope.
// Unrecognized errors are logged and reported as a plain 500 so internals
// never leak to clients.
func writeDomainError(w http.ResponseWriter, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, payments.ErrPaymentDeclined):
		httpx.WriteError(w, httpx.NewError("payment_declined", err.Error(), http.StatusPaymentRequired))
	case errors.Is(err, committer.ErrVersionConflict):
		httpx.WriteError(w, httpx.NewError("version_conflict", err.Error(), http.StatusConflict))
	case isValidation(err):
		httpx.WriteError(w, httpx.NewError("validation_failed", err.Error(), http.StatusUnprocessableEntity))
	case isNotFound(err):
		httpx.WriteError(w, httpx.NewError("not_found", err.Error(), http.StatusNotFound))
	default:
		logger.Error("request failed", zap.Error(err))
		httpx.WriteError(w, httpx.NewError("internal", "internal server error", http.StatusInternalServerError))
	}
}

func isValidation(err error) bool {
	return catalog.IsValidation(err) ||
		devices.IsValidation(err) ||
		orders.IsValidation(err) ||
		repairs.IsValidation(err)
}

func isNotFound(err error) bool {
	return catalog.IsNotFound(err) ||
		devices.IsNotFound(err) ||
		orders.IsNotFound(err) ||
		repairs.IsNotFound(err)
}

func writeBadRequest(w http.ResponseWriter, message string) {
	httpx.WriteError(w, httpx.NewError("bad_request", message, http.StatusBadRequest))
}
