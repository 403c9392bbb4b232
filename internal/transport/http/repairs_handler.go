package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ahmadnk31/5gfones-sub000/internal/app/repairs/domain"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/repairs/queries/get_booking"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/repairs/queries/quote_booking"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/repairs/usecases/create_booking"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/repairs/usecases/update_booking_status"
	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/httpx"
)

// RepairsHandler handles HTTP requests for repair quotes and bookings.
type RepairsHandler struct {
	logger        *zap.Logger
	createBooking *create_booking.Interactor
	updateStatus  *update_booking_status.Interactor
	getBooking    *get_booking.Query
	quoteBooking  *quote_booking.Query
}

// NewRepairsHandler creates a new repairs HTTP handler.
func NewRepairsHandler(
	logger *zap.Logger,
	createBooking *create_booking.Interactor,
	updateStatus *update_booking_status.Interactor,
	getBooking *get_booking.Query,
	quoteBooking *quote_booking.Query,
) *RepairsHandler {
	return &RepairsHandler{
		logger:        logger,
		createBooking: createBooking,
		updateStatus:  updateStatus,
		getBooking:    getBooking,
		quoteBooking:  quoteBooking,
	}
}

// Register mounts the repair routes.
func (h *RepairsHandler) Register(r chi.Router) {
	r.Route("/repairs", func(r chi.Router) {
		r.Post("/", h.handleCreateBooking)
		r.Post("/quote", h.handleQuoteBooking)
		r.Route("/{bookingID}", func(r chi.Router) {
			r.Get("/", h.handleGetBooking)
			r.Put("/status", h.handleUpdateStatus)
		})
	})
}

type repairLineRequest struct {
	ProductID string `json:"product_id"`
	VariantID string `json:"variant_id"`
	Quantity  int64  `json:"quantity"`
}

type createBookingRequest struct {
	CustomerName  string              `json:"customer_name"`
	CustomerEmail string              `json:"customer_email"`
	CustomerPhone string              `json:"customer_phone"`
	DeviceModelID string              `json:"device_model_id"`
	ProblemNote   string              `json:"problem_note"`
	Handover      string              `json:"handover"`
	ScheduledAt   time.Time           `json:"scheduled_at"`
	Lines         []repairLineRequest `json:"lines"`
}

func (h *RepairsHandler) handleCreateBooking(w http.ResponseWriter, r *http.Request) {
	var body createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeBadRequest(w, "malformed JSON body")
		return
	}

	lines := make([]create_booking.LineRequest, 0, len(body.Lines))
	for _, line := range body.Lines {
		lines = append(lines, create_booking.LineRequest{
			ProductID: line.ProductID,
			VariantID: line.VariantID,
			Quantity:  line.Quantity,
		})
	}

	result, err := h.createBooking.Execute(r.Context(), &create_booking.Request{
		CustomerName:  body.CustomerName,
		CustomerEmail: body.CustomerEmail,
		CustomerPhone: body.CustomerPhone,
		DeviceModelID: body.DeviceModelID,
		ProblemNote:   body.ProblemNote,
		Handover:      domain.HandoverMethod(body.Handover),
		ScheduledAt:   body.ScheduledAt,
		Lines:         lines,
	})
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, map[string]string{
		"booking_id": result.BookingID,
		"total":      result.Total.String(),
	})
}

type quoteBookingRequest struct {
	Handover string              `json:"handover"`
	Lines    []repairLineRequest `json:"lines"`
}

type quoteLineResponse struct {
	ProductID       string `json:"product_id"`
	VariantID       string `json:"variant_id,omitempty"`
	Name            string `json:"name"`
	Quantity        int64  `json:"quantity"`
	UnitPrice       string `json:"unit_price"`
	OriginalPrice   string `json:"original_price"`
	DiscountPercent string `json:"discount_percent"`
	LineTotal       string `json:"line_total"`
}

type quoteResponse struct {
	Lines     []quoteLineResponse `json:"lines"`
	Surcharge string              `json:"surcharge"`
	Total     string              `json:"total"`
}

func (h *RepairsHandler) handleQuoteBooking(w http.ResponseWriter, r *http.Request) {
	var body quoteBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeBadRequest(w, "malformed JSON body")
		return
	}

	lines := make([]quote_booking.LineRequest, 0, len(body.Lines))
	for _, line := range body.Lines {
		lines = append(lines, quote_booking.LineRequest{
			ProductID: line.ProductID,
			VariantID: line.VariantID,
			Quantity:  line.Quantity,
		})
	}

	quote, err := h.quoteBooking.Execute(r.Context(), &quote_booking.Request{
		Handover: domain.HandoverMethod(body.Handover),
		Lines:    lines,
	})
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}

	resp := quoteResponse{
		Lines:     make([]quoteLineResponse, 0, len(quote.Lines)),
		Surcharge: quote.Surcharge,
		Total:     quote.Total,
	}
	for _, line := range quote.Lines {
		resp.Lines = append(resp.Lines, quoteLineResponse{
			ProductID:       line.ProductID,
			VariantID:       line.VariantID,
			Name:            line.Name,
			Quantity:        line.Quantity,
			UnitPrice:       line.UnitPrice,
			OriginalPrice:   line.OriginalPrice,
			DiscountPercent: line.DiscountPercent,
			LineTotal:       line.LineTotal,
		})
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}

type updateBookingStatusRequest struct {
	Status string `json:"status"`
}

func (h *RepairsHandler) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var body updateBookingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeBadRequest(w, "malformed JSON body")
		return
	}

	err := h.updateStatus.Execute(r.Context(), &update_booking_status.Request{
		BookingID: chi.URLParam(r, "bookingID"),
		Status:    domain.BookingStatus(body.Status),
	})
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type bookingItemResponse struct {
	ProductID       string `json:"product_id"`
	VariantID       string `json:"variant_id,omitempty"`
	Name            string `json:"name"`
	Quantity        int64  `json:"quantity"`
	UnitPrice       string `json:"unit_price"`
	OriginalPrice   string `json:"original_price"`
	DiscountPercent string `json:"discount_percent"`
}

type bookingResponse struct {
	BookingID     string                `json:"booking_id"`
	CustomerName  string                `json:"customer_name"`
	CustomerEmail string                `json:"customer_email"`
	CustomerPhone string                `json:"customer_phone,omitempty"`
	DeviceModelID string                `json:"device_model_id"`
	ProblemNote   string                `json:"problem_note,omitempty"`
	Handover      string                `json:"handover"`
	ScheduledAt   time.Time             `json:"scheduled_at"`
	Status        string                `json:"status"`
	Items         []bookingItemResponse `json:"items"`
	Surcharge     string                `json:"surcharge"`
	Total         string                `json:"total"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

func (h *RepairsHandler) handleGetBooking(w http.ResponseWriter, r *http.Request) {
	booking, err := h.getBooking.Execute(r.Context(), &get_booking.Request{
		BookingID: chi.URLParam(r, "bookingID"),
	})
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}

	resp := bookingResponse{
		BookingID:     booking.BookingID,
		CustomerName:  booking.CustomerName,
		CustomerEmail: booking.CustomerEmail,
		CustomerPhone: booking.CustomerPhone,
		DeviceModelID: booking.DeviceModelID,
		ProblemNote:   booking.ProblemNote,
		Handover:      booking.Handover,
		ScheduledAt:   booking.ScheduledAt,
		Status:        booking.Status,
		Items:         make([]bookingItemResponse, 0, len(booking.Items)),
		Surcharge:     booking.Surcharge,
		Total:         booking.Total,
		CreatedAt:     booking.CreatedAt,
		UpdatedAt:     booking.UpdatedAt,
	}
	for _, item := range booking.Items {
		resp.Items = append(resp.Items, bookingItemResponse{
			ProductID:       item.ProductID,
			VariantID:       item.VariantID,
			Name:            item.Name,
			Quantity:        item.Quantity,
			UnitPrice:       item.UnitPrice,
			OriginalPrice:   item.OriginalPrice,
			DiscountPercent: item.DiscountPercent,
		})
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}
