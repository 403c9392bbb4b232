package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ahmadnk31/5gfones-sub000/internal/app/orders/domain"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/orders/queries/get_order"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/orders/queries/list_orders"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/orders/usecases/cancel_order"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/orders/usecases/create_order"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/orders/usecases/fulfill_order"
	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/httpx"
)

// OrdersHandler handles HTTP requests for checkout and order management.
type OrdersHandler struct {
	logger       *zap.Logger
	createOrder  *create_order.Interactor
	cancelOrder  *cancel_order.Interactor
	fulfillOrder *fulfill_order.Interactor
	getOrder     *get_order.Query
	listOrders   *list_orders.Query
}

// NewOrdersHandler creates a new orders HTTP handler.
func NewOrdersHandler(
	logger *zap.Logger,
	createOrder *create_order.Interactor,
	cancelOrder *cancel_order.Interactor,
	fulfillOrder *fulfill_order.Interactor,
	getOrder *get_order.Query,
	listOrders *list_orders.Query,
) *OrdersHandler {
	return &OrdersHandler{
		logger:       logger,
		createOrder:  createOrder,
		cancelOrder:  cancelOrder,
		fulfillOrder: fulfillOrder,
		getOrder:     getOrder,
		listOrders:   listOrders,
	}
}

// Register mounts the order routes.
func (h *OrdersHandler) Register(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Post("/", h.handleCreateOrder)
		r.Get("/", h.handleListOrders)
		r.Route("/{orderID}", func(r chi.Router) {
			r.Get("/", h.handleGetOrder)
			r.Post("/cancel", h.handleCancelOrder)
			r.Post("/fulfill", h.handleFulfillOrder)
		})
	})
}

type orderLineRequest struct {
	ProductID string `json:"product_id"`
	VariantID string `json:"variant_id"`
	Quantity  int64  `json:"quantity"`
}

type createOrderRequest struct {
	CustomerID     string             `json:"customer_id"`
	DeliveryMethod string             `json:"delivery_method"`
	PaymentMethod  string             `json:"payment_method"`
	Lines          []orderLineRequest `json:"lines"`
}

func (h *OrdersHandler) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var body createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeBadRequest(w, "malformed JSON body")
		return
	}

	lines := make([]create_order.LineRequest, 0, len(body.Lines))
	for _, line := range body.Lines {
		lines = append(lines, create_order.LineRequest{
			ProductID: line.ProductID,
			VariantID: line.VariantID,
			Quantity:  line.Quantity,
		})
	}

	result, err := h.createOrder.Execute(r.Context(), &create_order.Request{
		CustomerID:     body.CustomerID,
		DeliveryMethod: domain.DeliveryMethod(body.DeliveryMethod),
		PaymentMethod:  body.PaymentMethod,
		Lines:          lines,
	})
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, map[string]string{
		"order_id": result.OrderID,
		"total":    result.Total.String(),
	})
}

func (h *OrdersHandler) handleCancelOrder(w http.ResponseWriter, r *http.Request) {
	err := h.cancelOrder.Execute(r.Context(), &cancel_order.Request{
		OrderID: chi.URLParam(r, "orderID"),
	})
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *OrdersHandler) handleFulfillOrder(w http.ResponseWriter, r *http.Request) {
	err := h.fulfillOrder.Execute(r.Context(), &fulfill_order.Request{
		OrderID: chi.URLParam(r, "orderID"),
	})
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type orderItemResponse struct {
	ProductID       string `json:"product_id"`
	VariantID       string `json:"variant_id,omitempty"`
	Name            string `json:"name"`
	Quantity        int64  `json:"quantity"`
	UnitPrice       string `json:"unit_price"`
	OriginalPrice   string `json:"original_price"`
	DiscountPercent string `json:"discount_percent"`
}

type orderResponse struct {
	OrderID        string              `json:"order_id"`
	CustomerID     string              `json:"customer_id"`
	Status         string              `json:"status"`
	DeliveryMethod string              `json:"delivery_method"`
	Items          []orderItemResponse `json:"items"`
	Surcharge      string              `json:"surcharge"`
	Total          string              `json:"total"`
	PaymentRef     string              `json:"payment_ref,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

func (h *OrdersHandler) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.getOrder.Execute(r.Context(), &get_order.Request{
		OrderID: chi.URLParam(r, "orderID"),
	})
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}

	resp := orderResponse{
		OrderID:        order.OrderID,
		CustomerID:     order.CustomerID,
		Status:         order.Status,
		DeliveryMethod: order.DeliveryMethod,
		Items:          make([]orderItemResponse, 0, len(order.Items)),
		Surcharge:      order.Surcharge,
		Total:          order.Total,
		PaymentRef:     order.PaymentRef,
		CreatedAt:      order.CreatedAt,
		UpdatedAt:      order.UpdatedAt,
	}
	for _, item := range order.Items {
		resp.Items = append(resp.Items, orderItemResponse{
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

type orderSummaryResponse struct {
	OrderID        string    `json:"order_id"`
	Status         string    `json:"status"`
	DeliveryMethod string    `json:"delivery_method"`
	ItemCount      int       `json:"item_count"`
	Total          string    `json:"total"`
	CreatedAt      time.Time `json:"created_at"`
}

func (h *OrdersHandler) handleListOrders(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	customerID := query.Get("customer_id")
	if customerID == "" {
		writeBadRequest(w, "customer_id is required")
		return
	}

	var limit int64
	if raw := query.Get("limit"); raw != "" {
		n, err := parseIntParam(raw)
		if err != nil {
			writeBadRequest(w, "limit must be an integer")
			return
		}
		limit = int64(n)
	}

	summaries, err := h.listOrders.Execute(r.Context(), &list_orders.Request{
		CustomerID: customerID,
		Limit:      limit,
	})
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}

	resp := make([]orderSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		resp = append(resp, orderSummaryResponse{
			OrderID:        s.OrderID,
			Status:         s.Status,
			DeliveryMethod: s.DeliveryMethod,
			ItemCount:      s.ItemCount,
			Total:          s.Total,
			CreatedAt:      s.CreatedAt,
		})
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]any{"orders": resp})
}
