package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/contracts"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/queries/get_product"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/queries/list_products"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/usecases/activate_product"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/usecases/add_variant"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/usecases/apply_discount"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/usecases/archive_product"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/usecases/create_product"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/usecases/remove_discount"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/usecases/set_variant_discount"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/usecases/update_product"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/usecases/update_stock"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/usecases/upsert_category"
	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/httpx"
)

// CatalogHandler handles HTTP requests for products, variants and categories.
type CatalogHandler struct {
	logger             *zap.Logger
	createProduct      *create_product.Interactor
	updateProduct      *update_product.Interactor
	activateProduct    *activate_product.Interactor
	archiveProduct     *archive_product.Interactor
	applyDiscount      *apply_discount.Interactor
	removeDiscount     *remove_discount.Interactor
	addVariant         *add_variant.Interactor
	setVariantDiscount *set_variant_discount.Interactor
	updateStock        *update_stock.Interactor
	upsertCategory     *upsert_category.Interactor
	getProduct         *get_product.Query
	listProducts       *list_products.Query
}

// NewCatalogHandler creates a new catalog HTTP handler.
func NewCatalogHandler(
	logger *zap.Logger,
	createProduct *create_product.Interactor,
	updateProduct *update_product.Interactor,
	activateProduct *activate_product.Interactor,
	archiveProduct *archive_product.Interactor,
	applyDiscount *apply_discount.Interactor,
	removeDiscount *remove_discount.Interactor,
	addVariant *add_variant.Interactor,
	setVariantDiscount *set_variant_discount.Interactor,
	updateStock *update_stock.Interactor,
	upsertCategory *upsert_category.Interactor,
	getProduct *get_product.Query,
	listProducts *list_products.Query,
) *CatalogHandler {
	return &CatalogHandler{
		logger:             logger,
		createProduct:      createProduct,
		updateProduct:      updateProduct,
		activateProduct:    activateProduct,
		archiveProduct:     archiveProduct,
		applyDiscount:      applyDiscount,
		removeDiscount:     removeDiscount,
		addVariant:         addVariant,
		setVariantDiscount: setVariantDiscount,
		updateStock:        updateStock,
		upsertCategory:     upsertCategory,
		getProduct:         getProduct,
		listProducts:       listProducts,
	}
}

// Register mounts the catalog routes.
func (h *CatalogHandler) Register(r chi.Router) {
	r.Route("/products", func(r chi.Router) {
		r.Post("/", h.handleCreateProduct)
		r.Get("/", h.handleListProducts)
		r.Route("/{productID}", func(r chi.Router) {
			r.Get("/", h.handleGetProduct)
			r.Patch("/", h.handleUpdateProduct)
			r.Post("/activate", h.handleActivateProduct)
			r.Post("/archive", h.handleArchiveProduct)
			r.Put("/discount", h.handleApplyDiscount)
			r.Delete("/discount", h.handleRemoveDiscount)
			r.Post("/variants", h.handleAddVariant)
			r.Put("/variants/{variantID}/discount", h.handleSetVariantDiscount)
			r.Put("/variants/{variantID}/stock", h.handleUpdateStock)
		})
	})
	r.Route("/categories", func(r chi.Router) {
		r.Post("/", h.handleUpsertCategory)
		r.Put("/{categoryID}", h.handleUpsertCategory)
	})
}

type createProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	CategoryID  string `json:"category_id"`
	BasePrice   string `json:"base_price"`
	ImageURL    string `json:"image_url"`
}

func (h *CatalogHandler) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var body createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeBadRequest(w, "malformed JSON body")
		return
	}

	basePrice, err := parseMoney(body.BasePrice)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	productID, err := h.createProduct.Execute(r.Context(), &create_product.Request{
		Name:        body.Name,
		Description: body.Description,
		CategoryID:  body.CategoryID,
		BasePrice:   basePrice,
		ImageURL:    body.ImageURL,
	})
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, map[string]string{"product_id": productID})
}

type updateProductRequest struct {
	ExpectedVersion int64   `json:"expected_version"`
	Name            *string `json:"name"`
	Description     *string `json:"description"`
	CategoryID      *string `json:"category_id"`
	ImageURL        *string `json:"image_url"`
	BasePrice       *string `json:"base_price"`
}

func (h *CatalogHandler) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	var body updateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeBadRequest(w, "malformed JSON body")
		return
	}

	basePrice, err := parseOptionalMoney(body.BasePrice)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	err = h.updateProduct.Execute(r.Context(), &update_product.Request{
		ProductID:       chi.URLParam(r, "productID"),
		ExpectedVersion: body.ExpectedVersion,
		Name:            body.Name,
		Description:     body.Description,
		CategoryID:      body.CategoryID,
		ImageURL:        body.ImageURL,
		BasePrice:       basePrice,
	})
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CatalogHandler) handleActivateProduct(w http.ResponseWriter, r *http.Request) {
	err := h.activateProduct.Execute(r.Context(), &activate_product.Request{
		ProductID: chi.URLParam(r, "productID"),
	})
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CatalogHandler) handleArchiveProduct(w http.ResponseWriter, r *http.Request) {
	err := h.archiveProduct.Execute(r.Context(), &archive_product.Request{
		ProductID: chi.URLParam(r, "productID"),
	})
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type applyDiscountRequest struct {
	Percent   string     `json:"percent"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

func (h *CatalogHandler) handleApplyDiscount(w http.ResponseWriter, r *http.Request) {
	var body applyDiscountRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeBadRequest(w, "malformed JSON body")
		return
	}

	percent, err := parsePercent(body.Percent)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	err = h.applyDiscount.Execute(r.Context(), &apply_discount.Request{
		ProductID: chi.URLParam(r, "productID"),
		Percent:   percent,
		StartDate: body.StartDate,
		EndDate:   body.EndDate,
	})
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CatalogHandler) handleRemoveDiscount(w http.ResponseWriter, r *http.Request) {
	err := h.removeDiscount.Execute(r.Context(), &remove_discount.Request{
		ProductID: chi.URLParam(r, "productID"),
	})
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type addVariantRequest struct {
	Name            string     `json:"name"`
	SKU             string     `json:"sku"`
	PriceAdjustment string     `json:"price_adjustment"`
	Stock           int64      `json:"stock"`
	DiscountPercent *string    `json:"discount_percent"`
	DiscountStart   *time.Time `json:"discount_start"`
	DiscountEnd     *time.Time `json:"discount_end"`
}

func (h *CatalogHandler) handleAddVariant(w http.ResponseWriter, r *http.Request) {
	var body addVariantRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeBadRequest(w, "malformed JSON body")
		return
	}

	adjustment, err := parseMoney(body.PriceAdjustment)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	discount, err := parseOptionalPercent(body.DiscountPercent)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	variantID, err := h.addVariant.Execute(r.Context(), &add_variant.Request{
		ProductID:       chi.URLParam(r, "productID"),
		Name:            body.Name,
		SKU:             body.SKU,
		PriceAdjustment: adjustment,
		Stock:           body.Stock,
		DiscountPercent: discount,
		DiscountStart:   body.DiscountStart,
		DiscountEnd:     body.DiscountEnd,
	})
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, map[string]string{"variant_id": variantID})
}

type setVariantDiscountRequest struct {
	// A null percent clears the variant discount so the product discount
	// applies again. "0" pins the variant at full price.
	Percent   *string    `json:"percent"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

func (h *CatalogHandler) handleSetVariantDiscount(w http.ResponseWriter, r *http.Request) {
	var body setVariantDiscountRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeBadRequest(w, "malformed JSON body")
		return
	}

	percent, err := parseOptionalPercent(body.Percent)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	err = h.setVariantDiscount.Execute(r.Context(), &set_variant_discount.Request{
		ProductID: chi.URLParam(r, "productID"),
		VariantID: chi.URLParam(r, "variantID"),
		Percent:   percent,
		StartDate: body.StartDate,
		EndDate:   body.EndDate,
	})
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type updateStockRequest struct {
	Stock int64 `json:"stock"`
}

func (h *CatalogHandler) handleUpdateStock(w http.ResponseWriter, r *http.Request) {
	var body updateStockRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeBadRequest(w, "malformed JSON body")
		return
	}

	err := h.updateStock.Execute(r.Context(), &update_stock.Request{
		ProductID: chi.URLParam(r, "productID"),
		VariantID: chi.URLParam(r, "variantID"),
		Stock:     body.Stock,
	})
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type upsertCategoryRequest struct {
	Name     string `json:"name"`
	Discount string `json:"discount_percent"`
}

func (h *CatalogHandler) handleUpsertCategory(w http.ResponseWriter, r *http.Request) {
	var body upsertCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeBadRequest(w, "malformed JSON body")
		return
	}

	discount, err := parsePercent(body.Discount)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	categoryID, err := h.upsertCategory.Execute(r.Context(), &upsert_category.Request{
		CategoryID: chi.URLParam(r, "categoryID"),
		Name:       body.Name,
		Discount:   discount,
	})
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]string{"category_id": categoryID})
}

func (h *CatalogHandler) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.getProduct.Execute(r.Context(), &get_product.Request{
		ProductID: chi.URLParam(r, "productID"),
	})
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toProductResponse(product))
}

func (h *CatalogHandler) handleListProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	pageSize := 0
	if raw := query.Get("page_size"); raw != "" {
		n, err := parseIntParam(raw)
		if err != nil {
			writeBadRequest(w, "page_size must be an integer")
			return
		}
		pageSize = n
	}

	result, err := h.listProducts.Execute(r.Context(), &list_products.Request{
		CategoryID: query.Get("category_id"),
		Status:     query.Get("status"),
		PageSize:   pageSize,
		PageToken:  query.Get("page_token"),
	})
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}

	products := make([]productResponse, 0, len(result.Products))
	for _, p := range result.Products {
		products = append(products, toProductResponse(p))
	}

	httpx.WriteJSON(w, http.StatusOK, listProductsResponse{
		Products:      products,
		NextPageToken: result.NextPageToken,
		TotalCount:    result.TotalCount,
	})
}

type variantResponse struct {
	VariantID       string `json:"variant_id"`
	Name            string `json:"name"`
	SKU             string `json:"sku"`
	PriceAdjustment string `json:"price_adjustment"`
	UnitPrice       string `json:"unit_price"`
	OriginalPrice   string `json:"original_price"`
	DiscountPercent string `json:"discount_percent,omitempty"`
	Stock           int64  `json:"stock"`
}

type productResponse struct {
	ProductID       string            `json:"product_id"`
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	CategoryID      string            `json:"category_id"`
	ImageURL        string            `json:"image_url,omitempty"`
	BasePrice       string            `json:"base_price"`
	EffectivePrice  string            `json:"effective_price"`
	DiscountPercent string            `json:"discount_percent,omitempty"`
	DiscountActive  bool              `json:"discount_active"`
	Status          string            `json:"status"`
	Version         int64             `json:"version"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
	Variants        []variantResponse `json:"variants"`
}

type listProductsResponse struct {
	Products      []productResponse `json:"products"`
	NextPageToken string            `json:"next_page_token,omitempty"`
	TotalCount    int64             `json:"total_count"`
}

func toProductResponse(dto *contracts.ProductDTO) productResponse {
	resp := productResponse{
		ProductID:       dto.ProductID,
		Name:            dto.Name,
		Description:     dto.Description,
		CategoryID:      dto.CategoryID,
		ImageURL:        dto.ImageURL,
		BasePrice:       dto.BasePrice,
		EffectivePrice:  dto.EffectivePrice,
		DiscountPercent: dto.DiscountPercent,
		DiscountActive:  dto.DiscountActive,
		Status:          dto.Status,
		Version:         dto.Version,
		CreatedAt:       dto.CreatedAt,
		UpdatedAt:       dto.UpdatedAt,
		Variants:        make([]variantResponse, 0, len(dto.Variants)),
	}
	for _, v := range dto.Variants {
		resp.Variants = append(resp.Variants, variantResponse{
			VariantID:       v.VariantID,
			Name:            v.Name,
			SKU:             v.SKU,
			PriceAdjustment: v.PriceAdjustment,
			UnitPrice:       v.UnitPrice,
			OriginalPrice:   v.OriginalPrice,
			DiscountPercent: v.DiscountPercent,
			Stock:           v.Stock,
		})
	}
	return resp
}
