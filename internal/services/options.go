package services

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	catalog "github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/domain"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/queries/get_product"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/queries/list_products"
	catalogrepo "github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/repo"
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
	"github.com/ahmadnk31/5gfones-sub000/internal/app/devices/queries/list_children"
	devicesrepo "github.com/ahmadnk31/5gfones-sub000/internal/app/devices/repo"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/devices/usecases/create_node"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/devices/usecases/delete_node"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/orders/queries/get_order"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/orders/queries/list_orders"
	ordersrepo "github.com/ahmadnk31/5gfones-sub000/internal/app/orders/repo"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/orders/usecases/cancel_order"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/orders/usecases/create_order"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/orders/usecases/fulfill_order"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/repairs/queries/get_booking"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/repairs/queries/quote_booking"
	repairsrepo "github.com/ahmadnk31/5gfones-sub000/internal/app/repairs/repo"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/repairs/usecases/create_booking"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/repairs/usecases/update_booking_status"
	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/clock"
	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/committer"
	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/config"
	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/imagestore"
	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/payments"
	transporthttp "github.com/ahmadnk31/5gfones-sub000/internal/transport/http"
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	SpannerClient *spanner.Client
	Handlers      transporthttp.Handlers
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, logger *zap.Logger, cfg config.Config) (*ServiceOptions, error) {
	spannerClient, err := spanner.NewClient(ctx, cfg.SpannerDB)
	if err != nil {
		return nil, fmt.Errorf("failed to create Spanner client: %w", err)
	}

	clk := clock.NewRealClock()
	comm := committer.NewCommitter(spannerClient)

	surcharge, err := parseSurcharge(cfg.CourierSurcharge)
	if err != nil {
		spannerClient.Close()
		return nil, err
	}

	provider, err := payments.NewStripeProvider(cfg.StripeAPIKey)
	if err != nil {
		spannerClient.Close()
		return nil, fmt.Errorf("failed to create payment provider: %w", err)
	}

	uploader, err := imagestore.NewGCSUploader(ctx, cfg.StorageBucket)
	if err != nil {
		spannerClient.Close()
		return nil, fmt.Errorf("failed to create image uploader: %w", err)
	}

	// Catalog
	productRepo := catalogrepo.NewProductRepo(spannerClient, clk)
	variantRepo := catalogrepo.NewVariantRepo(spannerClient)
	categoryRepo := catalogrepo.NewCategoryRepo(spannerClient)
	catalogOutbox := catalogrepo.NewOutboxRepo(spannerClient)
	readModel := catalogrepo.NewReadModel(spannerClient, categoryRepo, clk)

	catalogHandler := transporthttp.NewCatalogHandler(
		logger,
		create_product.NewInteractor(productRepo, categoryRepo, catalogOutbox, comm, clk),
		update_product.NewInteractor(productRepo, categoryRepo, catalogOutbox, comm),
		activate_product.NewInteractor(productRepo, catalogOutbox, comm, clk),
		archive_product.NewInteractor(productRepo, catalogOutbox, comm, clk),
		apply_discount.NewInteractor(productRepo, catalogOutbox, comm, clk),
		remove_discount.NewInteractor(productRepo, catalogOutbox, comm, clk),
		add_variant.NewInteractor(productRepo, variantRepo, catalogOutbox, comm, clk),
		set_variant_discount.NewInteractor(variantRepo, comm),
		update_stock.NewInteractor(variantRepo, catalogOutbox, comm, clk),
		upsert_category.NewInteractor(categoryRepo, comm, clk),
		get_product.NewQuery(readModel, clk),
		list_products.NewQuery(readModel, clk),
	)

	// Devices
	nodeRepo := devicesrepo.NewNodeRepo(spannerClient)

	devicesHandler := transporthttp.NewDevicesHandler(
		logger,
		create_node.NewInteractor(nodeRepo, comm, clk),
		delete_node.NewInteractor(nodeRepo, comm),
		list_children.NewQuery(nodeRepo),
	)

	// Orders
	orderRepo := ordersrepo.NewOrderRepo(spannerClient)
	ordersOutbox := ordersrepo.NewOutboxRepo()

	ordersHandler := transporthttp.NewOrdersHandler(
		logger,
		create_order.NewInteractor(orderRepo, ordersOutbox, productRepo, variantRepo, categoryRepo, provider, comm, clk, surcharge, cfg.Currency),
		cancel_order.NewInteractor(orderRepo, ordersOutbox, variantRepo, provider, comm, clk),
		fulfill_order.NewInteractor(orderRepo, ordersOutbox, comm, clk),
		get_order.NewQuery(orderRepo),
		list_orders.NewQuery(orderRepo),
	)

	// Repairs
	bookingRepo := repairsrepo.NewBookingRepo(spannerClient)
	repairsOutbox := repairsrepo.NewOutboxRepo()

	repairsHandler := transporthttp.NewRepairsHandler(
		logger,
		create_booking.NewInteractor(bookingRepo, repairsOutbox, productRepo, variantRepo, categoryRepo, nodeRepo, comm, clk, surcharge),
		update_booking_status.NewInteractor(bookingRepo, repairsOutbox, comm, clk),
		get_booking.NewQuery(bookingRepo),
		quote_booking.NewQuery(productRepo, variantRepo, categoryRepo, clk, surcharge),
	)

	uploadsHandler := transporthttp.NewUploadsHandler(logger, uploader)

	return &ServiceOptions{
		SpannerClient: spannerClient,
		Handlers: transporthttp.Handlers{
			Catalog: catalogHandler,
			Devices: devicesHandler,
			Orders:  ordersHandler,
			Repairs: repairsHandler,
			Uploads: uploadsHandler,
		},
	}, nil
}

func parseSurcharge(raw string) (*catalog.Money, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("malformed courier surcharge %q: %w", raw, err)
	}
	surcharge := catalog.NewMoneyFromRat(d.Rat())
	if surcharge.IsNegative() {
		return nil, fmt.Errorf("courier surcharge %q must not be negative", raw)
	}
	return surcharge, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}
