package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/modaline/storefront-backend/api/controllers"
	cartcontrollers "github.com/modaline/storefront-backend/api/controllers/cart"
	"github.com/modaline/storefront-backend/api/middleware"
	"github.com/modaline/storefront-backend/internal/cart"
	"github.com/modaline/storefront-backend/internal/catalog"
	"github.com/modaline/storefront-backend/pkg/config"
	"github.com/modaline/storefront-backend/pkg/db"
	"github.com/modaline/storefront-backend/pkg/logger"
	"github.com/modaline/storefront-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	registry *prometheus.Registry,
	catalogService catalog.Service,
	cartService cart.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisClient))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))
		r.Use(middleware.Idempotency(redisClient, logg))

		r.Route("/v1/cart", func(r chi.Router) {
			r.Post("/sync", cartcontrollers.CartSync(cartService, logg))
			r.Get("/", cartcontrollers.CartFetch(cartService, logg))
		})

		r.Route("/v1/products", func(r chi.Router) {
			r.Post("/{productId}/price-preview", controllers.ProductPricePreview(catalogService, logg))
		})
	})

	return r
}
