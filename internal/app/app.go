package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dayvsonmarques/web-cardapio-sub001/internal/config"
	"github.com/dayvsonmarques/web-cardapio-sub001/internal/handler"
	"github.com/dayvsonmarques/web-cardapio-sub001/internal/maps"
	"github.com/dayvsonmarques/web-cardapio-sub001/internal/repository"
	"github.com/dayvsonmarques/web-cardapio-sub001/internal/service"
	"github.com/dayvsonmarques/web-cardapio-sub001/internal/utils"
	"github.com/dayvsonmarques/web-cardapio-sub001/pkg/observability"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	infra  Infrastructure
	config *config.Config
	router *gin.Engine
	server *http.Server
}

func NewApp(infra Infrastructure, cfg *config.Config) *App {
	repos := repository.NewRepositories(infra.Postgres())

	sessions := utils.NewSessionManager(cfg.Session.Secret, cfg.Session.TokenTTL.Duration)

	blacklistService := service.NewSessionBlacklistService(infra.Redis())
	rateLimiter := service.NewRateLimiter(infra.Redis())
	healthChecker := NewHealthChecker(infra)

	authService := service.NewAuthService(
		repos.User,
		sessions,
		blacklistService,
		cfg.Security.BCryptCost,
	)

	catalogService := service.NewCatalogService(repos.Category, repos.Product)
	tableService := service.NewTableService(repos.Table)

	mapsClient := maps.NewClient(
		cfg.Maps.BaseURL,
		cfg.Maps.APIKey,
		cfg.Maps.Country,
		cfg.Maps.Language,
		&http.Client{Timeout: cfg.Maps.HTTPTimeout.Duration},
	)
	distanceCache := service.NewDistanceCache(infra.Redis(), cfg.Maps.CacheTTL.Duration)
	deliveryService := service.NewDeliveryService(repos.Delivery, mapsClient, distanceCache, infra.Logger())

	orderService := service.NewOrderService(repos.Order, repos.Product, repos.Table, deliveryService, infra.Logger())

	secureCookies := cfg.Env == "production"
	authHandler := handler.NewAuthHandler(authService, cfg.Session.CookieName, secureCookies)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	tableHandler := handler.NewTableHandler(tableService)
	orderHandler := handler.NewOrderHandler(orderService)
	deliveryHandler := handler.NewDeliveryHandler(deliveryService)

	router := gin.Default()
	router.Use(otelgin.Middleware("cardapio-api"))
	router.Use(handler.LoggerMiddleware(infra.Logger()))
	router.Use(handler.CORSMiddleware(cfg.CORS.AllowedOrigins, cfg.CORS.AllowedMethods, cfg.CORS.AllowedHeaders))

	setupRoutes(router, cfg, authHandler, catalogHandler, tableHandler, orderHandler, deliveryHandler, authService, rateLimiter, healthChecker, infra.MetricsHandler())

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout.Duration,
		WriteTimeout: cfg.Server.WriteTimeout.Duration,
	}

	return &App{
		infra:  infra,
		config: cfg,
		router: router,
		server: srv,
	}
}

func (a *App) Router() *gin.Engine {
	return a.router
}

func setupRoutes(
	router *gin.Engine,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	catalogHandler *handler.CatalogHandler,
	tableHandler *handler.TableHandler,
	orderHandler *handler.OrderHandler,
	deliveryHandler *handler.DeliveryHandler,
	authService service.AuthService,
	rateLimiter *service.RateLimiter,
	healthChecker *HealthChecker,
	metricsHandler http.Handler,
) {
	router.GET("/metrics", observability.PrometheusHandler(metricsHandler))
	router.GET("/health", healthChecker.Handler)

	rateLimit := handler.RateLimitMiddleware(
		rateLimiter,
		cfg.Security.RateLimitRequests,
		cfg.Security.RateLimitWindow.Duration,
		handler.IPBasedKey,
	)
	authRequired := handler.AuthMiddleware(authService, cfg.Session.CookieName)
	adminRequired := handler.AdminMiddleware()

	api := router.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", rateLimit, authHandler.Register)
			auth.POST("/login", rateLimit, authHandler.Login)
			auth.POST("/logout", authRequired, authHandler.Logout)
			auth.GET("/me", authRequired, authHandler.GetMe)
		}

		api.GET("/menu", catalogHandler.Menu)
		api.GET("/categories", catalogHandler.PublicCategories)
		api.GET("/products", catalogHandler.PublicProducts)

		delivery := api.Group("/delivery")
		{
			delivery.POST("/quote", rateLimit, deliveryHandler.Quote)
			delivery.POST("/distance", rateLimit, deliveryHandler.Distance)
		}

		api.POST("/orders", rateLimit, orderHandler.Place)
		api.GET("/orders/:id", orderHandler.Get)

		admin := api.Group("/admin", authRequired, adminRequired)
		{
			admin.GET("/categories", catalogHandler.ListCategories)
			admin.POST("/categories", catalogHandler.CreateCategory)
			admin.PUT("/categories/:id", catalogHandler.UpdateCategory)
			admin.DELETE("/categories/:id", catalogHandler.DeleteCategory)

			admin.GET("/products", catalogHandler.ListProducts)
			admin.GET("/products/:id", catalogHandler.GetProduct)
			admin.POST("/products", catalogHandler.CreateProduct)
			admin.PUT("/products/:id", catalogHandler.UpdateProduct)
			admin.DELETE("/products/:id", catalogHandler.DeleteProduct)

			admin.GET("/tables", tableHandler.List)
			admin.POST("/tables", tableHandler.Create)
			admin.PUT("/tables/:id/status", tableHandler.SetStatus)
			admin.DELETE("/tables/:id", tableHandler.Delete)

			admin.GET("/orders", orderHandler.List)
			admin.PUT("/orders/:id/status", orderHandler.SetStatus)

			admin.GET("/delivery/settings", deliveryHandler.GetSettings)
			admin.PUT("/delivery/settings", deliveryHandler.SaveSettings)
			admin.GET("/delivery/tiers", deliveryHandler.ListTiers)
			admin.PUT("/delivery/tiers", deliveryHandler.ReplaceTiers)
		}
	}
}

func (a *App) Run(ctx context.Context) error {
	errChan := make(chan error, 1)

	go func() {
		a.infra.Logger().Info("Application starting",
			zap.String("host", a.config.Server.Host),
			zap.String("port", a.config.Server.Port),
		)

		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.infra.Logger().Error("Server error", zap.Error(err))
			errChan <- err
		}
	}()

	var serverErr error
	select {
	case err := <-errChan:
		a.infra.Logger().Error("Application failed to start", zap.Error(err))
		serverErr = err
	case <-ctx.Done():
		a.infra.Logger().Info("Application stopped by context")
	}

	if err := a.Shutdown(); err != nil {
		a.infra.Logger().Error("Shutdown error", zap.Error(err))
		if serverErr != nil {
			return errors.Join(serverErr, err)
		}
		return err
	}

	return serverErr
}

func (a *App) Shutdown() error {
	a.infra.Logger().Info("Application shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	errs := make(chan error, 2)

	go func() {
		errs <- a.server.Shutdown(ctx)
	}()

	go func() {
		errs <- a.infra.Shutdown(ctx)
	}()

	err := errors.Join(<-errs, <-errs)
	if err != nil {
		a.infra.Logger().Error("Shutdown failed", zap.Error(err))
		return err
	}

	a.infra.Logger().Info("Application exited successfully")
	return nil
}
