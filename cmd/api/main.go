package main

import (
	"context"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/text/language"

	_ "github.com/silvercommerce/tax-admin/api/swagger" // swagger docs
	"github.com/silvercommerce/tax-admin/internal/database"
	"github.com/silvercommerce/tax-admin/internal/handler"
	"github.com/silvercommerce/tax-admin/internal/pricing"
	"github.com/silvercommerce/tax-admin/internal/repository"
	"github.com/silvercommerce/tax-admin/internal/service"
	"github.com/silvercommerce/tax-admin/internal/websocket"
	"github.com/silvercommerce/tax-admin/pkg/config"
	"github.com/silvercommerce/tax-admin/pkg/logger"
)

// @title           Tax Admin API
// @version         1.0
// @description     Multi-tenant storefront tax configuration and pricing API.
// @host            localhost:8080
// @BasePath        /api
func main() {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Info().Msg("no configs/.env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	logger.Setup(cfg.LogLevel)

	db, err := database.NewConnection(cfg.Database.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	log.Info().Msg("connected to PostgreSQL")

	// Set up WebSocket Hub
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Set up dependencies (Repository -> Service -> Handler)
	txm := repository.NewTransactionManager(db)
	siteRepo := repository.NewSiteRepository(db)
	zoneRepo := repository.NewZoneRepository(db)
	rateRepo := repository.NewTaxRateRepository(db)
	categoryRepo := repository.NewTaxCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)

	rateService := service.NewTaxRateService(rateRepo, txm, wsHub)
	categoryService := service.NewTaxCategoryService(categoryRepo, rateRepo, txm, wsHub)
	zoneService := service.NewZoneService(zoneRepo, txm, wsHub)

	pricingCfg, err := cfg.PricingConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid pricing configuration")
	}
	calc := pricing.NewCalculator(
		pricingCfg,
		pricing.StaticLocaleProvider{Default: cfg.Site.DefaultLocale},
		pricing.XTextFormatter{Fallback: language.English},
		pricing.NewCatalogTranslator(cfg.Site.DefaultLocale, pricing.NewDefaultCatalog()),
	)
	pricingService := service.NewPricingService(calc, productRepo, rateRepo, categoryRepo)
	productService := service.NewProductService(productRepo, pricingService)

	// Default tenant plus its stock tax configuration
	ctx := context.Background()
	site, err := siteRepo.EnsureDefault(ctx, cfg.Site.Name, cfg.Site.DefaultLocale)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to ensure default site")
	}
	if err := categoryService.SeedDefaults(ctx, site.ID); err != nil {
		log.Fatal().Err(err).Msg("failed to seed default tax configuration")
	}

	// Initialize Handlers
	rateHandler := handler.NewTaxRateHandler(rateService, site.ID)
	categoryHandler := handler.NewTaxCategoryHandler(categoryService, site.ID)
	zoneHandler := handler.NewZoneHandler(zoneService, site.ID)
	productHandler := handler.NewProductHandler(productService, site.ID)
	pricingHandler := handler.NewPricingHandler(pricingService, site.ID)

	// Set up Gin Router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.Server.CORSOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Accept", "X-Site-ID"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// WebSocket endpoint for tax-config-change notifications
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c)
	})

	// Register API Routes
	rateHandler.RegisterRoutes(router.Group(""))
	categoryHandler.RegisterRoutes(router.Group(""))
	zoneHandler.RegisterRoutes(router.Group(""))
	productHandler.RegisterRoutes(router.Group(""))
	pricingHandler.RegisterRoutes(router.Group(""))

	log.Info().Str("port", cfg.Server.Port).Msg("server listening")
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}
