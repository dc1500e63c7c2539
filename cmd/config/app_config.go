package config

import (
	"FoodBridge-Backend/internal/api/handlers"
	"FoodBridge-Backend/internal/api/routes"
	"FoodBridge-Backend/internal/middleware"
	"FoodBridge-Backend/internal/utils"
	"FoodBridge-Backend/internal/utils/storage"
	"FoodBridge-Backend/pkg/claim"
	"FoodBridge-Backend/pkg/ingest"
	"FoodBridge-Backend/pkg/jwt"
	"FoodBridge-Backend/pkg/listing"
	"FoodBridge-Backend/pkg/provider"
	"FoodBridge-Backend/pkg/receiver"
	"FoodBridge-Backend/pkg/report"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	providerRepository := provider.NewProviderRepository(db)
	receiverRepository := receiver.NewReceiverRepository(db)
	listingRepository := listing.NewListingRepository(db)
	claimRepository := claim.NewClaimRepository(db)
	reportRepository := report.NewReportRepository(db)
	ingestRepository := ingest.NewIngestRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	providerService := provider.NewProviderService(providerRepository)
	receiverService := receiver.NewReceiverService(receiverRepository)
	listingService := listing.NewListingService(listingRepository, providerRepository)
	claimService := claim.NewClaimService(claimRepository, listingRepository, receiverRepository)
	reportService := report.NewReportService(reportRepository)
	ingestService := ingest.NewIngestService(ingestRepository)

	// Handler
	authHandler := handlers.NewAuthHandler(jwtService, validator)
	providerHandler := handlers.NewProviderHandler(providerService, validator)
	receiverHandler := handlers.NewReceiverHandler(receiverService, validator)
	listingHandler := handlers.NewListingHandler(listingService, validator)
	claimHandler := handlers.NewClaimHandler(claimService, validator)
	reportHandler := handlers.NewReportHandler(reportService, s3)
	ingestHandler := handlers.NewIngestHandler(ingestService)

	// routes
	routesConfig := routes.Config{
		App:             app,
		AuthHandler:     authHandler,
		ProviderHandler: providerHandler,
		ReceiverHandler: receiverHandler,
		ListingHandler:  listingHandler,
		ClaimHandler:    claimHandler,
		ReportHandler:   reportHandler,
		IngestHandler:   ingestHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
