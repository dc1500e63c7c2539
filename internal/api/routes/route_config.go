package routes

import (
	"FoodBridge-Backend/internal/api/handlers"
	"FoodBridge-Backend/internal/middleware"
	"FoodBridge-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	AuthHandler     handlers.AuthHandler
	ProviderHandler handlers.ProviderHandler
	ReceiverHandler handlers.ReceiverHandler
	ListingHandler  handlers.ListingHandler
	ClaimHandler    handlers.ClaimHandler
	ReportHandler   handlers.ReportHandler
	IngestHandler   handlers.IngestHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Providers()
	c.Receivers()
	c.FoodListings()
	c.Claims()
	c.Reports()
	c.Ingest()
	c.GuestRoute()
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/v1/auth")
	auth.Post("/login", c.AuthHandler.Login)
}

func (c *Config) Providers() {
	providers := c.App.Group("/api/v1/providers")
	providers.Get("/contacts", c.ProviderHandler.GetContacts)
	providers.Get("", c.ProviderHandler.GetProviders)
	providers.Get("/:id", c.ProviderHandler.GetProviderDetails)

	providers.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.ProviderHandler.CreateProvider)
	providers.Put("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.ProviderHandler.UpdateProvider)
	providers.Delete("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.ProviderHandler.DeleteProvider)
}

func (c *Config) Receivers() {
	receivers := c.App.Group("/api/v1/receivers")
	receivers.Get("", c.ReceiverHandler.GetReceivers)
	receivers.Get("/:id", c.ReceiverHandler.GetReceiverDetails)

	receivers.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.ReceiverHandler.CreateReceiver)
	receivers.Put("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.ReceiverHandler.UpdateReceiver)
	receivers.Delete("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.ReceiverHandler.DeleteReceiver)
}

func (c *Config) FoodListings() {
	listings := c.App.Group("/api/v1/food-listings")
	listings.Get("", c.ListingHandler.BrowseListings)
	listings.Get("/:id", c.ListingHandler.GetListingDetails)

	listings.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.ListingHandler.CreateListing)
	listings.Put("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.ListingHandler.UpdateListing)
	listings.Delete("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.ListingHandler.DeleteListing)
}

func (c *Config) Claims() {
	claims := c.App.Group("/api/v1/claims")
	claims.Get("", c.ClaimHandler.GetClaims)
	claims.Get("/:id", c.ClaimHandler.GetClaimDetails)

	claims.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.ClaimHandler.CreateClaim)
	claims.Patch("/:id/status", c.Middleware.AuthMiddleware(c.JWTService), c.ClaimHandler.UpdateClaimStatus)
	claims.Delete("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.ClaimHandler.DeleteClaim)
}

func (c *Config) Reports() {
	reports := c.App.Group("/api/v1/reports")
	reports.Get("/:id", c.ReportHandler.GetReport)
	reports.Get("/:id/export", c.ReportHandler.ExportReport)
}

func (c *Config) Ingest() {
	ingest := c.App.Group("/api/v1/ingest", c.Middleware.AuthMiddleware(c.JWTService))
	ingest.Post("/:table", c.IngestHandler.IngestCSV)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
