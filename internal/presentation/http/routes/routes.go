package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pharmadist/pharmadist-api/internal/config"
	domainRepo "github.com/pharmadist/pharmadist-api/internal/domain/repository"
	"github.com/pharmadist/pharmadist-api/internal/presentation/http/handler"
	"github.com/pharmadist/pharmadist-api/internal/presentation/http/middleware"
	"github.com/pharmadist/pharmadist-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Product   *handler.ProductHandler
	Customer  *handler.CustomerHandler
	Supplier  *handler.SupplierHandler
	Order     *handler.OrderHandler
	Invoice   *handler.InvoiceHandler
	Dashboard *handler.DashboardHandler
	User      *handler.UserHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
		// Google OAuth routes
		auth.GET("/google", h.Auth.GoogleLogin)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	protected.GET("/dashboard", h.Dashboard.Stats)

	registerProductRoutes(protected, h)
	registerCustomerRoutes(protected, h)
	registerSupplierRoutes(protected, h)
	registerOrderRoutes(protected, h, deps)
	registerInvoiceRoutes(protected, h, deps)
	registerUserRoutes(protected, h)
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	users.Use(middleware.RequireAdmin())
	{
		users.GET("", h.User.List)
		users.PUT("/:id/role", h.User.UpdateRole)
		users.DELETE("/:id", h.User.Delete)
	}
}

func registerProductRoutes(protected *gin.RouterGroup, h *Handlers) {
	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.GET("/low-stock", h.Product.LowStock)
		products.GET("/expiring", h.Product.Expiring)
		products.GET("/:id", h.Product.Get)

		write := products.Group("")
		write.Use(middleware.RequireWriteRole())
		{
			write.POST("", h.Product.Create)
			write.PUT("/:id", h.Product.Update)
			write.DELETE("/:id", h.Product.Delete)
		}
	}
}

func registerCustomerRoutes(protected *gin.RouterGroup, h *Handlers) {
	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.GET("/:id", h.Customer.Get)

		write := customers.Group("")
		write.Use(middleware.RequireWriteRole())
		{
			write.POST("", h.Customer.Create)
			write.PUT("/:id", h.Customer.Update)
			write.DELETE("/:id", h.Customer.Delete)
		}
	}
}

func registerSupplierRoutes(protected *gin.RouterGroup, h *Handlers) {
	suppliers := protected.Group("/suppliers")
	{
		suppliers.GET("", h.Supplier.List)
		suppliers.GET("/:id", h.Supplier.Get)

		write := suppliers.Group("")
		write.Use(middleware.RequireWriteRole())
		{
			write.POST("", h.Supplier.Create)
			write.PUT("/:id", h.Supplier.Update)
			write.DELETE("/:id", h.Supplier.Delete)
		}
	}
}

func registerOrderRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	orders := protected.Group("/orders")
	{
		orders.GET("", h.Order.List)
		orders.GET("/:id", h.Order.Get)

		write := orders.Group("")
		write.Use(middleware.RequireWriteRole())
		{
			// Order creation uses idempotency middleware to prevent duplicates
			write.POST("", middleware.Idempotency(middleware.IdempotencyConfig{
				Repo: deps.IdempotencyRepo,
			}), h.Order.Create)
			write.PUT("/:id/status", h.Order.UpdateStatus)
			write.DELETE("/:id", h.Order.Delete)
		}
	}
}

func registerInvoiceRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	invoices := protected.Group("/invoices")
	{
		invoices.GET("", h.Invoice.List)
		invoices.GET("/:id", h.Invoice.Get)

		write := invoices.Group("")
		write.Use(middleware.RequireWriteRole())
		{
			write.POST("", middleware.Idempotency(middleware.IdempotencyConfig{
				Repo: deps.IdempotencyRepo,
			}), h.Invoice.Create)
			write.PUT("/:id/status", h.Invoice.UpdateStatus)
			write.DELETE("/:id", h.Invoice.Delete)
		}
	}
}
