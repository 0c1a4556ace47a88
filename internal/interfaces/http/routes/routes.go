// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-bff/internal/config"
	"github.com/your-org/storefront-bff/internal/domain/cart"
	"github.com/your-org/storefront-bff/internal/domain/catalog"
	"github.com/your-org/storefront-bff/internal/domain/checkout"
	"github.com/your-org/storefront-bff/internal/domain/customer"
	"github.com/your-org/storefront-bff/internal/domain/deals"
	"github.com/your-org/storefront-bff/internal/domain/order"
	"github.com/your-org/storefront-bff/internal/domain/session"
	"github.com/your-org/storefront-bff/internal/domain/wishlist"
	"github.com/your-org/storefront-bff/internal/erp"
	"github.com/your-org/storefront-bff/internal/infrastructure/cache"
	"github.com/your-org/storefront-bff/internal/interfaces/http/handlers"
	"github.com/your-org/storefront-bff/internal/interfaces/http/middleware"
)

// SetupRoutes wires every domain service to its handlers and routes.
// All services share the single ERP client; the session manager guards
// everything user-scoped.
func SetupRoutes(rg *gin.RouterGroup, erpClient *erp.Client, cacheClient *cache.Client, cfg *config.Config, log *logrus.Logger) {
	sessions := session.NewManager(erpClient, cacheClient, cfg, log)

	catalogService := catalog.NewService(erpClient, cacheClient, cfg, log)
	dealsService := deals.NewService(erpClient, cfg, log)
	cartService := cart.NewService(erpClient, cfg, log)
	wishlistService := wishlist.NewService(erpClient, cfg, log)
	checkoutService := checkout.NewService(erpClient, cartService, cfg, log)
	orderService := order.NewService(erpClient, cfg, log)
	customerService := customer.NewService(erpClient, log)

	sessionHandler := handlers.NewSessionHandler(sessions)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	dealsHandler := handlers.NewDealsHandler(dealsService)
	cartHandler := handlers.NewCartHandler(cartService)
	wishlistHandler := handlers.NewWishlistHandler(wishlistService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, cartService)
	orderHandler := handlers.NewOrderHandler(orderService)
	customerHandler := handlers.NewCustomerHandler(customerService)

	// Auth
	auth := rg.Group("/auth")
	{
		auth.POST("/login", sessionHandler.Login)
		auth.POST("/logout", sessionHandler.Logout)

		protected := auth.Group("")
		protected.Use(middleware.RequireSession(sessions))
		{
			protected.GET("/me", sessionHandler.Me)
		}
	}

	// Catalog browsing is public, but a logged-in caller's session keys
	// their feed state so personalized feeds survive across devices
	cat := rg.Group("/catalog")
	cat.Use(middleware.OptionalSession(sessions))
	{
		cat.GET("/new-arrivals", catalogHandler.NewArrivals)
		cat.POST("/new-arrivals/more", catalogHandler.NewArrivalsMore)
		cat.GET("/for-you", catalogHandler.ForYou)
		cat.POST("/for-you/more", catalogHandler.ForYouMore)
		cat.GET("/search", catalogHandler.Search)
		cat.GET("/items/:code", catalogHandler.GetItem)
		cat.GET("/items/:code/reviews", catalogHandler.GetReviews)
		cat.GET("/categories", catalogHandler.GetCategories)
		cat.GET("/categories/:id/items", catalogHandler.Listing)
		cat.POST("/categories/:id/items/more", catalogHandler.ListingMore)
		cat.GET("/bundles", catalogHandler.GetBundles)
	}

	rg.GET("/deals", dealsHandler.GetDeals)
	rg.GET("/customers/top", customerHandler.TopCustomers)

	// Everything below requires a session
	cartGroup := rg.Group("/cart")
	cartGroup.Use(middleware.RequireSession(sessions))
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.DELETE("", cartHandler.ClearCart)
		cartGroup.POST("/items", cartHandler.AddToCart)
		cartGroup.PUT("/items/:code", cartHandler.UpdateCartItem)
		cartGroup.DELETE("/items/:code", cartHandler.RemoveCartItem)
	}

	wishlistGroup := rg.Group("/wishlist")
	wishlistGroup.Use(middleware.RequireSession(sessions))
	{
		wishlistGroup.GET("", wishlistHandler.GetWishlist)
		wishlistGroup.POST("/items", wishlistHandler.AddToWishlist)
		wishlistGroup.DELETE("/items/:code", wishlistHandler.RemoveFromWishlist)
	}

	checkoutGroup := rg.Group("/checkout")
	checkoutGroup.Use(middleware.RequireSession(sessions))
	{
		checkoutGroup.POST("/validate", checkoutHandler.ValidateStock)
		checkoutGroup.POST("/order", checkoutHandler.PlaceOrder)
	}

	ordersGroup := rg.Group("/orders")
	ordersGroup.Use(middleware.RequireSession(sessions))
	{
		ordersGroup.GET("", orderHandler.ListOrders)
		ordersGroup.GET("/:id", orderHandler.GetOrder)
	}

	invoicesGroup := rg.Group("/invoices")
	invoicesGroup.Use(middleware.RequireSession(sessions))
	{
		invoicesGroup.GET("", orderHandler.ListInvoices)
		invoicesGroup.GET("/:id", orderHandler.GetInvoice)
	}

	customersGroup := rg.Group("/customers")
	customersGroup.Use(middleware.RequireSession(sessions))
	{
		customersGroup.GET("/profile", customerHandler.GetProfile)
		customersGroup.PUT("/profile", customerHandler.UpdateProfile)
	}
}
