package routes

import (
	"github.com/mauz21/Heat-box/configs"
	"github.com/mauz21/Heat-box/controllers"
	"github.com/mauz21/Heat-box/middlewares"
	"github.com/mauz21/Heat-box/repository"
	"github.com/mauz21/Heat-box/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	loyaltyRepo := repository.NewLoyaltyRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	catalogSvc := services.NewCatalogService(productRepo)
	orderSvc := services.NewOrderService(db, orderRepo, productRepo)
	reservationSvc := services.NewReservationService(reservationRepo)
	loyaltySvc := services.NewLoyaltyService(loyaltyRepo)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)

	// Controllers
	productCtrl := controllers.NewProductController(catalogSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	reservationCtrl := controllers.NewReservationController(reservationSvc)
	locationCtrl := controllers.NewLocationController(locationRepo)
	loyaltyCtrl := controllers.NewLoyaltyController(loyaltySvc)
	authCtrl := controllers.NewAuthController(authSvc)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)

	// Catalog & locations (public)
	r.GET("/products", productCtrl.List)
	r.GET("/products/:id", productCtrl.Get)
	r.GET("/locations", locationCtrl.List)

	// Orders — guest checkout allowed, identity attached when present
	r.POST("/orders", middlewares.OptionalAuthMiddleware(cfg.JWTSecret), orderCtrl.Create)
	r.GET("/orders/:id", orderCtrl.Detail)

	// Reservations
	r.POST("/reservations", middlewares.OptionalAuthMiddleware(cfg.JWTSecret), reservationCtrl.Create)

	// Loyalty (must be authenticated)
	loyalty := r.Group("/loyalty", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		loyalty.GET("", loyaltyCtrl.Get)
		loyalty.POST("/points", loyaltyCtrl.AddPoints)
	}
}
