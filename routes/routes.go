package routes

import (
	"backend/configs"
	"backend/controllers"
	"backend/middlewares"
	"backend/repository"
	"backend/services"
	"backend/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	itemRepo := repository.NewItemRepository(db)
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	itemSvc := services.NewItemService(itemRepo)
	restSvc := services.NewRestaurantService(restRepo)
	cartSvc := services.NewCartService(db, cartRepo, itemRepo, userRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, userRepo, restRepo)

	// Admin live order feed
	hub := ws.NewOrderHub()
	go hub.Run()
	orderSvc.Events = hub

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	itemCtrl := controllers.NewItemController(itemSvc)
	restCtrl := controllers.NewRestaurantController(restSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
	}

	// Public menu and profile
	r.GET("/items", itemCtrl.List)
	r.GET("/restaurant", restCtrl.Get)

	// Customer (any logged-in user)
	u := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		u.GET("/cart", cartCtrl.Get)
		u.PUT("/cart", cartCtrl.Replace)
		u.DELETE("/cart", cartCtrl.Clear)

		u.GET("/orders/available-slots", orderCtrl.AvailableSlots)
		u.POST("/orders/place-from-cart", orderCtrl.PlaceFromCart)
		u.GET("/orders", orderCtrl.ListForMe)
		u.GET("/orders/:id", orderCtrl.Detail)
		u.POST("/orders/:id/cancel", orderCtrl.Cancel)
	}

	// Admin
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.GET("/items", itemCtrl.ListAll)
		admin.POST("/items", itemCtrl.Create)
		admin.PATCH("/items/:id", itemCtrl.Update)
		admin.DELETE("/items/:id", itemCtrl.Delete)

		admin.GET("/users", authCtrl.ListUsers)

		admin.PUT("/restaurant", restCtrl.Update)

		admin.GET("/orders", orderCtrl.ListAll)
		admin.PUT("/orders/:id/delivered", orderCtrl.MarkDelivered)
		admin.PATCH("/orders/:id/status", orderCtrl.SetStatus)
	}

	// Websocket order feed (admin check inside the handler)
	wsGroup := r.Group("/ws", middlewares.WSAuthMiddleware(cfg.JWTSecret))
	{
		wsGroup.GET("/orders", hub.HandleWebSocket)
	}
}
