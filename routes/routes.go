package routes

import (
	"net/http"
	"time"

	userRepo "tundavala/database/repository/user"
	"tundavala/handlers"
	"tundavala/middleware"
	"tundavala/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration and login endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle, users userRepo.UserRepository) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.LoginHandler)
		api.POST("/google", hb.GoogleLoginHandler)

		api.Use(middleware.JWTAuthMiddleware(users))
		api.POST("/logout", hb.LogoutHandler)
	}
}

// RegisterUserRoutes registers profile and favorites endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle, users userRepo.UserRepository) {
	api := r.Group("/api/users")
	{
		api.Use(middleware.JWTAuthMiddleware(users))
		api.GET("/me", hb.GetProfileHandler)
		api.PUT("/me", hb.UpdateProfileHandler)
		api.PUT("/me/password", hb.UpdatePasswordHandler)
		api.DELETE("/me", hb.DeleteAccountHandler)
	}

	favorites := r.Group("/api/favorites")
	{
		favorites.Use(middleware.JWTAuthMiddleware(users), middleware.RequireRole(models.RoleTourist))
		favorites.GET("", hb.ListFavoritesHandler)
		favorites.POST("/:guideId", hb.AddFavoriteHandler)
		favorites.DELETE("/:guideId", hb.RemoveFavoriteHandler)
	}
}

// RegisterGuideRoutes registers the public directory and guide self-service.
func RegisterGuideRoutes(r *gin.Engine, hb *handlers.HandlerBundle, users userRepo.UserRepository) {
	api := r.Group("/api/guides")
	{
		// Public directory
		api.GET("", hb.SearchGuidesHandler)
		api.GET("/:id", hb.GetGuideHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(users))
		protected.POST("", hb.CreateGuideHandler)
		protected.PUT("/me", middleware.RequireRole(models.RoleGuide), hb.UpdateGuideHandler)
		protected.PUT("/me/active", middleware.RequireRole(models.RoleGuide), hb.SetGuideActiveHandler)
	}
}

// RegisterTourRoutes registers tour package endpoints.
func RegisterTourRoutes(r *gin.Engine, hb *handlers.HandlerBundle, users userRepo.UserRepository) {
	api := r.Group("/api/tours")
	{
		// Public catalog
		api.GET("", hb.ListToursHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(users))
		protected.GET("/mine", middleware.RequireRole(models.RoleGuide), hb.ListMyToursHandler)
		protected.POST("", middleware.RequireRole(models.RoleGuide), hb.CreateTourHandler)
		protected.PUT("/:id", hb.UpdateTourHandler)
		protected.PATCH("/:id/lists", hb.EditTourListHandler)
		protected.DELETE("/:id", hb.DeleteTourHandler)

		api.GET("/:id", hb.GetTourHandler)
	}
}

// RegisterBookingRoutes registers the reservation lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle, users userRepo.UserRepository) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware(users))
		api.POST("", middleware.RequireRole(models.RoleTourist), hb.CreateBookingHandler)
		api.GET("", hb.ListMyBookingsHandler)
		api.GET("/:id", hb.GetBookingHandler)
		api.PUT("/:id/status", hb.TransitionBookingHandler)
	}
}

// RegisterPaymentRoutes registers payment and checkout endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle, users userRepo.UserRepository) {
	api := r.Group("/api/payments")
	{
		api.Use(middleware.JWTAuthMiddleware(users))
		api.GET("/booking/:bookingId", hb.GetPaymentByBookingHandler)
		api.GET("/mine", middleware.RequireRole(models.RoleGuide), hb.ListMyPaymentsHandler)
		api.POST("/:id/intent", middleware.RequireRole(models.RoleTourist), hb.CreatePaymentIntentHandler)
	}
}

// RegisterWalletRoutes registers guide wallet endpoints.
func RegisterWalletRoutes(r *gin.Engine, hb *handlers.HandlerBundle, users userRepo.UserRepository) {
	api := r.Group("/api/wallet")
	{
		api.Use(middleware.JWTAuthMiddleware(users), middleware.RequireRole(models.RoleGuide))
		api.GET("", hb.GetWalletHandler)
		api.GET("/transactions", hb.GetLedgerHandler)
		api.GET("/withdrawals", hb.ListMyWithdrawalsHandler)
		api.POST("/withdrawals", hb.RequestWithdrawalHandler)
	}
}

// RegisterReviewRoutes registers review endpoints.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle, users userRepo.UserRepository) {
	api := r.Group("/api/reviews")
	{
		// Public listings
		api.GET("/guide/:guideId", hb.ListGuideReviewsHandler)
		api.GET("/package/:packageId", hb.ListPackageReviewsHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(users), middleware.RequireRole(models.RoleTourist))
		protected.POST("", hb.SubmitReviewHandler)
	}
}

// RegisterChatRoutes registers conversation endpoints.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle, users userRepo.UserRepository) {
	api := r.Group("/api/conversations")
	{
		api.Use(middleware.JWTAuthMiddleware(users))
		api.POST("", hb.StartConversationHandler)
		api.GET("", hb.ListConversationsHandler)
		api.POST("/:id/messages", hb.SendMessageHandler)
		api.GET("/:id/messages", hb.ListMessagesHandler)
	}
}

// RegisterContentRoutes registers public curated content.
func RegisterContentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/destinations", hb.ListDestinationsHandler)
}

// RegisterAdminRoutes registers the back office.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle, users userRepo.UserRepository) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.JWTAuthMiddleware(users), middleware.AdminAuthMiddleware())
		api.GET("/dashboard", hb.AdminDashboardHandler)
		api.GET("/users", hb.AdminListUsersHandler)
		api.DELETE("/users/:id", hb.AdminDeleteUserHandler)
		api.GET("/bookings", hb.AdminListBookingsHandler)
		api.POST("/bookings/:id/payment", hb.AdminEnsurePaymentHandler)
		api.GET("/payments", hb.AdminListPaymentsHandler)
		api.PUT("/payments/:id/status", hb.AdminSetPaymentStatusHandler)
		api.GET("/payments/revenue", hb.AdminRevenueHandler)
		api.GET("/withdrawals", hb.AdminListWithdrawalsHandler)
		api.PUT("/withdrawals/:id/status", hb.AdminTransitionWithdrawalHandler)
		api.PUT("/guides/:id/active", hb.AdminSetGuideActiveHandler)
		api.POST("/destinations", hb.AdminCreateDestinationHandler)
		api.PUT("/destinations/:id", hb.AdminUpdateDestinationHandler)
		api.DELETE("/destinations/:id", hb.AdminDeleteDestinationHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Tundavala"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, users userRepo.UserRepository) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb, users)
	RegisterUserRoutes(r, hb, users)
	RegisterGuideRoutes(r, hb, users)
	RegisterTourRoutes(r, hb, users)
	RegisterBookingRoutes(r, hb, users)
	RegisterPaymentRoutes(r, hb, users)
	RegisterWalletRoutes(r, hb, users)
	RegisterReviewRoutes(r, hb, users)
	RegisterChatRoutes(r, hb, users)
	RegisterContentRoutes(r, hb)
	RegisterAdminRoutes(r, hb, users)
}
