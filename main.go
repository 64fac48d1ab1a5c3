package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tundavala/config"
	"tundavala/cron"
	"tundavala/database"
	bookingRepoPkg "tundavala/database/repository/booking"
	chatRepoPkg "tundavala/database/repository/chat"
	destinationRepoPkg "tundavala/database/repository/destination"
	favoriteRepoPkg "tundavala/database/repository/favorite"
	guideRepoPkg "tundavala/database/repository/guide"
	paymentRepoPkg "tundavala/database/repository/payment"
	reviewRepoPkg "tundavala/database/repository/review"
	tourRepoPkg "tundavala/database/repository/tour"
	userRepoPkg "tundavala/database/repository/user"
	walletRepoPkg "tundavala/database/repository/wallet"
	"tundavala/handlers"
	"tundavala/routes"
	"tundavala/services/admin"
	"tundavala/services/booking"
	"tundavala/services/chat"
	"tundavala/services/guide"
	"tundavala/services/payment"
	"tundavala/services/review"
	"tundavala/services/tour"
	"tundavala/services/user"
	"tundavala/services/wallet"
	"tundavala/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	guideRepo := guideRepoPkg.NewMongoGuideRepo()
	tourRepo := tourRepoPkg.NewMongoTourRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	paymentRepo := paymentRepoPkg.NewMongoPaymentRepo()
	walletRepo := walletRepoPkg.NewMongoWalletRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()
	chatRepo := chatRepoPkg.NewMongoChatRepo()
	favoriteRepo := favoriteRepoPkg.NewMongoFavoriteRepo()
	destinationRepo := destinationRepoPkg.NewMongoDestinationRepo()

	// task queue client for the booking worker.
	queueClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPass,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer queueClient.Close()

	// services.
	userService := &user.DefaultUserService{
		Repo:      userRepo,
		Guides:    guideRepo,
		Favorites: favoriteRepo,
		Verifier:  &user.FirebaseTokenVerifier{},
	}
	guideService := &guide.DefaultGuideService{
		Repo:    guideRepo,
		Users:   userRepo,
		Wallets: walletRepo,
		Cache:   utils.CacheClient,
	}
	tourService := &tour.DefaultTourService{
		Repo:   tourRepo,
		Guides: guideRepo,
	}
	paymentService := &payment.DefaultPaymentService{
		Repo:       paymentRepo,
		Wallets:    walletRepo,
		FeePercent: config.AppConfig.PlatformFeePercent,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:            bookingRepo,
		Tours:           tourRepo,
		Guides:          guideRepo,
		Users:           userRepo,
		PaymentSvc:      paymentService,
		Queue:           queueClient,
		PendingTTLHours: config.AppConfig.BookingPendingTTLHours,
	}
	walletService := &wallet.DefaultWalletService{
		Repo:  walletRepo,
		Users: userRepo,
	}
	reviewService := &review.DefaultReviewService{
		Repo:     reviewRepo,
		Bookings: bookingRepo,
		Guides:   guideRepo,
		Tours:    tourRepo,
		Users:    userRepo,
	}
	chatService := &chat.DefaultChatService{
		Repo:  chatRepo,
		Users: userRepo,
	}
	adminService := &admin.DefaultAdminService{
		Users:        userRepo,
		Guides:       guideRepo,
		Bookings:     bookingRepo,
		Destinations: destinationRepo,
		Payments:     paymentService,
	}

	// handlers.
	authHandler := &handlers.AuthHandler{UserService: userService}
	userHandler := &handlers.UserHandler{UserService: userService}
	guideHandler := &handlers.GuideHandler{GuideService: guideService}
	tourHandler := &handlers.TourHandler{TourService: tourService}
	bookingHandler := &handlers.BookingHandler{BookingService: bookingService}
	paymentHandler := &handlers.PaymentHandler{PaymentService: paymentService}
	walletHandler := &handlers.WalletHandler{WalletService: walletService}
	reviewHandler := &handlers.ReviewHandler{ReviewService: reviewService}
	chatHandler := &handlers.ChatHandler{ChatService: chatService}
	adminHandler := &handlers.AdminHandler{
		AdminService:   adminService,
		UserService:    userService,
		BookingService: bookingService,
		GuideService:   guideService,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Auth endpoints.
		RegisterHandler:    authHandler.RegisterHandler,
		LoginHandler:       authHandler.LoginHandler,
		GoogleLoginHandler: authHandler.GoogleLoginHandler,
		LogoutHandler:      authHandler.LogoutHandler,

		// User endpoints.
		GetProfileHandler:     userHandler.GetProfileHandler,
		UpdateProfileHandler:  userHandler.UpdateProfileHandler,
		UpdatePasswordHandler: userHandler.UpdatePasswordHandler,
		DeleteAccountHandler:  userHandler.DeleteAccountHandler,
		AddFavoriteHandler:    userHandler.AddFavoriteHandler,
		RemoveFavoriteHandler: userHandler.RemoveFavoriteHandler,
		ListFavoritesHandler:  userHandler.ListFavoritesHandler,

		// Guide endpoints.
		CreateGuideHandler:    guideHandler.CreateProfileHandler,
		GetGuideHandler:       guideHandler.GetProfileHandler,
		UpdateGuideHandler:    guideHandler.UpdateProfileHandler,
		SearchGuidesHandler:   guideHandler.SearchHandler,
		SetGuideActiveHandler: guideHandler.SetActiveHandler,

		// Tour package endpoints.
		CreateTourHandler:   tourHandler.CreateHandler,
		GetTourHandler:      tourHandler.GetHandler,
		ListToursHandler:    tourHandler.ListHandler,
		ListMyToursHandler:  tourHandler.ListMineHandler,
		UpdateTourHandler:   tourHandler.UpdateHandler,
		EditTourListHandler: tourHandler.EditListHandler,
		DeleteTourHandler:   tourHandler.DeleteHandler,

		// Booking endpoints.
		CreateBookingHandler:     bookingHandler.CreateHandler,
		GetBookingHandler:        bookingHandler.GetHandler,
		ListMyBookingsHandler:    bookingHandler.ListMineHandler,
		TransitionBookingHandler: bookingHandler.TransitionHandler,

		// Payment endpoints.
		GetPaymentByBookingHandler: paymentHandler.GetByBookingHandler,
		ListMyPaymentsHandler:      paymentHandler.ListMineHandler,
		CreatePaymentIntentHandler: paymentHandler.CreateIntentHandler,

		// Wallet endpoints.
		GetWalletHandler:         walletHandler.GetWalletHandler,
		GetLedgerHandler:         walletHandler.GetLedgerHandler,
		RequestWithdrawalHandler: walletHandler.RequestWithdrawalHandler,
		ListMyWithdrawalsHandler: walletHandler.ListWithdrawalsHandler,

		// Review endpoints.
		SubmitReviewHandler:       reviewHandler.SubmitHandler,
		ListGuideReviewsHandler:   reviewHandler.ListByGuideHandler,
		ListPackageReviewsHandler: reviewHandler.ListByPackageHandler,

		// Chat endpoints.
		StartConversationHandler: chatHandler.StartConversationHandler,
		ListConversationsHandler: chatHandler.ListConversationsHandler,
		SendMessageHandler:       chatHandler.SendMessageHandler,
		ListMessagesHandler:      chatHandler.ListMessagesHandler,

		// Public content.
		ListDestinationsHandler: adminHandler.ListDestinationsHandler,

		// Admin endpoints.
		AdminDashboardHandler:            adminHandler.DashboardHandler,
		AdminListUsersHandler:            adminHandler.ListUsersHandler,
		AdminDeleteUserHandler:           adminHandler.DeleteUserHandler,
		AdminListBookingsHandler:         adminHandler.ListBookingsHandler,
		AdminEnsurePaymentHandler:        adminHandler.EnsurePaymentHandler,
		AdminListPaymentsHandler:         paymentHandler.ListAllHandler,
		AdminSetPaymentStatusHandler:     paymentHandler.SetStatusHandler,
		AdminRevenueHandler:              paymentHandler.RevenueHandler,
		AdminListWithdrawalsHandler:      walletHandler.ListAllWithdrawalsHandler,
		AdminTransitionWithdrawalHandler: walletHandler.TransitionWithdrawalHandler,
		AdminSetGuideActiveHandler:       adminHandler.SetGuideActiveHandler,
		AdminCreateDestinationHandler:    adminHandler.CreateDestinationHandler,
		AdminUpdateDestinationHandler:    adminHandler.UpdateDestinationHandler,
		AdminDeleteDestinationHandler:    adminHandler.DeleteDestinationHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle, userRepo)

	// Start the booking worker and sweep anything that expired while down.
	cron.InitBookingWorker(bookingService)
	cron.RunStartupSweep(bookingService)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
