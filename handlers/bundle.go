package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct so the route
// registration stays a flat wiring table.
type HandlerBundle struct {
	// Auth endpoints
	RegisterHandler    gin.HandlerFunc
	LoginHandler       gin.HandlerFunc
	GoogleLoginHandler gin.HandlerFunc
	LogoutHandler      gin.HandlerFunc

	// User endpoints
	GetProfileHandler      gin.HandlerFunc
	UpdateProfileHandler   gin.HandlerFunc
	UpdatePasswordHandler  gin.HandlerFunc
	DeleteAccountHandler   gin.HandlerFunc
	AddFavoriteHandler     gin.HandlerFunc
	RemoveFavoriteHandler  gin.HandlerFunc
	ListFavoritesHandler   gin.HandlerFunc

	// Guide endpoints
	CreateGuideHandler     gin.HandlerFunc
	GetGuideHandler        gin.HandlerFunc
	UpdateGuideHandler     gin.HandlerFunc
	SearchGuidesHandler    gin.HandlerFunc
	SetGuideActiveHandler  gin.HandlerFunc

	// Tour package endpoints
	CreateTourHandler   gin.HandlerFunc
	GetTourHandler      gin.HandlerFunc
	ListToursHandler    gin.HandlerFunc
	ListMyToursHandler  gin.HandlerFunc
	UpdateTourHandler   gin.HandlerFunc
	EditTourListHandler gin.HandlerFunc
	DeleteTourHandler   gin.HandlerFunc

	// Booking endpoints
	CreateBookingHandler     gin.HandlerFunc
	GetBookingHandler        gin.HandlerFunc
	ListMyBookingsHandler    gin.HandlerFunc
	TransitionBookingHandler gin.HandlerFunc

	// Payment endpoints
	GetPaymentByBookingHandler gin.HandlerFunc
	ListMyPaymentsHandler      gin.HandlerFunc
	CreatePaymentIntentHandler gin.HandlerFunc

	// Wallet endpoints
	GetWalletHandler          gin.HandlerFunc
	GetLedgerHandler          gin.HandlerFunc
	RequestWithdrawalHandler  gin.HandlerFunc
	ListMyWithdrawalsHandler  gin.HandlerFunc

	// Review endpoints
	SubmitReviewHandler        gin.HandlerFunc
	ListGuideReviewsHandler    gin.HandlerFunc
	ListPackageReviewsHandler  gin.HandlerFunc

	// Chat endpoints
	StartConversationHandler gin.HandlerFunc
	ListConversationsHandler gin.HandlerFunc
	SendMessageHandler       gin.HandlerFunc
	ListMessagesHandler      gin.HandlerFunc

	// Public content
	ListDestinationsHandler gin.HandlerFunc

	// Admin endpoints
	AdminDashboardHandler            gin.HandlerFunc
	AdminListUsersHandler            gin.HandlerFunc
	AdminDeleteUserHandler           gin.HandlerFunc
	AdminListBookingsHandler         gin.HandlerFunc
	AdminEnsurePaymentHandler        gin.HandlerFunc
	AdminListPaymentsHandler         gin.HandlerFunc
	AdminSetPaymentStatusHandler     gin.HandlerFunc
	AdminRevenueHandler              gin.HandlerFunc
	AdminListWithdrawalsHandler      gin.HandlerFunc
	AdminTransitionWithdrawalHandler gin.HandlerFunc
	AdminSetGuideActiveHandler       gin.HandlerFunc
	AdminCreateDestinationHandler    gin.HandlerFunc
	AdminUpdateDestinationHandler    gin.HandlerFunc
	AdminDeleteDestinationHandler    gin.HandlerFunc
}
