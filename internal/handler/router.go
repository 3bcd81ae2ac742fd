package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"sessionbook/internal/handler/api"
	"sessionbook/internal/handler/middleware"
	"sessionbook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *slog.Logger,
	slotHandler *api.SlotHandler,
	requestHandler *api.RequestHandler,
	bookingHandler *api.BookingHandler,
	ledgerHandler *api.LedgerHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler())

	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		addRoutes(apiGroup.Group("/slots"), []route{
			{Method: http.MethodPost, Path: "", Handler: slotHandler.CreateSlot},
			{Method: http.MethodGet, Path: "/:id", Handler: slotHandler.GetSlot},
			{Method: http.MethodGet, Path: "", Handler: slotHandler.ListMySlots},
		})
		addRoutes(apiGroup.Group("/hosts"), []route{
			{Method: http.MethodPut, Path: "/me/base-price", Handler: slotHandler.SetBasePrice},
		})
		addRoutes(apiGroup.Group("/requests"), []route{
			{Method: http.MethodPost, Path: "", Handler: requestHandler.CreateRequest},
			{Method: http.MethodGet, Path: "/:id", Handler: requestHandler.GetRequest},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: requestHandler.CancelRequest},
			{Method: http.MethodPost, Path: "/:id/accept", Handler: requestHandler.AcceptRequest},
		})
		addRoutes(apiGroup.Group("/bookings"), []route{
			{Method: http.MethodPost, Path: "", Handler: bookingHandler.Book},
			{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetBooking},
			{Method: http.MethodGet, Path: "/:id/terms", Handler: bookingHandler.GetBookingTerms},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: bookingHandler.Cancel},
			{Method: http.MethodPost, Path: "/:id/attest", Handler: bookingHandler.Attest},
			{Method: http.MethodPost, Path: "/:id/challenge", Handler: bookingHandler.Challenge},
			{Method: http.MethodPost, Path: "/:id/finalize", Handler: bookingHandler.Finalize},
			{Method: http.MethodPost, Path: "/:id/finalize-dispute", Handler: bookingHandler.FinalizeDisputeByTimeout},
			{Method: http.MethodPost, Path: "/:id/claim-unattested", Handler: bookingHandler.ClaimIfUnattested},
		})
		addRoutes(apiGroup.Group("/ledger"), []route{
			{Method: http.MethodPost, Path: "/withdraw", Handler: ledgerHandler.Withdraw},
			{Method: http.MethodGet, Path: "/owed/:account", Handler: ledgerHandler.Owed},
			{Method: http.MethodGet, Path: "", Handler: ledgerHandler.Summary},
		})
		addRoutes(apiGroup.Group("/admin"), []route{
			{Method: http.MethodPut, Path: "/params/:name", Handler: adminHandler.SetParam},
			{Method: http.MethodPost, Path: "/ownership/transfer", Handler: adminHandler.TransferOwnership},
			{Method: http.MethodPost, Path: "/ownership/accept", Handler: adminHandler.AcceptOwnership},
			{Method: http.MethodPost, Path: "/sweep", Handler: adminHandler.SweepTokenExcess},
			{Method: http.MethodGet, Path: "/journal", Handler: adminHandler.JournalTail},
		})
	}
}

func addRoutes(group *gin.RouterGroup, routes []route) {
	for _, r := range routes {
		group.Handle(r.Method, r.Path, r.Handler)
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
