// Package server assembles the gin engine and its routes.
package server

import (
	"log/slog"

	"hostel-management-backend/internal/config"
	"hostel-management-backend/internal/handler"
	"hostel-management-backend/internal/middleware"
	"hostel-management-backend/internal/realtime"
	"hostel-management-backend/internal/service"
	"hostel-management-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

const serviceName = "hostel-management-backend"

// Deps is everything the routes are built from
type Deps struct {
	Config   *config.Config
	Services *service.Services
	Hub      *realtime.Hub
	Logger   *slog.Logger
	Now      service.Clock
}

// NewRouter builds the engine with middleware and every route registered
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(d.Logger))
	r.Use(middleware.CORS(d.Config))

	svc := d.Services
	authHandler := handler.NewAuthHandler(svc.Auth, d.Config.Server.GinMode == gin.ReleaseMode)
	hostelHandler := handler.NewHostelHandler(svc.Hostels)
	roomHandler := handler.NewRoomHandler(svc.Rooms)
	tenantHandler := handler.NewTenantHandler(svc.Tenants)
	financeHandler := handler.NewFinanceHandler(svc.Expenses, svc.Invoices, svc.Reports)
	reportHandler := handler.NewReportHandler(svc.Dashboard, svc.Reports, d.Now)
	activityHandler := handler.NewActivityHandler(svc.Activities, d.Hub)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": serviceName,
		})
	})

	r.GET("/ws/activity", activityHandler.Stream)

	api := r.Group("/api")

	// Auth routes (public)
	auth := api.Group("/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/me", middleware.AuthMiddleware(), authHandler.Me)
	}

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/dashboard", reportHandler.GetDashboard)
	protected.GET("/activities", activityHandler.GetRecent)

	hostels := protected.Group("/hostels")
	{
		hostels.GET("", hostelHandler.GetAllHostels)
		hostels.GET("/:id", hostelHandler.GetHostel)
		hostels.POST("", hostelHandler.CreateHostel)
		hostels.PUT("/:id", hostelHandler.UpdateHostel)
		hostels.DELETE("/:id", middleware.RequireOwner(), hostelHandler.DeleteHostel)
	}

	rooms := protected.Group("/rooms")
	{
		rooms.GET("", roomHandler.GetAllRooms)
		rooms.GET("/:id", roomHandler.GetRoom)
		rooms.POST("", roomHandler.CreateRoom)
		rooms.PUT("/:id", roomHandler.UpdateRoom)
		rooms.DELETE("/:id", roomHandler.DeleteRoom)
	}

	tenants := protected.Group("/tenants")
	{
		tenants.GET("", tenantHandler.GetAllTenants)
		tenants.GET("/:id", tenantHandler.GetTenant)
		tenants.POST("", tenantHandler.CreateTenant)
		tenants.PUT("/:id", tenantHandler.UpdateTenant)
		tenants.POST("/:id/checkout", tenantHandler.CheckoutTenant)
		tenants.DELETE("/:id", tenantHandler.DeleteTenant)
	}

	finances := protected.Group("/finances")
	{
		finances.GET("/summary", financeHandler.GetSummary)

		finances.GET("/expenses", financeHandler.GetAllExpenses)
		finances.GET("/expenses/:id", financeHandler.GetExpense)
		finances.POST("/expenses", financeHandler.CreateExpense)
		finances.PUT("/expenses/:id", financeHandler.UpdateExpense)
		finances.PATCH("/expenses/:id/status", middleware.RequireOwner(), financeHandler.SetExpenseStatus)
		finances.DELETE("/expenses/:id", financeHandler.DeleteExpense)

		finances.GET("/invoices", financeHandler.GetAllInvoices)
		finances.GET("/invoices/:id", financeHandler.GetInvoice)
		finances.POST("/invoices", financeHandler.CreateInvoice)
		finances.POST("/invoices/generate", middleware.RequireOwner(), financeHandler.GenerateInvoices)
		finances.PUT("/invoices/:id", financeHandler.UpdateInvoice)
		finances.POST("/invoices/:id/pay", financeHandler.PayInvoice)
		finances.DELETE("/invoices/:id", financeHandler.DeleteInvoice)
	}

	reports := protected.Group("/reports")
	{
		reports.GET("", reportHandler.GetReport)
		reports.GET("/export/:dataset", reportHandler.ExportDataset)
	}

	return r
}
