// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"localdrop/config"
	"localdrop/internal/delivery/api/middleware"
	"localdrop/internal/delivery/api/router/handler"
	"localdrop/internal/domain/entity"
	"localdrop/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AvailabilityHandler *handler.AvailabilityHandler
	PartnershipHandler  *handler.PartnershipHandler
	BusinessHandler     *handler.BusinessHandler
	UserHandler         *handler.UserHandler
	DeviceHandler       *handler.DeviceHandler
	SessionHandler      *handler.SessionHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	availabilityHandler *handler.AvailabilityHandler
	partnershipHandler  *handler.PartnershipHandler
	businessHandler     *handler.BusinessHandler
	userHandler         *handler.UserHandler
	deviceHandler       *handler.DeviceHandler
	sessionHandler      *handler.SessionHandler
	authMiddleware      *middleware.AuthMiddleware
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		availabilityHandler: params.AvailabilityHandler,
		partnershipHandler:  params.PartnershipHandler,
		businessHandler:     params.BusinessHandler,
		userHandler:         params.UserHandler,
		deviceHandler:       params.DeviceHandler,
		sessionHandler:      params.SessionHandler,
		authMiddleware:      params.AuthMiddleware,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(metrics.Handler()))
	}

	apiV1 := e.Group("/api/v1")

	// Customers query availability without an account
	apiV1.GET("/availability", r.availabilityHandler.GetAvailability)

	authed := apiV1.Group("")
	authed.Use(r.authMiddleware.Authenticate)

	authed.GET("/session", r.sessionHandler.GetSession)

	requireOSB := r.authMiddleware.RequireRole(entity.RoleOSB)
	requireOSD := r.authMiddleware.RequireRole(entity.RoleOSD)

	// Partnership workflow
	partnershipsGroup := authed.Group("/partnerships")
	{
		partnershipsGroup.GET("", r.partnershipHandler.ListPartnerships)
		partnershipsGroup.POST("/requests", r.partnershipHandler.RequestPartnership, requireOSD)
		partnershipsGroup.POST("/requests/qr", r.partnershipHandler.RequestPartnershipByQRCode, requireOSD)
		partnershipsGroup.POST("/requests/:id/accept", r.partnershipHandler.AcceptPartnership, requireOSB)
		partnershipsGroup.POST("/requests/:id/reject", r.partnershipHandler.RejectPartnership, requireOSB)
	}

	// Business profiles
	businessesGroup := authed.Group("/businesses")
	{
		businessesGroup.POST("", r.businessHandler.CreateBusiness, requireOSB)
		businessesGroup.GET("/:id", r.businessHandler.GetBusiness)
		businessesGroup.PATCH("/:id", r.businessHandler.UpdateBusinessProfile, requireOSB)
		businessesGroup.GET("/:id/partner-qr", r.partnershipHandler.GeneratePartnerInviteQR, requireOSB)
	}

	// Delivery agent profiles
	usersGroup := authed.Group("/users")
	{
		usersGroup.POST("", r.userHandler.CreateUser, requireOSD)
		usersGroup.GET("/:id", r.userHandler.GetUser)
	}

	// Device management routes
	devicesGroup := authed.Group("/devices")
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.GetAccountDevices)
		devicesGroup.PUT("/:id/token", r.deviceHandler.UpdateFCMToken)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}
}
