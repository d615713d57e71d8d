// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"conectone/internal/delivery/http/middleware"
	"conectone/internal/delivery/http/router/handler"
	"conectone/internal/domain/constants"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	AffiliateHandler    *handler.AffiliateHandler
	AdvertHandler       *handler.AdvertHandler
	ListingHandler      *handler.ListingHandler
	SchoolHandler       *handler.SchoolHandler
	LearnerHandler      *handler.LearnerHandler
	AttendanceHandler   *handler.AttendanceHandler
	DisciplineHandler   *handler.DisciplineHandler
	ActivityHandler     *handler.ActivityHandler
	MessageHandler      *handler.MessageHandler
	NotificationHandler *handler.NotificationHandler
	FilingHandler       *handler.FilingHandler
	ExportHandler       *handler.ExportHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes, no token required
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.params.UserHandler.Register)
		authGroup.POST("/login", r.params.UserHandler.Login)
		authGroup.POST("/refresh", r.params.UserHandler.Refresh)
	}

	authed := api.Group("")
	authed.Use(r.params.AuthMiddleware.Authenticate)

	admin := api.Group("")
	admin.Use(r.params.AuthMiddleware.Authenticate)
	admin.Use(r.params.AuthMiddleware.RequireRole(constants.RoleAdmin))

	userGroup := authed.Group("/users")
	{
		userGroup.GET("/profile", r.params.UserHandler.GetProfile)
		userGroup.GET("/:id", r.params.UserHandler.GetUser)
		userGroup.GET("", r.params.UserHandler.ListUsers)
	}
	admin.POST("/users/:id/deactivate", r.params.UserHandler.DeactivateUser)

	affiliateGroup := authed.Group("/affiliates")
	{
		affiliateGroup.POST("", r.params.AffiliateHandler.Create)
		affiliateGroup.GET("/:id", r.params.AffiliateHandler.Get)
		affiliateGroup.PUT("/:id", r.params.AffiliateHandler.Update)
		affiliateGroup.GET("", r.params.AffiliateHandler.List)
		affiliateGroup.DELETE("/:id", r.params.AffiliateHandler.Delete)
		affiliateGroup.GET("/:id/qr", r.params.AffiliateHandler.ReferralQR)
		affiliateGroup.POST("/resolve_qr", r.params.AffiliateHandler.ResolveQR)
		affiliateGroup.POST("/:code/commission", r.params.AffiliateHandler.CreditCommission)
	}

	advertGroup := authed.Group("/adverts")
	{
		advertGroup.POST("", r.params.AdvertHandler.Create)
		advertGroup.GET("/:id", r.params.AdvertHandler.Get)
		advertGroup.PUT("/:id", r.params.AdvertHandler.Update)
		advertGroup.GET("", r.params.AdvertHandler.List)
		advertGroup.GET("/owner/:ownerId", r.params.AdvertHandler.ListByOwner)
		advertGroup.POST("/:id/image", r.params.AdvertHandler.AttachImage)
		advertGroup.DELETE("/:id", r.params.AdvertHandler.Delete)
	}
	admin.POST("/adverts/:id/review", r.params.AdvertHandler.Review)

	companyGroup := authed.Group("/companies")
	{
		companyGroup.POST("", r.params.ListingHandler.CreateCompany)
		companyGroup.GET("/:id", r.params.ListingHandler.GetCompany)
		companyGroup.PUT("/:id", r.params.ListingHandler.UpdateCompany)
		companyGroup.GET("", r.params.ListingHandler.ListCompanies)
		companyGroup.DELETE("/:id", r.params.ListingHandler.DeleteCompany)
		companyGroup.GET("/:companyId/listings", r.params.ListingHandler.ListListingsByCompany)
	}

	authed.GET("/listing_tiers/all", r.params.ListingHandler.ListTiers)
	admin.POST("/listing_tiers", r.params.ListingHandler.CreateTier)
	admin.PUT("/listing_tiers/:id", r.params.ListingHandler.UpdateTier)
	admin.DELETE("/listing_tiers/:id", r.params.ListingHandler.DeleteTier)

	authed.GET("/categories", r.params.ListingHandler.ListCategories)
	admin.POST("/categories", r.params.ListingHandler.CreateCategory)
	admin.DELETE("/categories/:id", r.params.ListingHandler.DeleteCategory)

	listingGroup := authed.Group("/listings")
	{
		listingGroup.POST("", r.params.ListingHandler.CreateListing)
		listingGroup.GET("/:id", r.params.ListingHandler.GetListing)
		listingGroup.PUT("/:id", r.params.ListingHandler.UpdateListing)
		listingGroup.GET("", r.params.ListingHandler.ListListings)
		listingGroup.POST("/:id/image", r.params.ListingHandler.AttachListingImage)
		listingGroup.DELETE("/:id", r.params.ListingHandler.DeleteListing)
	}
	admin.POST("/listings/:id/review", r.params.ListingHandler.ReviewListing)

	schoolGroup := authed.Group("/schools")
	{
		schoolGroup.POST("", r.params.SchoolHandler.CreateSchool)
		schoolGroup.GET("/:id", r.params.SchoolHandler.GetSchool)
		schoolGroup.PUT("/:id", r.params.SchoolHandler.UpdateSchool)
		schoolGroup.GET("", r.params.SchoolHandler.ListSchools)
		schoolGroup.DELETE("/:id", r.params.SchoolHandler.DeleteSchool)
		schoolGroup.GET("/:schoolId/classes", r.params.SchoolHandler.ListClasses)
		schoolGroup.GET("/:schoolId/staff", r.params.SchoolHandler.ListStaff)
		schoolGroup.GET("/:schoolId/learners", r.params.LearnerHandler.ListBySchool)
		schoolGroup.GET("/:schoolId/activity_groups", r.params.ActivityHandler.ListGroups)
	}

	classGroup := authed.Group("/classes")
	{
		classGroup.POST("", r.params.SchoolHandler.CreateClass)
		classGroup.GET("/:id", r.params.SchoolHandler.GetClass)
		classGroup.PUT("/:id", r.params.SchoolHandler.UpdateClass)
		classGroup.DELETE("/:id", r.params.SchoolHandler.DeleteClass)
		classGroup.GET("/:classId/learners", r.params.LearnerHandler.ListByClass)
		classGroup.GET("/:classId/register", r.params.AttendanceHandler.GetRegister)
	}

	staffGroup := authed.Group("/staff")
	{
		staffGroup.POST("", r.params.SchoolHandler.CreateStaff)
		staffGroup.GET("/:id", r.params.SchoolHandler.GetStaff)
		staffGroup.PUT("/:id", r.params.SchoolHandler.UpdateStaff)
		staffGroup.DELETE("/:id", r.params.SchoolHandler.DeleteStaff)
	}

	learnerGroup := authed.Group("/learners")
	{
		learnerGroup.POST("", r.params.LearnerHandler.Enroll)
		learnerGroup.GET("/:id", r.params.LearnerHandler.Get)
		learnerGroup.PUT("/:id", r.params.LearnerHandler.Update)
		learnerGroup.POST("/:id/class", r.params.LearnerHandler.AssignToClass)
		learnerGroup.DELETE("/:id", r.params.LearnerHandler.Delete)
		learnerGroup.GET("/:learnerId/attendance", r.params.AttendanceHandler.GetLearnerHistory)
		learnerGroup.GET("/:learnerId/attendance/summary", r.params.AttendanceHandler.GetLearnerSummary)
		learnerGroup.GET("/:learnerId/discipline", r.params.DisciplineHandler.ListByLearner)
	}

	authed.POST("/attendance/register", r.params.AttendanceHandler.CaptureRegister)

	disciplineGroup := authed.Group("/discipline")
	{
		disciplineGroup.POST("", r.params.DisciplineHandler.RecordIncident)
		disciplineGroup.GET("/:id", r.params.DisciplineHandler.Get)
		disciplineGroup.PUT("/:id", r.params.DisciplineHandler.Update)
		disciplineGroup.POST("/:id/resolve", r.params.DisciplineHandler.Resolve)
		disciplineGroup.DELETE("/:id", r.params.DisciplineHandler.Delete)
	}

	activityGroup := authed.Group("/activity_groups")
	{
		activityGroup.POST("", r.params.ActivityHandler.CreateGroup)
		activityGroup.GET("/:id", r.params.ActivityHandler.GetGroup)
		activityGroup.PUT("/:id", r.params.ActivityHandler.UpdateGroup)
		activityGroup.DELETE("/:id", r.params.ActivityHandler.DeleteGroup)
		activityGroup.POST("/:id/members", r.params.ActivityHandler.AddMember)
		activityGroup.GET("/:id/members", r.params.ActivityHandler.ListMembers)
		activityGroup.DELETE("/:id/members/:learnerId", r.params.ActivityHandler.RemoveMember)
	}

	messageGroup := authed.Group("/messages")
	{
		messageGroup.POST("", r.params.MessageHandler.Send)
		messageGroup.GET("/inbox", r.params.MessageHandler.Inbox)
		messageGroup.GET("/outbox", r.params.MessageHandler.Outbox)
		messageGroup.GET("/unread_count", r.params.MessageHandler.CountUnread)
		messageGroup.GET("/:id", r.params.MessageHandler.Get)
		messageGroup.POST("/:id/read", r.params.MessageHandler.MarkRead)
		messageGroup.DELETE("/:id", r.params.MessageHandler.Delete)
	}

	notificationGroup := authed.Group("/notifications")
	{
		notificationGroup.GET("", r.params.NotificationHandler.List)
		notificationGroup.GET("/unread_count", r.params.NotificationHandler.CountUnread)
		notificationGroup.POST("/:id/read", r.params.NotificationHandler.MarkRead)
		notificationGroup.POST("/devices", r.params.NotificationHandler.RegisterDevice)
	}

	fileGroup := authed.Group("/files")
	{
		fileGroup.POST("", r.params.FilingHandler.Upload)
		fileGroup.GET("/:id", r.params.FilingHandler.Get)
		fileGroup.GET("/:id/download", r.params.FilingHandler.Download)
		fileGroup.PUT("/:id", r.params.FilingHandler.Replace)
		fileGroup.GET("/entity/:entityType/:entityId", r.params.FilingHandler.ListByEntity)
		fileGroup.DELETE("/:id", r.params.FilingHandler.Delete)
	}

	exportGroup := admin.Group("/exports")
	{
		exportGroup.GET("/schools/:schoolId/learners", r.params.ExportHandler.Learners)
		exportGroup.GET("/adverts", r.params.ExportHandler.Adverts)
		exportGroup.GET("/listings", r.params.ExportHandler.Listings)
		exportGroup.GET("/learners/:learnerId/attendance", r.params.ExportHandler.Attendance)
	}
}
