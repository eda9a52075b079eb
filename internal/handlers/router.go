package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/iggarsaudev/reservas-padel/internal/middlewares"
	"github.com/iggarsaudev/reservas-padel/pkg/auth"
)

// NewRouter declares every route with its full gate chain in one place,
// so no gate can be forgotten on an individual route. Ordering contract:
// ValidateID before anything that reads the id, Auth before role and
// ownership gates, gates before handlers.
func NewRouter(
	log *zap.Logger,
	tokens *auth.Manager,
	authH *AuthHandler,
	userH *UserHandler,
	courtH *CourtHandler,
	resH *ReservationHandler,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middlewares.CorrelationID(), middlewares.RequestLogger(log))

	authed := middlewares.Auth(tokens)
	adminOnly := middlewares.RequireRole("admin")
	selfOrAdmin := middlewares.RequireSelfOrRole("admin")
	validID := middlewares.ValidateID()

	api := r.Group("/api")

	api.POST("/auth/login", authH.Login)

	users := api.Group("/users")
	{
		users.POST("", userH.Register)
		users.GET("", authed, adminOnly, userH.List)

		profile := users.Group("/profile", authed)
		profile.GET("", userH.GetProfile)
		profile.PUT("", userH.UpdateProfile)
		profile.PUT("/password", userH.ChangePassword)

		byID := users.Group("/:id", validID, authed, selfOrAdmin)
		byID.GET("", userH.GetByID)
		byID.PUT("", userH.Update)
		byID.DELETE("", userH.Delete)
	}

	courts := api.Group("/courts")
	{
		courts.GET("", courtH.List)
		courts.GET("/:id", validID, courtH.Get)
		courts.POST("", authed, adminOnly, courtH.Create)
		courts.PUT("/:id", validID, authed, adminOnly, courtH.Update)
		courts.DELETE("/:id", validID, authed, adminOnly, courtH.Delete)
	}

	reservations := api.Group("/reservations", authed)
	{
		reservations.POST("", resH.Create)
		reservations.GET("", resH.List)
		reservations.DELETE("/:id", validID, resH.Cancel)
	}

	return r
}
