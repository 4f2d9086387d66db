package router

import (
	"github.com/gin-gonic/gin"
	"github.com/vidyonnati/foundation-backend/handler"
	"github.com/vidyonnati/foundation-backend/middleware"
	ginmetrics "github.com/vidyonnati/foundation-backend/pkg/metrics/gin"
)

type Handlers struct {
	Auth         *handler.AuthHandler
	Wizard       *handler.WizardHandler
	Applications *handler.ApplicationHandler
	Admin        *handler.AdminHandler
	Donations    *handler.DonationHandler
	Leads        *handler.LeadHandler
}

func Setup(h Handlers, jwtSecret []byte) *gin.Engine {
	r := gin.Default()
	r.Use(ginmetrics.PrometheusMiddleware("vidyonnati-backend"))

	api := r.Group("/api")
	{
		api.POST("/register", h.Auth.Register)
		api.POST("/login", h.Auth.Login)
		api.POST("/donations", h.Donations.Create)
		api.POST("/help-interest", h.Leads.Create)
	}

	authed := api.Group("", middleware.JWTAuth(jwtSecret))
	{
		authed.GET("/me", h.Auth.Me)

		wizard := authed.Group("/wizard")
		{
			wizard.GET("/state", h.Wizard.State)
			wizard.POST("/next", h.Wizard.Next)
			wizard.POST("/back", h.Wizard.Back)
			wizard.POST("/jump", h.Wizard.Jump)
			wizard.POST("/variant", h.Wizard.ChangeVariant)
		}

		authed.POST("/applications", h.Applications.Submit)
		authed.GET("/applications/mine", h.Applications.Mine)
	}

	admin := authed.Group("/admin", middleware.RequireAdmin())
	{
		admin.GET("/applications", h.Admin.ListApplications)
		admin.GET("/applications/:id", h.Admin.ApplicationDetail)
		admin.PATCH("/applications/:id/status", h.Admin.UpdateApplicationStatus)
		admin.GET("/applications/:id/insight", h.Admin.ApplicationInsight)
		admin.GET("/donations", h.Donations.List)
		admin.PATCH("/donations/:id/status", h.Donations.UpdateStatus)
		admin.GET("/leads", h.Leads.List)
		admin.PATCH("/leads/:id/status", h.Leads.UpdateStatus)
	}

	return r
}
