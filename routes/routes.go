package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/SRSager/bucks-county-fence/config"
	"github.com/SRSager/bucks-county-fence/controllers"
	"github.com/SRSager/bucks-county-fence/mailer"
	"github.com/SRSager/bucks-county-fence/middlewares"
)

func Register(r *gin.Engine, cfg config.Config, svc *mailer.Service, forms *controllers.FormRegistry) {
	api := r.Group("/api")
	{
		api.POST("/submit-lead", controllers.SubmitLead(svc))
		api.GET("/auth", controllers.CMSAuthCallback())
		api.POST("/generate-image", controllers.GenerateImage(cfg))

		// Server-side driver for the multi-step quote form
		f := api.Group("/form")
		f.GET("/:key", forms.GetSession())
		f.PUT("/:key/field", forms.SetField())
		f.POST("/:key/toggle", forms.ToggleField())
		f.POST("/:key/next", forms.NextStep())
		f.POST("/:key/prev", forms.PrevStep())
		f.POST("/:key/reset", forms.Reset())
		f.POST("/:key/submit", forms.Submit(svc))

		api.POST("/admin/login", controllers.AdminLogin(cfg))
		admin := api.Group("/admin")
		admin.Use(middlewares.Auth(cfg.JWTSecret))
		admin.POST("/leads/export", controllers.ExportLeads())
	}
}
