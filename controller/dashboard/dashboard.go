package dashboard

import (
	"gestionforestal/config"
	"gestionforestal/controller"
	"gestionforestal/middleware"
	"gestionforestal/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func DashboardController(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	router.Any("/dashboard/", middleware.SessionMiddleware(db, cfg), func(c *gin.Context) {
		Dashboard(c, db)
	})
}

func Dashboard(c *gin.Context, db *gorm.DB) {
	summary, err := services.Dashboard(c.Request.Context(), db)
	if err != nil {
		controller.ServerError(c, err)
		return
	}
	controller.Render(c, http.StatusOK, "dashboard.html", gin.H{"summary": summary})
}
