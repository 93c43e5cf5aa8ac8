package connection

import (
	"fmt"
	"gestionforestal/config"
	"gestionforestal/controller"
	"gestionforestal/controller/auth"
	"gestionforestal/controller/checklist"
	"gestionforestal/controller/dashboard"
	"gestionforestal/controller/visit"
	"gestionforestal/templates"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NewRouter wires every route of the application onto a fresh gin engine.
func NewRouter(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	controller.RegisterValidators()

	router := gin.Default()

	tmpl, err := templates.Load(cfg.Location)
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	if len(cfg.CORSAllowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowedOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	router.GET("/healthz", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth.AuthController(router, db, cfg)
	dashboard.DashboardController(router, db, cfg)
	checklist.ChecklistController(router, db, cfg)
	visit.VisitController(router, db, cfg)

	return router, nil
}

func StartServer(db *gorm.DB, cfg *config.Config) error {
	router, err := NewRouter(db, cfg)
	if err != nil {
		return err
	}
	log.Printf("Listening on :%s", cfg.Port)
	return router.Run(":" + cfg.Port)
}
