package auth

import (
	"errors"
	"fmt"
	"gestionforestal/config"
	"gestionforestal/controller"
	"gestionforestal/dto"
	"gestionforestal/middleware"
	"gestionforestal/services"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	dashboardPath  = "/dashboard/"
	invalidCredMsg = "Usuario o contraseña incorrectos."
)

func AuthController(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	router.GET("/", func(c *gin.Context) {
		Login(c, db, cfg)
	})
	router.GET("/login/", func(c *gin.Context) {
		Login(c, db, cfg)
	})
	router.POST("/login/", func(c *gin.Context) {
		Login(c, db, cfg)
	})
	router.Any("/logout/", middleware.SessionMiddleware(db, cfg), func(c *gin.Context) {
		Logout(c, db, cfg)
	})
}

func Login(c *gin.Context, db *gorm.DB, cfg *config.Config) {
	if _, err := middleware.CurrentSession(c, db, cfg); err == nil {
		c.Redirect(http.StatusFound, dashboardPath)
		return
	}

	data := gin.H{
		"next":     controller.SafeNext(c.Query("next")),
		"username": "",
	}
	if !controller.IsSubmission(c) {
		controller.Render(c, http.StatusOK, "login.html", data)
		return
	}

	var form dto.LoginForm
	bindErr := c.ShouldBind(&form)
	if next := controller.SafeNext(form.Next); next != "" {
		data["next"] = next
	}
	data["username"] = form.Username
	if bindErr != nil {
		data["error"] = invalidCredMsg
		controller.Render(c, http.StatusUnauthorized, "login.html", data)
		return
	}

	user, err := services.Authenticate(c.Request.Context(), db, form.Username, form.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			data["error"] = invalidCredMsg
			controller.Render(c, http.StatusUnauthorized, "login.html", data)
			return
		}
		controller.ServerError(c, err)
		return
	}

	session, err := services.CreateSession(c.Request.Context(), db, user.UserID, cfg.SessionTTL)
	if err != nil {
		controller.ServerError(c, fmt.Errorf("create session: %w", err))
		return
	}
	if err := middleware.SetSessionCookie(c, cfg, session); err != nil {
		controller.ServerError(c, fmt.Errorf("sign session: %w", err))
		return
	}

	controller.Flash(c, controller.LevelSuccess, fmt.Sprintf("¡Bienvenido %s!", user.DisplayName()))
	next, _ := data["next"].(string)
	if next == "" {
		next = dashboardPath
	}
	controller.SeeOther(c, next)
}

func Logout(c *gin.Context, db *gorm.DB, cfg *config.Config) {
	if !controller.IsSubmission(c) {
		c.Header("Allow", http.MethodPost)
		c.AbortWithStatusJSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
		return
	}

	if err := services.RevokeSession(c.Request.Context(), db, c.GetString("sessionId")); err != nil {
		log.Printf("revoke session: %v", err)
	}
	middleware.ExpireSessionCookie(c, cfg)
	controller.Flash(c, controller.LevelInfo, "Has cerrado sesión exitosamente.")
	controller.SeeOther(c, middleware.LoginPath)
}
