package checklist

import (
	"errors"
	"gestionforestal/config"
	"gestionforestal/controller"
	"gestionforestal/dto"
	"gestionforestal/middleware"
	"gestionforestal/model"
	"gestionforestal/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const listPath = "/checklists/"

func ChecklistController(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	routes := router.Group("/checklists", middleware.SessionMiddleware(db, cfg))
	{
		routes.Any("/", func(c *gin.Context) {
			ListChecklists(c, db)
		})
		routes.Any("/crear/", func(c *gin.Context) {
			CreateChecklist(c, db)
		})
		routes.Any("/:id/", func(c *gin.Context) {
			ChecklistDetail(c, db)
		})
		routes.Any("/:id/editar/", func(c *gin.Context) {
			EditChecklist(c, db)
		})
		routes.Any("/:id/eliminar/", func(c *gin.Context) {
			DeleteChecklist(c, db)
		})
	}
}

func ListChecklists(c *gin.Context, db *gorm.DB) {
	var query dto.ChecklistListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query"})
		return
	}

	checklists, err := services.ListChecklists(c.Request.Context(), db, services.ChecklistFilter{
		Query:  query.Q,
		Estado: query.Estado,
	})
	if err != nil {
		controller.ServerError(c, err)
		return
	}

	controller.Render(c, http.StatusOK, "checklist_list.html", gin.H{
		"checklists":     checklists,
		"query":          query.Q,
		"estado_filter":  query.Estado,
		"estado_choices": model.ChecklistStatusChoices,
	})
}

func ChecklistDetail(c *gin.Context, db *gorm.DB) {
	checklist, ok := loadChecklist(c, db)
	if !ok {
		return
	}

	visitas, err := services.VisitsForChecklist(c.Request.Context(), db, checklist.ChecklistID)
	if err != nil {
		controller.ServerError(c, err)
		return
	}

	controller.Render(c, http.StatusOK, "checklist_detail.html", gin.H{
		"checklist": checklist,
		"visitas":   visitas,
	})
}

// loadChecklist resolves :id, rendering NotFound or the error page itself on failure.
func loadChecklist(c *gin.Context, db *gorm.DB) (*model.Checklist, bool) {
	id, ok := controller.ParseID(c)
	if !ok {
		controller.NotFound(c, "Checklist no encontrado.")
		return nil, false
	}
	checklist, err := services.GetChecklist(c.Request.Context(), db, id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			controller.NotFound(c, "Checklist no encontrado.")
		} else {
			controller.ServerError(c, err)
		}
		return nil, false
	}
	return checklist, true
}

func formData() gin.H {
	return gin.H{
		"errors":            map[string]string{},
		"estado_choices":    model.ChecklistStatusChoices,
		"prioridad_choices": model.ChecklistPriorityChoices,
	}
}
