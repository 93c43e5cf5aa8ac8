package visit

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

const listPath = "/visitas/"

func VisitController(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	routes := router.Group("/visitas", middleware.SessionMiddleware(db, cfg))
	{
		routes.Any("/", func(c *gin.Context) {
			ListVisits(c, db)
		})
		routes.Any("/crear/", func(c *gin.Context) {
			CreateVisit(c, db)
		})
		routes.Any("/:id/", func(c *gin.Context) {
			VisitDetail(c, db)
		})
		routes.Any("/:id/editar/", func(c *gin.Context) {
			EditVisit(c, db)
		})
		routes.Any("/:id/eliminar/", func(c *gin.Context) {
			DeleteVisit(c, db)
		})
	}
}

func ListVisits(c *gin.Context, db *gorm.DB) {
	var query dto.VisitListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query"})
		return
	}

	visitas, err := services.ListVisits(c.Request.Context(), db, services.VisitFilter{
		Query:     query.Q,
		Tipo:      query.Tipo,
		Resultado: query.Resultado,
	})
	if err != nil {
		controller.ServerError(c, err)
		return
	}

	controller.Render(c, http.StatusOK, "visita_list.html", gin.H{
		"visitas":           visitas,
		"query":             query.Q,
		"tipo_filter":       query.Tipo,
		"resultado_filter":  query.Resultado,
		"tipo_choices":      model.VisitTypeChoices,
		"resultado_choices": model.VisitOutcomeChoices,
	})
}

func VisitDetail(c *gin.Context, db *gorm.DB) {
	visita, ok := loadVisit(c, db)
	if !ok {
		return
	}
	controller.Render(c, http.StatusOK, "visita_detail.html", gin.H{"visita": visita})
}

func loadVisit(c *gin.Context, db *gorm.DB) (*model.Visit, bool) {
	id, ok := controller.ParseID(c)
	if !ok {
		controller.NotFound(c, "Visita no encontrada.")
		return nil, false
	}
	visita, err := services.GetVisit(c.Request.Context(), db, id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			controller.NotFound(c, "Visita no encontrada.")
		} else {
			controller.ServerError(c, err)
		}
		return nil, false
	}
	return visita, true
}

// formData builds the shared form context, including the checklist selector.
func formData(c *gin.Context, db *gorm.DB) (gin.H, error) {
	checklists, err := services.ListChecklists(c.Request.Context(), db, services.ChecklistFilter{})
	if err != nil {
		return nil, err
	}
	return gin.H{
		"errors":            map[string]string{},
		"tipo_choices":      model.VisitTypeChoices,
		"resultado_choices": model.VisitOutcomeChoices,
		"checklists":        checklists,
	}, nil
}
