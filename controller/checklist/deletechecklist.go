package checklist

import (
	"fmt"
	"gestionforestal/controller"
	"gestionforestal/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func DeleteChecklist(c *gin.Context, db *gorm.DB) {
	checklist, ok := loadChecklist(c, db)
	if !ok {
		return
	}

	if !controller.IsSubmission(c) {
		controller.Render(c, http.StatusOK, "checklist_confirm_delete.html", gin.H{"checklist": checklist})
		return
	}

	deleted, err := services.DeleteChecklist(c.Request.Context(), db, checklist.ChecklistID)
	if err != nil {
		controller.ServiceError(c, "checklist_confirm_delete.html", gin.H{"checklist": checklist}, err)
		return
	}

	controller.Flash(c, controller.LevelSuccess, fmt.Sprintf("Checklist \"%s\" eliminado exitosamente.", deleted.Titulo))
	controller.SeeOther(c, listPath)
}
