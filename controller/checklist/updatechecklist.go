package checklist

import (
	"fmt"
	"gestionforestal/controller"
	"gestionforestal/dto"
	"gestionforestal/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func EditChecklist(c *gin.Context, db *gorm.DB) {
	checklist, ok := loadChecklist(c, db)
	if !ok {
		return
	}

	data := formData()
	data["checklist"] = checklist
	data["is_edit"] = true
	if !controller.IsSubmission(c) {
		data["form"] = dto.ChecklistFormFrom(checklist)
		controller.Render(c, http.StatusOK, formTemplate, data)
		return
	}

	var form dto.ChecklistForm
	err := c.ShouldBind(&form)
	data["form"] = form
	if err != nil {
		controller.InvalidForm(c, formTemplate, data, err)
		return
	}
	input, err := form.Input()
	if err != nil {
		controller.InvalidForm(c, formTemplate, data, err)
		return
	}

	updated, err := services.UpdateChecklist(c.Request.Context(), db, checklist.ChecklistID, input)
	if err != nil {
		controller.ServiceError(c, formTemplate, data, err)
		return
	}

	controller.Flash(c, controller.LevelSuccess, fmt.Sprintf("Checklist \"%s\" actualizado exitosamente.", updated.Titulo))
	controller.SeeOther(c, listPath)
}
