package checklist

import (
	"fmt"
	"gestionforestal/controller"
	"gestionforestal/dto"
	"gestionforestal/model"
	"gestionforestal/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const formTemplate = "checklist_form.html"

func CreateChecklist(c *gin.Context, db *gorm.DB) {
	data := formData()
	if !controller.IsSubmission(c) {
		data["form"] = dto.ChecklistForm{
			Estado:    string(model.StatusPending),
			Prioridad: string(model.PriorityMedium),
		}
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

	checklist, err := services.CreateChecklist(c.Request.Context(), db, controller.UserID(c), input)
	if err != nil {
		controller.ServiceError(c, formTemplate, data, err)
		return
	}

	controller.Flash(c, controller.LevelSuccess, fmt.Sprintf("Checklist \"%s\" creado exitosamente.", checklist.Titulo))
	controller.SeeOther(c, listPath)
}
