package visit

import (
	"fmt"
	"gestionforestal/controller"
	"gestionforestal/dto"
	"gestionforestal/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const formTemplate = "visita_form.html"

func CreateVisit(c *gin.Context, db *gorm.DB) {
	data, err := formData(c, db)
	if err != nil {
		controller.ServerError(c, err)
		return
	}
	if !controller.IsSubmission(c) {
		data["form"] = dto.VisitForm{}
		controller.Render(c, http.StatusOK, formTemplate, data)
		return
	}

	var form dto.VisitForm
	err = c.ShouldBind(&form)
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

	visita, err := services.CreateVisit(c.Request.Context(), db, controller.UserID(c), input)
	if err != nil {
		controller.ServiceError(c, formTemplate, data, err)
		return
	}

	controller.Flash(c, controller.LevelSuccess, fmt.Sprintf("Visita \"%s\" creada exitosamente.", visita.CodigoVisita))
	controller.SeeOther(c, listPath)
}
