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

func EditVisit(c *gin.Context, db *gorm.DB) {
	visita, ok := loadVisit(c, db)
	if !ok {
		return
	}

	data, err := formData(c, db)
	if err != nil {
		controller.ServerError(c, err)
		return
	}
	data["visita"] = visita
	data["is_edit"] = true
	if !controller.IsSubmission(c) {
		data["form"] = dto.VisitFormFrom(visita)
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

	updated, err := services.UpdateVisit(c.Request.Context(), db, visita.VisitaID, input)
	if err != nil {
		controller.ServiceError(c, formTemplate, data, err)
		return
	}

	controller.Flash(c, controller.LevelSuccess, fmt.Sprintf("Visita \"%s\" actualizada exitosamente.", updated.CodigoVisita))
	controller.SeeOther(c, listPath)
}
