package visit

import (
	"fmt"
	"gestionforestal/controller"
	"gestionforestal/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func DeleteVisit(c *gin.Context, db *gorm.DB) {
	visita, ok := loadVisit(c, db)
	if !ok {
		return
	}

	if !controller.IsSubmission(c) {
		controller.Render(c, http.StatusOK, "visita_confirm_delete.html", gin.H{"visita": visita})
		return
	}

	deleted, err := services.DeleteVisit(c.Request.Context(), db, visita.VisitaID)
	if err != nil {
		controller.ServiceError(c, "visita_confirm_delete.html", gin.H{"visita": visita}, err)
		return
	}

	controller.Flash(c, controller.LevelSuccess, fmt.Sprintf("Visita \"%s\" eliminada exitosamente.", deleted.CodigoVisita))
	controller.SeeOther(c, listPath)
}
