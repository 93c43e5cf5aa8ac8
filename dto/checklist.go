package dto

import (
	"gestionforestal/model"
	"gestionforestal/services"
	"time"
)

const DateLayout = "2006-01-02"

type ChecklistForm struct {
	Titulo           string `form:"titulo" json:"titulo" binding:"required,max=200"`
	Descripcion      string `form:"descripcion" json:"descripcion" binding:"required"`
	Area             string `form:"area" json:"area" binding:"required,max=100"`
	Estado           string `form:"estado" json:"estado" binding:"required,checklist_status"`
	Prioridad        string `form:"prioridad" json:"prioridad" binding:"required,checklist_priority"`
	FechaVencimiento string `form:"fecha_vencimiento" json:"fecha_vencimiento" binding:"required,datetime=2006-01-02"`
	Observaciones    string `form:"observaciones" json:"observaciones"`
}

type ChecklistListQuery struct {
	Q      string `form:"q"`
	Estado string `form:"estado"`
}

// Input converts a bound form into service input.
func (f ChecklistForm) Input() (services.ChecklistInput, error) {
	due, err := time.Parse(DateLayout, f.FechaVencimiento)
	if err != nil {
		return services.ChecklistInput{}, services.NewValidationError("fecha_vencimiento", "Introduzca una fecha válida.")
	}
	return services.ChecklistInput{
		Titulo:           f.Titulo,
		Descripcion:      f.Descripcion,
		Area:             f.Area,
		Estado:           model.ChecklistStatus(f.Estado),
		Prioridad:        model.ChecklistPriority(f.Prioridad),
		FechaVencimiento: due,
		Observaciones:    f.Observaciones,
	}, nil
}

// ChecklistFormFrom pre-fills a form from a stored checklist.
func ChecklistFormFrom(c *model.Checklist) ChecklistForm {
	f := ChecklistForm{
		Titulo:           c.Titulo,
		Descripcion:      c.Descripcion,
		Area:             c.Area,
		Estado:           string(c.Estado),
		Prioridad:        string(c.Prioridad),
		FechaVencimiento: c.FechaVencimiento.Format(DateLayout),
	}
	if c.Observaciones != nil {
		f.Observaciones = *c.Observaciones
	}
	return f
}
