package dto

import (
	"gestionforestal/model"
	"gestionforestal/services"
	"strconv"
	"strings"
	"time"
)

var clockLayouts = []string{"15:04:05", "15:04"}

type VisitForm struct {
	CodigoVisita        string `form:"codigo_visita" json:"codigo_visita" binding:"required,max=50"`
	TipoVisita          string `form:"tipo_visita" json:"tipo_visita" binding:"required,visit_type"`
	FechaVisita         string `form:"fecha_visita" json:"fecha_visita" binding:"required,datetime=2006-01-02"`
	HoraInicio          string `form:"hora_inicio" json:"hora_inicio" binding:"required,clock"`
	HoraFin             string `form:"hora_fin" json:"hora_fin" binding:"required,clock"`
	Lugar               string `form:"lugar" json:"lugar" binding:"required,max=200"`
	Checklist           string `form:"checklist" json:"checklist"`
	Hallazgos           string `form:"hallazgos" json:"hallazgos" binding:"required"`
	Resultado           string `form:"resultado" json:"resultado" binding:"required,visit_outcome"`
	Recomendaciones     string `form:"recomendaciones" json:"recomendaciones" binding:"required"`
	RequiereSeguimiento string `form:"requiere_seguimiento" json:"requiere_seguimiento"`
}

type VisitListQuery struct {
	Q         string `form:"q"`
	Tipo      string `form:"tipo"`
	Resultado string `form:"resultado"`
}

func (f VisitForm) Input() (services.VisitInput, error) {
	verr := &services.ValidationError{Fields: map[string]string{}}

	date, err := time.Parse(DateLayout, f.FechaVisita)
	if err != nil {
		verr.Fields["fecha_visita"] = "Introduzca una fecha válida."
	}
	start, ok := NormalizeClock(f.HoraInicio)
	if !ok {
		verr.Fields["hora_inicio"] = "Introduzca una hora válida."
	}
	end, ok := NormalizeClock(f.HoraFin)
	if !ok {
		verr.Fields["hora_fin"] = "Introduzca una hora válida."
	}

	var checklistID *uint
	if ref := strings.TrimSpace(f.Checklist); ref != "" {
		id, err := strconv.ParseUint(ref, 10, 64)
		if err != nil || id == 0 {
			verr.Fields["checklist"] = "El checklist seleccionado no existe."
		} else {
			v := uint(id)
			checklistID = &v
		}
	}

	if len(verr.Fields) > 0 {
		return services.VisitInput{}, verr
	}
	return services.VisitInput{
		CodigoVisita:        f.CodigoVisita,
		TipoVisita:          model.VisitType(f.TipoVisita),
		FechaVisita:         date,
		HoraInicio:          start,
		HoraFin:             end,
		Lugar:               f.Lugar,
		ChecklistID:         checklistID,
		Hallazgos:           f.Hallazgos,
		Resultado:           model.VisitOutcome(f.Resultado),
		Recomendaciones:     f.Recomendaciones,
		RequiereSeguimiento: Checked(f.RequiereSeguimiento),
	}, nil
}

func VisitFormFrom(v *model.Visit) VisitForm {
	f := VisitForm{
		CodigoVisita:    v.CodigoVisita,
		TipoVisita:      string(v.TipoVisita),
		FechaVisita:     v.FechaVisita.Format(DateLayout),
		HoraInicio:      v.HoraInicio,
		HoraFin:         v.HoraFin,
		Lugar:           v.Lugar,
		Hallazgos:       v.Hallazgos,
		Resultado:       string(v.Resultado),
		Recomendaciones: v.Recomendaciones,
	}
	if v.ChecklistID != nil {
		f.Checklist = strconv.FormatUint(uint64(*v.ChecklistID), 10)
	}
	if v.RequiereSeguimiento {
		f.RequiereSeguimiento = "on"
	}
	return f
}

// NormalizeClock accepts HH:MM or HH:MM:SS and returns HH:MM:SS.
func NormalizeClock(s string) (string, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("15:04:05"), true
		}
	}
	return "", false
}

// Checked reports whether a checkbox value means "on".
func Checked(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "on", "true", "1", "yes", "si", "sí", "checked":
		return true
	}
	return false
}
