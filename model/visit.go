// model/visit.go
package model

import (
	"time"
)

type Visit struct {
	VisitaID            uint         `gorm:"column:visita_id;primaryKey;autoIncrement" json:"id"`
	CodigoVisita        string       `gorm:"column:codigo_visita;type:varchar(50);not null;uniqueIndex" json:"codigo_visita"`
	TipoVisita          VisitType    `gorm:"column:tipo_visita;type:varchar(20);not null;index" json:"tipo_visita"`
	FechaVisita         time.Time    `gorm:"column:fecha_visita;type:date;not null" json:"fecha_visita"`
	HoraInicio          string       `gorm:"column:hora_inicio;type:time;not null" json:"hora_inicio"`
	HoraFin             string       `gorm:"column:hora_fin;type:time;not null" json:"hora_fin"`
	Lugar               string       `gorm:"column:lugar;type:varchar(200);not null" json:"lugar"`
	InspectorID         uint         `gorm:"column:inspector_id;not null;index" json:"inspector_id"`
	ChecklistID         *uint        `gorm:"column:checklist_id;index" json:"checklist_id"`
	Hallazgos           string       `gorm:"column:hallazgos;type:text;not null" json:"hallazgos"`
	Resultado           VisitOutcome `gorm:"column:resultado;type:varchar(30);not null;index" json:"resultado"`
	Recomendaciones     string       `gorm:"column:recomendaciones;type:text;not null" json:"recomendaciones"`
	RequiereSeguimiento bool         `gorm:"column:requiere_seguimiento;not null;default:false" json:"requiere_seguimiento"`
	FechaCreacion       time.Time    `gorm:"column:fecha_creacion;not null" json:"fecha_creacion"`
	FechaActualizacion  time.Time    `gorm:"column:fecha_actualizacion;autoUpdateTime" json:"fecha_actualizacion"`

	// Relations
	Inspector User       `gorm:"foreignKey:InspectorID;references:UserID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE" json:"-"`
	// Filled in by the visit services; the foreign key is declared on Checklist.Visitas.
	Checklist *Checklist `gorm:"-" json:"checklist,omitempty"`
}

func (Visit) TableName() string {
	return "visitas"
}
