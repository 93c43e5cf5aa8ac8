// model/checklist.go
package model

import (
	"time"
)

type Checklist struct {
	ChecklistID      uint              `gorm:"column:checklist_id;primaryKey;autoIncrement" json:"id"`
	Titulo           string            `gorm:"column:titulo;type:varchar(200);not null" json:"titulo"`
	Descripcion      string            `gorm:"column:descripcion;type:text;not null" json:"descripcion"`
	Area             string            `gorm:"column:area;type:varchar(100);not null" json:"area"`
	ResponsableID    uint              `gorm:"column:responsable_id;not null;index" json:"responsable_id"`
	Estado           ChecklistStatus   `gorm:"column:estado;type:varchar(20);not null;default:'pendiente';index" json:"estado"`
	Prioridad        ChecklistPriority `gorm:"column:prioridad;type:varchar(20);not null;default:'media'" json:"prioridad"`
	FechaCreacion    time.Time         `gorm:"column:fecha_creacion;not null;index" json:"fecha_creacion"`
	FechaVencimiento time.Time         `gorm:"column:fecha_vencimiento;type:date;not null" json:"fecha_vencimiento"`
	Observaciones    *string           `gorm:"column:observaciones;type:text" json:"observaciones"`

	// Relations
	Responsable User    `gorm:"foreignKey:ResponsableID;references:UserID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE" json:"-"`
	Visitas     []Visit `gorm:"foreignKey:ChecklistID;references:ChecklistID;constraint:OnDelete:SET NULL,OnUpdate:CASCADE" json:"-"`
}

func (Checklist) TableName() string {
	return "checklists"
}
