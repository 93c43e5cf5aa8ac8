package services

import (
	"context"
	"fmt"
	"gestionforestal/model"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const checklistOrder = "fecha_creacion DESC, checklist_id DESC"

type ChecklistInput struct {
	Titulo           string
	Descripcion      string
	Area             string
	Estado           model.ChecklistStatus
	Prioridad        model.ChecklistPriority
	FechaVencimiento time.Time
	Observaciones    string
}

type ChecklistFilter struct {
	Query  string
	Estado string
}

func (in ChecklistInput) validate() error {
	verr := &ValidationError{}
	if strings.TrimSpace(in.Titulo) == "" {
		verr.add("titulo", "Este campo es obligatorio.")
	}
	if strings.TrimSpace(in.Descripcion) == "" {
		verr.add("descripcion", "Este campo es obligatorio.")
	}
	if strings.TrimSpace(in.Area) == "" {
		verr.add("area", "Este campo es obligatorio.")
	}
	if !in.Estado.Valid() {
		verr.add("estado", "Seleccione una opción válida.")
	}
	if !in.Prioridad.Valid() {
		verr.add("prioridad", "Seleccione una opción válida.")
	}
	if in.FechaVencimiento.IsZero() {
		verr.add("fecha_vencimiento", "Este campo es obligatorio.")
	}
	return verr.orNil()
}

func (in ChecklistInput) apply(c *model.Checklist) {
	c.Titulo = strings.TrimSpace(in.Titulo)
	c.Descripcion = in.Descripcion
	c.Area = strings.TrimSpace(in.Area)
	c.Estado = in.Estado
	c.Prioridad = in.Prioridad
	c.FechaVencimiento = in.FechaVencimiento
	c.Observaciones = nil
	if obs := strings.TrimSpace(in.Observaciones); obs != "" {
		c.Observaciones = &obs
	}
}

// ListChecklists returns checklists in default order. Query matches titulo,
// area or descripcion case-insensitively; Estado is an exact match.
func ListChecklists(ctx context.Context, db *gorm.DB, f ChecklistFilter) ([]model.Checklist, error) {
	q := db.WithContext(ctx).Model(&model.Checklist{})
	query := strings.TrimSpace(f.Query)
	inStore := foldsInStore(db)
	if query != "" && inStore {
		q = whereText(q, query, "titulo", "area", "descripcion")
	}
	if f.Estado != "" {
		q = q.Where("estado = ?", f.Estado)
	}

	checklists := []model.Checklist{}
	if err := q.Order(checklistOrder).Find(&checklists).Error; err != nil {
		return nil, err
	}
	if query != "" && !inStore {
		checklists = matchText(checklists, query, func(c model.Checklist) []string {
			return []string{c.Titulo, c.Area, c.Descripcion}
		})
	}
	return checklists, nil
}

func GetChecklist(ctx context.Context, db *gorm.DB, id uint) (*model.Checklist, error) {
	var checklist model.Checklist
	if err := db.WithContext(ctx).First(&checklist, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &checklist, nil
}

// VisitsForChecklist lists the visits whose checklist reference is id.
func VisitsForChecklist(ctx context.Context, db *gorm.DB, id uint) ([]model.Visit, error) {
	visits := []model.Visit{}
	err := db.WithContext(ctx).Where("checklist_id = ?", id).Order(visitOrder).Find(&visits).Error
	return visits, err
}

// CreateChecklist persists a new checklist owned by responsableID.
func CreateChecklist(ctx context.Context, db *gorm.DB, responsableID uint, in ChecklistInput) (*model.Checklist, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	checklist := model.Checklist{
		ResponsableID: responsableID,
		FechaCreacion: time.Now().UTC(),
	}
	in.apply(&checklist)

	if err := db.WithContext(ctx).Omit(clause.Associations).Create(&checklist).Error; err != nil {
		return nil, fmt.Errorf("create checklist: %w", err)
	}
	return &checklist, nil
}

// UpdateChecklist overwrites every mutable field of checklist id.
func UpdateChecklist(ctx context.Context, db *gorm.DB, id uint, in ChecklistInput) (*model.Checklist, error) {
	if _, err := GetChecklist(ctx, db, id); err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	var checklist model.Checklist
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&checklist, id).Error; err != nil {
			return notFound(err)
		}
		in.apply(&checklist)
		err := tx.Model(&checklist).Select("*").Omit(clause.Associations).Updates(&checklist).Error
		if err != nil {
			return fmt.Errorf("update checklist %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &checklist, nil
}

// DeleteChecklist removes checklist id. Visits pointing at it keep existing
// with their checklist reference cleared.
func DeleteChecklist(ctx context.Context, db *gorm.DB, id uint) (*model.Checklist, error) {
	var deleted model.Checklist
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&deleted, id).Error; err != nil {
			return notFound(err)
		}
		if err := tx.Model(&model.Visit{}).Where("checklist_id = ?", id).
			Update("checklist_id", nil).Error; err != nil {
			return fmt.Errorf("detach visits: %w", err)
		}
		return tx.Delete(&model.Checklist{}, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &deleted, nil
}
