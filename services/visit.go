package services

import (
	"context"
	"errors"
	"fmt"
	"gestionforestal/model"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const visitOrder = "fecha_visita DESC, hora_inicio DESC, visita_id DESC"

type VisitInput struct {
	CodigoVisita        string
	TipoVisita          model.VisitType
	FechaVisita         time.Time
	HoraInicio          string
	HoraFin             string
	Lugar               string
	ChecklistID         *uint
	Hallazgos           string
	Resultado           model.VisitOutcome
	Recomendaciones     string
	RequiereSeguimiento bool
}

type VisitFilter struct {
	Query     string
	Tipo      string
	Resultado string
}

func (in VisitInput) validate() error {
	verr := &ValidationError{}
	required := map[string]string{
		"codigo_visita":   in.CodigoVisita,
		"hora_inicio":     in.HoraInicio,
		"hora_fin":        in.HoraFin,
		"lugar":           in.Lugar,
		"hallazgos":       in.Hallazgos,
		"recomendaciones": in.Recomendaciones,
	}
	for field, v := range required {
		if strings.TrimSpace(v) == "" {
			verr.add(field, "Este campo es obligatorio.")
		}
	}
	if !in.TipoVisita.Valid() {
		verr.add("tipo_visita", "Seleccione una opción válida.")
	}
	if !in.Resultado.Valid() {
		verr.add("resultado", "Seleccione una opción válida.")
	}
	if in.FechaVisita.IsZero() {
		verr.add("fecha_visita", "Este campo es obligatorio.")
	}
	return verr.orNil()
}

func (in VisitInput) apply(v *model.Visit) {
	v.CodigoVisita = strings.TrimSpace(in.CodigoVisita)
	v.TipoVisita = in.TipoVisita
	v.FechaVisita = in.FechaVisita
	v.HoraInicio = in.HoraInicio
	v.HoraFin = in.HoraFin
	v.Lugar = strings.TrimSpace(in.Lugar)
	v.ChecklistID = in.ChecklistID
	v.Checklist = nil
	v.Hallazgos = in.Hallazgos
	v.Resultado = in.Resultado
	v.Recomendaciones = in.Recomendaciones
	v.RequiereSeguimiento = in.RequiereSeguimiento
}

// ListVisits returns visits in default order. Query matches codigo_visita,
// lugar or hallazgos case-insensitively; Tipo and Resultado are exact matches.
func ListVisits(ctx context.Context, db *gorm.DB, f VisitFilter) ([]model.Visit, error) {
	db = db.WithContext(ctx)
	q := db.Model(&model.Visit{})
	query := strings.TrimSpace(f.Query)
	inStore := foldsInStore(db)
	if query != "" && inStore {
		q = whereText(q, query, "codigo_visita", "lugar", "hallazgos")
	}
	if f.Tipo != "" {
		q = q.Where("tipo_visita = ?", f.Tipo)
	}
	if f.Resultado != "" {
		q = q.Where("resultado = ?", f.Resultado)
	}

	visits := []model.Visit{}
	if err := q.Order(visitOrder).Find(&visits).Error; err != nil {
		return nil, err
	}
	if query != "" && !inStore {
		visits = matchText(visits, query, func(v model.Visit) []string {
			return []string{v.CodigoVisita, v.Lugar, v.Hallazgos}
		})
	}
	if err := attachChecklists(db, visits); err != nil {
		return nil, err
	}
	return visits, nil
}

func GetVisit(ctx context.Context, db *gorm.DB, id uint) (*model.Visit, error) {
	db = db.WithContext(ctx)
	visits := make([]model.Visit, 1)
	if err := db.First(&visits[0], id).Error; err != nil {
		return nil, notFound(err)
	}
	if err := attachChecklists(db, visits); err != nil {
		return nil, err
	}
	return &visits[0], nil
}

// attachChecklists fills Visit.Checklist for the visits that reference one.
func attachChecklists(db *gorm.DB, visits []model.Visit) error {
	ids := make([]uint, 0, len(visits))
	for _, v := range visits {
		if v.ChecklistID != nil {
			ids = append(ids, *v.ChecklistID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	var checklists []model.Checklist
	if err := db.Where("checklist_id IN ?", ids).Find(&checklists).Error; err != nil {
		return err
	}
	byID := make(map[uint]*model.Checklist, len(checklists))
	for i := range checklists {
		byID[checklists[i].ChecklistID] = &checklists[i]
	}
	for i := range visits {
		if id := visits[i].ChecklistID; id != nil {
			visits[i].Checklist = byID[*id]
		}
	}
	return nil
}

// CreateVisit persists a new visit inspected by inspectorID.
func CreateVisit(ctx context.Context, db *gorm.DB, inspectorID uint, in VisitInput) (*model.Visit, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	visit := model.Visit{
		InspectorID:   inspectorID,
		FechaCreacion: time.Now().UTC(),
	}
	in.apply(&visit)

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checklistExists(tx, in.ChecklistID); err != nil {
			return err
		}
		return saveVisit(tx.Omit(clause.Associations).Create(&visit).Error)
	})
	if err != nil {
		return nil, err
	}
	return &visit, nil
}

// UpdateVisit overwrites every mutable field of visit id. The inspector never changes.
func UpdateVisit(ctx context.Context, db *gorm.DB, id uint, in VisitInput) (*model.Visit, error) {
	if _, err := GetVisit(ctx, db, id); err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	var visit model.Visit
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&visit, id).Error; err != nil {
			return notFound(err)
		}
		if err := checklistExists(tx, in.ChecklistID); err != nil {
			return err
		}
		in.apply(&visit)
		return saveVisit(tx.Model(&visit).Select("*").Omit(clause.Associations).Updates(&visit).Error)
	})
	if err != nil {
		return nil, err
	}
	return &visit, nil
}

func DeleteVisit(ctx context.Context, db *gorm.DB, id uint) (*model.Visit, error) {
	var deleted model.Visit
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&deleted, id).Error; err != nil {
			return notFound(err)
		}
		return tx.Delete(&model.Visit{}, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &deleted, nil
}

func checklistExists(tx *gorm.DB, id *uint) error {
	if id == nil {
		return nil
	}
	var count int64
	if err := tx.Model(&model.Checklist{}).Where("checklist_id = ?", *id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return NewValidationError("checklist", "El checklist seleccionado no existe.")
	}
	return nil
}

func saveVisit(err error) error {
	if err == nil {
		return nil
	}
	if isDuplicateKey(err) {
		return NewValidationError("codigo_visita", "Ya existe una visita con este código.")
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		return err
	}
	return fmt.Errorf("save visit: %w", err)
}
