package services

import (
	"context"
	"gestionforestal/model"

	"gorm.io/gorm"
)

const recentLimit = 5

type DashboardSummary struct {
	TotalChecklists       int64             `json:"total_checklists"`
	ChecklistsPendientes  int64             `json:"checklists_pendientes"`
	ChecklistsCompletados int64             `json:"checklists_completados"`
	TotalVisitas          int64             `json:"total_visitas"`
	VisitasCriticas       int64             `json:"visitas_criticas"`
	VisitasSeguimiento    int64             `json:"visitas_seguimiento"`
	ChecklistsRecientes   []model.Checklist `json:"checklists_recientes"`
	VisitasRecientes      []model.Visit     `json:"visitas_recientes"`
}

func Dashboard(ctx context.Context, db *gorm.DB) (*DashboardSummary, error) {
	db = db.WithContext(ctx)
	summary := &DashboardSummary{
		ChecklistsRecientes: []model.Checklist{},
		VisitasRecientes:    []model.Visit{},
	}

	counts := []struct {
		dst   *int64
		query *gorm.DB
	}{
		{&summary.TotalChecklists, db.Model(&model.Checklist{})},
		{&summary.ChecklistsPendientes, db.Model(&model.Checklist{}).Where("estado = ?", model.StatusPending)},
		{&summary.ChecklistsCompletados, db.Model(&model.Checklist{}).Where("estado = ?", model.StatusCompleted)},
		{&summary.TotalVisitas, db.Model(&model.Visit{})},
		{&summary.VisitasCriticas, db.Model(&model.Visit{}).Where("resultado = ?", model.OutcomeCritical)},
		{&summary.VisitasSeguimiento, db.Model(&model.Visit{}).Where("requiere_seguimiento = ?", true)},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dst).Error; err != nil {
			return nil, err
		}
	}

	if err := db.Order(checklistOrder).Limit(recentLimit).Find(&summary.ChecklistsRecientes).Error; err != nil {
		return nil, err
	}
	if err := db.Order(visitOrder).Limit(recentLimit).Find(&summary.VisitasRecientes).Error; err != nil {
		return nil, err
	}
	if err := attachChecklists(db, summary.VisitasRecientes); err != nil {
		return nil, err
	}
	return summary, nil
}
