package services

import (
	"context"
	"fmt"
	"gestionforestal/model"
	"testing"
)

func TestDashboardEmpty(t *testing.T) {
	db := newTestDB(t)

	summary, err := Dashboard(context.Background(), db)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if summary.TotalChecklists != 0 || summary.TotalVisitas != 0 {
		t.Fatalf("expected zero totals, got %+v", summary)
	}
	if summary.ChecklistsRecientes == nil || summary.VisitasRecientes == nil {
		t.Fatalf("recent lists must be empty, not nil")
	}
}

func TestDashboardCounts(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "ana", "secreto123")

	for i := 0; i < 6; i++ {
		in := checklistInput(fmt.Sprintf("Checklist %d", i), "Sector 1")
		if i%3 == 0 {
			in.Estado = model.StatusCompleted
		}
		mustCreateChecklist(t, db, user.UserID, in)
	}

	critical := visitInput("V-CRIT", nil)
	critical.Resultado = model.OutcomeCritical
	critical.RequiereSeguimiento = true
	mustCreateVisit(t, db, user.UserID, critical)
	mustCreateVisit(t, db, user.UserID, visitInput("V-OK", nil))

	summary, err := Dashboard(context.Background(), db)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if summary.TotalChecklists != 6 || summary.ChecklistsCompletados != 2 || summary.ChecklistsPendientes != 4 {
		t.Fatalf("unexpected checklist counts: %+v", summary)
	}
	if summary.TotalVisitas != 2 || summary.VisitasCriticas != 1 || summary.VisitasSeguimiento != 1 {
		t.Fatalf("unexpected visit counts: %+v", summary)
	}
	if len(summary.ChecklistsRecientes) != 5 {
		t.Fatalf("expected recent checklists capped at 5, got %d", len(summary.ChecklistsRecientes))
	}
	if summary.ChecklistsRecientes[0].Titulo != "Checklist 5" {
		t.Fatalf("expected newest checklist first, got %q", summary.ChecklistsRecientes[0].Titulo)
	}
	if len(summary.VisitasRecientes) != 2 {
		t.Fatalf("expected 2 recent visits, got %d", len(summary.VisitasRecientes))
	}
}
