package templates

import (
	"bytes"
	"gestionforestal/model"
	"strings"
	"testing"
	"time"
)

func TestLoadParsesEveryView(t *testing.T) {
	tmpl, err := Load(time.UTC)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	for _, name := range []string{
		"login.html", "dashboard.html", "404.html", "500.html",
		"checklist_list.html", "checklist_form.html", "checklist_detail.html", "checklist_confirm_delete.html",
		"visita_list.html", "visita_form.html", "visita_detail.html", "visita_confirm_delete.html",
	} {
		if tmpl.Lookup(name) == nil {
			t.Fatalf("template %s not found", name)
		}
	}
}

func TestChecklistDetailRendersLabels(t *testing.T) {
	tmpl, err := Load(time.UTC)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	data := map[string]interface{}{
		"messages": []struct{ Level, Text string }{{"success", "Listo"}},
		"checklist": model.Checklist{
			ChecklistID:      3,
			Titulo:           "Inspección de torres",
			Area:             "Sector 4",
			Estado:           model.StatusInProgress,
			Prioridad:        model.PriorityCritical,
			FechaVencimiento: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		"visitas": []model.Visit{},
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "checklist_detail.html", data); err != nil {
		t.Fatalf("execute: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"En Progreso", "Crítica", "01/06/2024", "Listo", "Sin visitas asociadas."} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output", want)
		}
	}
}
