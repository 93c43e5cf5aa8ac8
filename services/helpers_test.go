package services

import (
	"context"
	"gestionforestal/model"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "forestal.db") + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(&model.User{}, &model.Session{}, &model.Checklist{}, &model.Visit{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestUser(t *testing.T, db *gorm.DB, username, password string) *model.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	user := model.User{Username: username, HashedPassword: string(hashed), IsActive: true}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return &user
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func checklistInput(titulo, area string) ChecklistInput {
	return ChecklistInput{
		Titulo:           titulo,
		Descripcion:      "Revisión de " + titulo,
		Area:             area,
		Estado:           model.StatusPending,
		Prioridad:        model.PriorityMedium,
		FechaVencimiento: date(2024, 6, 1),
	}
}

func visitInput(code string, checklistID *uint) VisitInput {
	return VisitInput{
		CodigoVisita:    code,
		TipoVisita:      model.VisitPreventive,
		FechaVisita:     date(2024, 5, 20),
		HoraInicio:      "08:00:00",
		HoraFin:         "10:00:00",
		Lugar:           "Vivero norte",
		ChecklistID:     checklistID,
		Hallazgos:       "Extintores vencidos",
		Resultado:       model.OutcomeMinorObservations,
		Recomendaciones: "Reemplazar extintores",
	}
}

func mustCreateChecklist(t *testing.T, db *gorm.DB, userID uint, in ChecklistInput) *model.Checklist {
	t.Helper()
	c, err := CreateChecklist(context.Background(), db, userID, in)
	if err != nil {
		t.Fatalf("create checklist: %v", err)
	}
	return c
}

func mustCreateVisit(t *testing.T, db *gorm.DB, userID uint, in VisitInput) *model.Visit {
	t.Helper()
	v, err := CreateVisit(context.Background(), db, userID, in)
	if err != nil {
		t.Fatalf("create visit: %v", err)
	}
	return v
}
