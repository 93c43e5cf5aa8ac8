package services

import (
	"context"
	"errors"
	"fmt"
	"gestionforestal/model"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const minPasswordLength = 8

type UserInput struct {
	Username  string
	Password  string
	Email     string
	FirstName string
	LastName  string
}

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

// Authenticate checks a username/password pair. Unknown users, inactive users
// and wrong passwords all return ErrInvalidCredentials.
func Authenticate(ctx context.Context, db *gorm.DB, username, password string) (*model.User, error) {
	var user model.User
	err := db.WithContext(ctx).Where("username = ?", strings.TrimSpace(username)).First(&user).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		// keep response time independent of whether the username exists
		dummyHashOnce.Do(func() {
			dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)
		})
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

func GetUser(ctx context.Context, db *gorm.DB, userID uint) (*model.User, error) {
	var user model.User
	if err := db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func CreateUser(ctx context.Context, db *gorm.DB, in UserInput) (*model.User, error) {
	verr := &ValidationError{}
	username := strings.TrimSpace(in.Username)
	if username == "" {
		verr.add("username", "El nombre de usuario es obligatorio.")
	}
	if msg := checkPassword(in.Password, username); msg != "" {
		verr.add("password", msg)
	}
	if err := verr.orNil(); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := model.User{
		Username:       username,
		Email:          strings.TrimSpace(in.Email),
		FirstName:      strings.TrimSpace(in.FirstName),
		LastName:       strings.TrimSpace(in.LastName),
		HashedPassword: string(hashed),
		IsActive:       true,
	}
	if err := db.WithContext(ctx).Create(&user).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, NewValidationError("username", "Ya existe un usuario con ese nombre.")
		}
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes a user together with the checklists they are responsible
// for, the visits they inspected and their sessions.
func DeleteUser(ctx context.Context, db *gorm.DB, username string) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user model.User
		if err := tx.Where("username = ?", username).First(&user).Error; err != nil {
			return notFound(err)
		}

		if err := tx.Where("inspector_id = ?", user.UserID).Delete(&model.Visit{}).Error; err != nil {
			return fmt.Errorf("delete visits: %w", err)
		}
		owned := tx.Model(&model.Checklist{}).Select("checklist_id").Where("responsable_id = ?", user.UserID)
		if err := tx.Model(&model.Visit{}).Where("checklist_id IN (?)", owned).
			Update("checklist_id", nil).Error; err != nil {
			return fmt.Errorf("detach visits: %w", err)
		}
		if err := tx.Where("responsable_id = ?", user.UserID).Delete(&model.Checklist{}).Error; err != nil {
			return fmt.Errorf("delete checklists: %w", err)
		}
		if err := tx.Where("user_id = ?", user.UserID).Delete(&model.Session{}).Error; err != nil {
			return fmt.Errorf("delete sessions: %w", err)
		}
		return tx.Delete(&user).Error
	})
}

func checkPassword(password, username string) string {
	if len([]rune(password)) < minPasswordLength {
		return fmt.Sprintf("La contraseña debe tener al menos %d caracteres.", minPasswordLength)
	}
	numeric := true
	for _, r := range password {
		if !unicode.IsDigit(r) {
			numeric = false
			break
		}
	}
	if numeric {
		return "La contraseña no puede ser completamente numérica."
	}
	if username != "" && strings.EqualFold(password, username) {
		return "La contraseña es demasiado similar al nombre de usuario."
	}
	return ""
}
