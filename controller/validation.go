package controller

import (
	"gestionforestal/dto"
	"gestionforestal/model"
	"log"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/es"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	es_translations "github.com/go-playground/validator/v10/translations/es"
)

var (
	registerOnce sync.Once
	translator   ut.Translator
)

// RegisterValidators installs the enum and clock tags and Spanish messages on
// gin's validator. Safe to call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			log.Println("Warning: gin validator engine is not go-playground/validator")
			return
		}

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		custom := map[string]validator.Func{
			"checklist_status": func(fl validator.FieldLevel) bool {
				return model.ChecklistStatus(fl.Field().String()).Valid()
			},
			"checklist_priority": func(fl validator.FieldLevel) bool {
				return model.ChecklistPriority(fl.Field().String()).Valid()
			},
			"visit_type": func(fl validator.FieldLevel) bool {
				return model.VisitType(fl.Field().String()).Valid()
			},
			"visit_outcome": func(fl validator.FieldLevel) bool {
				return model.VisitOutcome(fl.Field().String()).Valid()
			},
			"clock": func(fl validator.FieldLevel) bool {
				_, ok := dto.NormalizeClock(fl.Field().String())
				return ok
			},
		}
		for tag, fn := range custom {
			if err := v.RegisterValidation(tag, fn); err != nil {
				log.Printf("register validation %s: %v", tag, err)
			}
		}

		locale := es.New()
		translator, _ = ut.New(locale, locale).GetTranslator("es")
		if err := es_translations.RegisterDefaultTranslations(v, translator); err != nil {
			log.Printf("register es translations: %v", err)
		}

		messages := map[string]string{
			"checklist_status":   "{0} debe ser una opción válida",
			"checklist_priority": "{0} debe ser una opción válida",
			"visit_type":         "{0} debe ser una opción válida",
			"visit_outcome":      "{0} debe ser una opción válida",
			"clock":              "{0} debe ser una hora válida (HH:MM)",
			"datetime":           "{0} debe ser una fecha válida (AAAA-MM-DD)",
		}
		for tag, text := range messages {
			tag, text := tag, text
			err := v.RegisterTranslation(tag, translator,
				func(t ut.Translator) error { return t.Add(tag, text, true) },
				func(t ut.Translator, fe validator.FieldError) string {
					msg, err := t.T(fe.Tag(), fe.Field())
					if err != nil {
						return fe.Error()
					}
					return msg
				})
			if err != nil {
				log.Printf("register translation %s: %v", tag, err)
			}
		}
	})
}

func translate(fe validator.FieldError) string {
	if translator == nil {
		return fe.Error()
	}
	return fe.Translate(translator)
}
