package controller

import (
	"gestionforestal/services"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestSafeNext(t *testing.T) {
	cases := map[string]string{
		"/checklists/":         "/checklists/",
		"/visitas/?q=bosque":   "/visitas/?q=bosque",
		"":                     "",
		"https://evil.example": "",
		"//evil.example":       "",
		"/\\evil.example":      "",
		"dashboard/":           "",
	}
	for in, want := range cases {
		if got := SafeNext(in); got != want {
			t.Errorf("SafeNext(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFieldErrorsFromServiceValidation(t *testing.T) {
	fields, ok := FieldErrors(services.NewValidationError("codigo_visita", "duplicado"))
	if !ok || fields["codigo_visita"] != "duplicado" {
		t.Fatalf("unexpected %v %v", fields, ok)
	}
	if _, ok := FieldErrors(services.ErrNotFound); ok {
		t.Fatalf("not-found is not a field error")
	}
}

func TestFlashSurvivesRedirectOnce(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/set", func(c *gin.Context) {
		Flash(c, LevelSuccess, "guardado")
		SeeOther(c, "/show")
	})
	router.GET("/show", func(c *gin.Context) {
		Render(c, http.StatusOK, "", gin.H{})
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/set", nil))
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != messagesCookie {
		t.Fatalf("expected messages cookie, got %v", cookies)
	}

	req := httptest.NewRequest(http.MethodGet, "/show", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if body := rec.Body.String(); body != `{"messages":[{"level":"success","text":"guardado"}]}` {
		t.Fatalf("unexpected body %s", body)
	}
	cleared := rec.Result().Cookies()
	if len(cleared) != 1 || cleared[0].MaxAge >= 0 {
		t.Fatalf("expected messages cookie to be cleared, got %v", cleared)
	}
}
