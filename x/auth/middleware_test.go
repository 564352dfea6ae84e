package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/verimark/verimark/core"
)

func TestVerifyCaptchaDisabled(t *testing.T) {
	service := NewService(core.Config{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	next := func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	}

	// no configured secret means the gate passes everything through
	err := service.VerifyCaptcha(next)(c)
	assert.NoError(t, err)
	assert.True(t, called)
}

func TestVerifyCaptchaMissingToken(t *testing.T) {
	service := NewService(core.Config{CaptchaSecret: "test-secret"})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	next := func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	}

	err := service.VerifyCaptcha(next)(c)
	assert.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "captcha token is required")
}
