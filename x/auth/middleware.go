// Package auth holds the request gates in front of the marketplace.
// Wallet authentication itself is an external collaborator concern;
// the only gate the core carries is an optional captcha check on
// submissions to keep the free tier from being scripted.
package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/xinguang/go-recaptcha"
	"go.opentelemetry.io/otel"

	"github.com/verimark/verimark/core"
)

var tracer = otel.Tracer("auth")

type Service interface {
	VerifyCaptcha(next echo.HandlerFunc) echo.HandlerFunc
}

type service struct {
	config  core.Config
	captcha *recaptcha.ReCAPTCHA
}

func NewService(config core.Config) Service {
	var captcha *recaptcha.ReCAPTCHA
	if config.CaptchaSecret != "" {
		captcha, _ = recaptcha.NewWithSecert(config.CaptchaSecret)
	}
	return &service{config: config, captcha: captcha}
}

// VerifyCaptcha checks the captcha token header when a secret is
// configured. Without a secret the gate is a no-op.
func (s *service) VerifyCaptcha(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, span := tracer.Start(c.Request().Context(), "Auth.Service.VerifyCaptcha")
		defer span.End()

		if s.captcha == nil {
			return next(c)
		}

		token := c.Request().Header.Get(core.CaptchaTokenHeader)
		if token == "" {
			return c.JSON(http.StatusForbidden, echo.Map{"success": false, "error": "captcha token is required"})
		}

		err := s.captcha.Verify(token)
		if err != nil {
			span.RecordError(err)
			return c.JSON(http.StatusForbidden, echo.Map{"success": false, "error": "captcha verification failed"})
		}

		c.Set(core.CaptchaVerifiedKey, true)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
