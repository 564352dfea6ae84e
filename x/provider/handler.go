// Package provider serves the static verification-provider catalog.
package provider

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	"github.com/verimark/verimark/core"
)

var tracer = otel.Tracer("provider")

type Handler interface {
	Get(c echo.Context) error
	List(c echo.Context) error
}

type handler struct {
	service core.ProviderService
}

func NewHandler(service core.ProviderService) Handler {
	return &handler{service: service}
}

// Get returns one provider by id
func (h handler) Get(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Provider.Handler.Get")
	defer span.End()

	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "id is required"})
	}

	provider, err := h.service.Get(ctx, id)
	if err != nil {
		if errors.Is(err, core.ErrorNotFound{}) {
			return c.JSON(http.StatusNotFound, echo.Map{"success": false, "error": "provider not found"})
		}
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "content": provider})
}

// List returns the whole catalog
func (h handler) List(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Provider.Handler.List")
	defer span.End()

	providers, err := h.service.List(ctx)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "content": providers})
}
