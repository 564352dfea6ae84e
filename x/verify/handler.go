// Package verify exposes the marketplace REST surface: submit content,
// buy a verification, attach mint/payment references, read the ledger.
package verify

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"golang.org/x/exp/slices"

	"github.com/verimark/verimark/core"
)

var tracer = otel.Tracer("verify")

type Handler interface {
	Submit(c echo.Context) error
	Verify(c echo.Context) error
	AttachNft(c echo.Context) error
	AttachTx(c echo.Context) error
	GetUser(c echo.Context) error
}

type handler struct {
	service core.VerifyService
}

func NewHandler(service core.VerifyService) Handler {
	return &handler{service: service}
}

// Submit stores a text sample and returns its address and secret
func (h handler) Submit(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Verify.Handler.Submit")
	defer span.End()

	var request submitRequest
	err := c.Bind(&request)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": err.Error()})
	}

	if request.Identity == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "identity is required"})
	}
	if request.Payload == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "payload is required"})
	}

	result, err := h.service.Submit(ctx, request.Identity, coercePayload(request.Payload))
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": err.Error()})
	}

	return c.JSON(http.StatusCreated, echo.Map{"success": true, "content": result})
}

// Verify scores a stored sample with the chosen provider
func (h handler) Verify(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Verify.Handler.Verify")
	defer span.End()

	var request verifyRequest
	err := c.Bind(&request)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": err.Error()})
	}

	if request.Identity == "" || request.Address == "" || request.Secret == "" || request.ProviderID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "identity, address, secret and providerId are required"})
	}
	if !slices.Contains(core.Chains, request.Chain) {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "invalid chain"})
	}

	verdict, err := h.service.Verify(ctx, request.Identity, request.Address, request.Secret, request.ProviderID, request.Chain)
	if err != nil {
		if errors.Is(err, core.ErrorInvalidCredential{}) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "error": "invalid credentials"})
		}
		if errors.Is(err, core.ErrorNotFound{}) {
			return c.JSON(http.StatusNotFound, echo.Map{"success": false, "error": "content not found"})
		}
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "content": core.VerifyResult{
		IsHumanWritten:  verdict.IsHumanWritten,
		ConfidenceScore: verdict.ConfidenceScore,
		ProviderID:      verdict.ProviderID,
		Chain:           verdict.Chain,
		Address:         request.Address,
		Secret:          request.Secret,
	}})
}

// AttachNft records a token id minted by the external NFT collaborator
func (h handler) AttachNft(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Verify.Handler.AttachNft")
	defer span.End()

	var request nftRequest
	err := c.Bind(&request)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": err.Error()})
	}

	if request.Identity == "" || request.Address == "" || request.NftTokenID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "identity, address and nftTokenId are required"})
	}

	err = h.service.AttachNftTokenID(ctx, request.Identity, request.Address, request.NftTokenID)
	if err != nil {
		if errors.Is(err, core.ErrorNotFound{}) {
			return c.JSON(http.StatusNotFound, echo.Map{"success": false, "error": "submission not found"})
		}
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// AttachTx records a payment reference from the external payment collaborator
func (h handler) AttachTx(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Verify.Handler.AttachTx")
	defer span.End()

	var request txRequest
	err := c.Bind(&request)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": err.Error()})
	}

	if request.Identity == "" || request.Address == "" || request.TxRef == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "identity, address and txRef are required"})
	}

	err = h.service.AttachExternalTxRef(ctx, request.Identity, request.Address, request.TxRef)
	if err != nil {
		if errors.Is(err, core.ErrorNotFound{}) {
			return c.JSON(http.StatusNotFound, echo.Map{"success": false, "error": "submission not found"})
		}
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// GetUser returns the ledger view, creating the account on first sight
func (h handler) GetUser(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Verify.Handler.GetUser")
	defer span.End()

	identity := c.Param("identity")
	if identity == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "identity is required"})
	}

	user, err := h.service.GetUser(ctx, identity)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "content": user})
}

// coercePayload keeps the permissive input contract: strings pass
// through, anything else is stored as its JSON encoding.
func coercePayload(payload any) string {
	if s, ok := payload.(string); ok {
		return s
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return ""
	}
	return string(encoded)
}
