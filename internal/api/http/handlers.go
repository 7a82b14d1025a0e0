// Package http exposes the character-sheet operations over HTTP+JSON. Each
// operation is one POST route, mirroring the remote-procedure style of the
// client contract.
package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/text/language"

	"github.com/arkhamworks/investigator/internal/api"
	"github.com/arkhamworks/investigator/internal/character"
	apperrors "github.com/arkhamworks/investigator/internal/errors"
)

// Handler adapts the service operations to echo.
type Handler struct {
	service *api.Service
}

// NewHandler creates the HTTP handler set for a service.
func NewHandler(s *api.Service) *Handler {
	return &Handler{service: s}
}

type setPasswordRequest struct {
	System   string `json:"system"`
	ID       string `json:"id"`
	Referrer string `json:"referrer"`
	Token    string `json:"token"`
	Password string `json:"password"`
}

type hasPasswordRequest struct {
	System string `json:"system"`
	ID     string `json:"id"`
}

type verifyPasswordRequest struct {
	System   string `json:"system"`
	ID       string `json:"id"`
	Referrer string `json:"referrer"`
	Password string `json:"password"`
}

type addCharacterRequest struct {
	System    string              `json:"system"`
	Character character.Character `json:"character"`
}

type getCharacterRequest struct {
	System string `json:"system"`
	ID     string `json:"id"`
}

type setCharacterRequest struct {
	System    string              `json:"system"`
	ID        string              `json:"id"`
	Referrer  string              `json:"referrer"`
	Token     string              `json:"token"`
	Character character.Character `json:"character"`
}

type updateCharacterRequest struct {
	System   string          `json:"system"`
	ID       string          `json:"id"`
	Referrer string          `json:"referrer"`
	Token    string          `json:"token"`
	Patch    character.Patch `json:"patch"`
}

// SetPassword protects a character with a password and returns a new token.
func (h *Handler) SetPassword(c echo.Context) error {
	req := new(setPasswordRequest)
	if err := c.Bind(req); err != nil {
		return invalidPayload(c)
	}
	token, err := h.service.SetPassword(c.Request().Context(), req.System, req.ID, req.Referrer, req.Token, req.Password)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"token": token})
}

// HasPassword reports whether a character is password protected.
func (h *Handler) HasPassword(c echo.Context) error {
	req := new(hasPasswordRequest)
	if err := c.Bind(req); err != nil {
		return invalidPayload(c)
	}
	has, err := h.service.HasPassword(c.Request().Context(), req.System, req.ID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"hasPassword": has})
}

// VerifyPassword checks a password and returns a token, empty when the
// character is unprotected.
func (h *Handler) VerifyPassword(c echo.Context) error {
	req := new(verifyPasswordRequest)
	if err := c.Bind(req); err != nil {
		return invalidPayload(c)
	}
	token, err := h.service.VerifyPassword(c.Request().Context(), req.System, req.ID, req.Referrer, req.Password)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"token": token})
}

// AddCharacter stores a new character document and returns its id.
func (h *Handler) AddCharacter(c echo.Context) error {
	req := new(addCharacterRequest)
	if err := c.Bind(req); err != nil {
		return invalidPayload(c)
	}
	id, err := h.service.AddCharacter(c.Request().Context(), req.System, req.Character)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"id": id})
}

// GetCharacter returns a character document by id.
func (h *Handler) GetCharacter(c echo.Context) error {
	req := new(getCharacterRequest)
	if err := c.Bind(req); err != nil {
		return invalidPayload(c)
	}
	doc, err := h.service.GetCharacter(c.Request().Context(), req.System, req.ID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, doc)
}

// SetCharacter replaces an existing character document.
func (h *Handler) SetCharacter(c echo.Context) error {
	req := new(setCharacterRequest)
	if err := c.Bind(req); err != nil {
		return invalidPayload(c)
	}
	if err := h.service.SetCharacter(c.Request().Context(), req.System, req.ID, req.Referrer, req.Token, req.Character); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// UpdateCharacter shallow-merges a patch onto a character document.
func (h *Handler) UpdateCharacter(c echo.Context) error {
	req := new(updateCharacterRequest)
	if err := c.Bind(req); err != nil {
		return invalidPayload(c)
	}
	if err := h.service.UpdateCharacter(c.Request().Context(), req.System, req.ID, req.Referrer, req.Token, req.Patch); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Systems lists the registered game systems.
func (h *Handler) Systems(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string][]string{"systems": h.service.Systems()})
}

// Rules returns the labelled rule tables of one game system.
func (h *Handler) Rules(c echo.Context) error {
	view, err := h.service.Rules(c.Request().Context(), c.Param("system"), locale(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

// Health is the liveness endpoint.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func invalidPayload(c echo.Context) error {
	return fail(c, apperrors.New(apperrors.CodeCharacterInvalid, "invalid request payload"))
}

// fail renders a domain error as the JSON error envelope, localized by the
// Accept-Language header.
func fail(c echo.Context, err error) error {
	status, body := apperrors.HandleError(err, locale(c))
	return c.JSON(status, body)
}

// locale extracts the preferred locale from the Accept-Language header.
// Catalog matching downstream handles fallback to en-US.
func locale(c echo.Context) string {
	tags, _, err := language.ParseAcceptLanguage(c.Request().Header.Get("Accept-Language"))
	if err != nil || len(tags) == 0 {
		return ""
	}
	return tags[0].String()
}
