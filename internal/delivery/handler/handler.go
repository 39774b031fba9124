package handler

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"files-manager/internal/application/apperrors"
	"files-manager/internal/application/command"
	"files-manager/internal/application/interfaces"
)

const tokenHeader = "X-Token"

type Handler struct {
	app   interfaces.AppService
	auth  interfaces.AuthService
	users interfaces.UserService
	files interfaces.FileService
}

func NewHandler(
	app interfaces.AppService,
	auth interfaces.AuthService,
	users interfaces.UserService,
	files interfaces.FileService,
) *Handler {
	return &Handler{
		app:   app,
		auth:  auth,
		users: users,
		files: files,
	}
}

// GetStatus reports per-dependency liveness. 200 only when both the
// session store and the metadata store answer.
func (h *Handler) GetStatus(c echo.Context) error {
	status := h.app.Status(c.Request().Context())
	code := http.StatusOK
	if !status.Healthy() {
		code = http.StatusInternalServerError
	}
	return c.JSON(code, status)
}

func (h *Handler) GetStats(c echo.Context) error {
	stats, err := h.app.Stats(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("stats: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"Error": "Internal Server Error"})
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *Handler) PostUsers(c echo.Context) error {
	var registerCommand command.RegisterUserCommand
	if err := c.Bind(&registerCommand); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": apperrors.ErrMissingEmail.Error()})
	}

	result, err := h.users.Register(c.Request().Context(), &registerCommand)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, result.Result)
}

// GetConnect turns a Basic credential pair into a bearer token.
func (h *Handler) GetConnect(c echo.Context) error {
	email, password, ok := basicCredentials(c.Request().Header.Get(echo.HeaderAuthorization))
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": apperrors.ErrUnauthorized.Error()})
	}

	result, err := h.auth.Login(c.Request().Context(), &command.LoginCommand{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) GetDisconnect(c echo.Context) error {
	if err := h.auth.Logout(c.Request().Context(), c.Request().Header.Get(tokenHeader)); err != nil {
		return h.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) GetMe(c echo.Context) error {
	result, err := h.users.Me(c.Request().Context(), c.Request().Header.Get(tokenHeader))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, result.Result)
}

func (h *Handler) PostFiles(c echo.Context) error {
	var uploadCommand command.UploadFileCommand
	if err := c.Bind(&uploadCommand); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": apperrors.ErrMissingName.Error()})
	}

	result, err := h.files.Upload(c.Request().Context(), c.Request().Header.Get(tokenHeader), &uploadCommand)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, result.Result)
}

// fail maps the error taxonomy onto status codes. Anything outside the
// expected set is logged with context and returned as an opaque 500.
func (h *Handler) fail(c echo.Context, err error) error {
	switch {
	case errors.Is(err, apperrors.ErrUnauthorized):
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": err.Error()})
	case errors.Is(err, apperrors.ErrTooManyRequests):
		return c.JSON(http.StatusTooManyRequests, echo.Map{"error": err.Error()})
	case apperrors.IsValidation(err):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	default:
		c.Logger().Errorf("%s %s: %v", c.Request().Method, c.Path(), err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal Server Error"})
	}
}

// basicCredentials decodes an `Authorization: Basic <b64(email:password)>`
// header, splitting on the first colon only.
func basicCredentials(header string) (email, password string, ok bool) {
	const prefix = "Basic "
	if !strings.HasPrefix(header, prefix) {
		return "", "", false
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(header, prefix))
	if err != nil {
		return "", "", false
	}
	email, password, ok = strings.Cut(string(decoded), ":")
	return email, password, ok
}
