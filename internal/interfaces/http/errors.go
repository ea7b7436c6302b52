package http

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/luviel-fluxo/internal/application/dto"
	"github.com/jhoicas/luviel-fluxo/internal/domain"
)

var validate = validator.New()

// errResponded indica que bind ya escribió la respuesta de error; el handler sólo debe retornar.
var errResponded = errors.New("http: respuesta ya escrita")

// bind decodifica el JSON del cuerpo y aplica las etiquetas `validate`.
func bind(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
		return errResponded
	}
	if err := validate.Struct(out); err != nil {
		msg := err.Error()
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			msg = "campo inválido: " + verrs[0].Field() + " (" + verrs[0].Tag() + ")"
		}
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
		return errResponded
	}
	return nil
}

// writeError traduce errores de dominio a status y código HTTP.
func writeError(c *fiber.Ctx, err error) error {
	status, code := fiber.StatusInternalServerError, "INTERNAL"
	switch {
	case errors.Is(err, domain.ErrLoginNotFound):
		status, code = fiber.StatusNotFound, "LOGIN_NOT_FOUND"
	case errors.Is(err, domain.ErrWrongPassword):
		status, code = fiber.StatusUnauthorized, "WRONG_PASSWORD"
	case errors.Is(err, domain.ErrNotFound):
		status, code = fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrUnauthorized):
		status, code = fiber.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, domain.ErrForbidden):
		status, code = fiber.StatusForbidden, "FORBIDDEN"
	case errors.Is(err, domain.ErrInsufficientStock):
		status, code = fiber.StatusConflict, "INSUFFICIENT_STOCK"
	case errors.Is(err, domain.ErrReceivedBelowTotal):
		status, code = fiber.StatusUnprocessableEntity, "RECEIVED_BELOW_TOTAL"
	case errors.Is(err, domain.ErrEmptyCart):
		status, code = fiber.StatusBadRequest, "EMPTY_CART"
	case errors.Is(err, domain.ErrPasswordMismatch):
		status, code = fiber.StatusBadRequest, "PASSWORD_MISMATCH"
	case errors.Is(err, domain.ErrInvalidInput):
		status, code = fiber.StatusBadRequest, "VALIDATION"
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}
