package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
)

// respondDomainError traduce errores de dominio al status y cuerpo HTTP.
// Stock insuficiente es 409 (conflicto de estado), el resto de validaciones 400.
func respondDomainError(c *fiber.Ctx, err error) error {
	var vErr *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el recurso ya existe"})
	case errors.Is(err, domain.ErrLoginAlreadyUsed):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "LOGIN_EXISTS", Message: "el login ya está registrado"})
	case errors.Is(err, domain.ErrIntegrityConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INTEGRITY_CONFLICT", Message: "el recurso está referenciado por otros registros"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "cuenta inactiva o acceso denegado"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "Insufficient stock for this operation"})
	case errors.As(err, &vErr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: vErr.Reason})
	case errors.Is(err, domain.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
