package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
)

// CategoryHandler maneja las peticiones HTTP para Category (protegido).
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.NameRequest  true  "Nombre de la categoría"
// @Success      201   {object}  dto.CategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.NameRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener categoría por ID
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la categoría"
// @Success      200  {object}  dto.CategoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [get]
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	out, err := h.uc.GetByID(c.Context(), int64(id))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar categorías
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        name    query  string  false  "Nombre parcial"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {array}  dto.CategoryResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.List(c.Context(), c.Query("name"), page)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ListActive godoc
// @Summary      Listar categorías activas
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CategoryResponse
// @Router       /api/categories/active [get]
func (h *CategoryHandler) ListActive(c *fiber.Ctx) error {
	out, err := h.uc.ListActive(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Renombrar categoría
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la categoría"
// @Param        body  body  dto.NameRequest  true  "Nuevo nombre"
// @Success      200   {object}  dto.CategoryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.NameRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), int64(id), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Desactivar categoría (borrado lógico, solo ADMIN)
// @Tags         categories
// @Security     Bearer
// @Param        id  path  int  true  "ID de la categoría"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	if err := h.uc.SoftDelete(c.Context(), int64(id)); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
