package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
)

// DepartmentHandler maneja las peticiones HTTP para Department (protegido).
type DepartmentHandler struct {
	uc *usecase.DepartmentUseCase
}

// NewDepartmentHandler construye el handler.
func NewDepartmentHandler(uc *usecase.DepartmentUseCase) *DepartmentHandler {
	return &DepartmentHandler{uc: uc}
}

// Create godoc
// @Summary      Crear departamento
// @Tags         departments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.NameRequest  true  "Nombre del departamento"
// @Success      201   {object}  dto.DepartmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/departments [post]
func (h *DepartmentHandler) Create(c *fiber.Ctx) error {
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
// @Summary      Obtener departamento por ID
// @Tags         departments
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del departamento"
// @Success      200  {object}  dto.DepartmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/departments/{id} [get]
func (h *DepartmentHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar departamentos
// @Tags         departments
// @Security     Bearer
// @Produce      json
// @Param        name    query  string  false  "Nombre parcial"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {array}  dto.DepartmentResponse
// @Router       /api/departments [get]
func (h *DepartmentHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.List(c.Context(), c.Query("name"), page)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ListActive godoc
// @Summary      Listar departamentos activos
// @Tags         departments
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.DepartmentResponse
// @Router       /api/departments/active [get]
func (h *DepartmentHandler) ListActive(c *fiber.Ctx) error {
	out, err := h.uc.ListActive(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Renombrar departamento
// @Tags         departments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del departamento"
// @Param        body  body  dto.NameRequest  true  "Nuevo nombre"
// @Success      200   {object}  dto.DepartmentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/departments/{id} [put]
func (h *DepartmentHandler) Update(c *fiber.Ctx) error {
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
// @Summary      Desactivar departamento (borrado lógico, solo ADMIN)
// @Tags         departments
// @Security     Bearer
// @Param        id  path  int  true  "ID del departamento"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/departments/{id} [delete]
func (h *DepartmentHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	if err := h.uc.SoftDelete(c.Context(), int64(id)); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
