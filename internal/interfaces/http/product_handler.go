package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP para Product (protegido).
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto (stock inicial siempre 0)"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
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
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar productos
// @Description  Filtros opcionales por nombre (parcial), SKU exacto y estado. Sin filtro de estado solo devuelve activos.
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        name    query  string  false  "Nombre parcial"
// @Param        sku     query  string  false  "SKU exacto"
// @Param        active  query  bool    false  "Estado (por defecto solo activos)"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var active *bool
	if raw := c.Query("active"); raw != "" {
		b := c.QueryBool("active")
		active = &b
	}
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.Search(c.Context(), c.Query("name"), c.Query("sku"), active, page)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ListAll godoc
// @Summary      Listado mínimo de productos activos
// @Description  id, sku y nombre de todos los productos activos (para selectores).
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProductMinResponse
// @Router       /api/products/all [get]
func (h *ProductHandler) ListAll(c *fiber.Ctx) error {
	out, err := h.uc.ListActiveMin(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Datos a actualizar (el stock no se toca aquí)"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.UpdateProductRequest
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
// @Summary      Desactivar producto (borrado lógico)
// @Description  Falla si el producto aún tiene stock.
// @Tags         products
// @Security     Bearer
// @Param        id  path  int  true  "ID del producto"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	if err := h.uc.SoftDelete(c.Context(), int64(id)); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
