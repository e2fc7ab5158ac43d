package http

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/ledger"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/excel"
)

// MovementHandler maneja las peticiones HTTP del ledger de movimientos (protegido).
type MovementHandler struct {
	record   *ledger.RecordMovementUseCase
	queries  *ledger.MovementQueryUseCase
	exporter *excel.MovementExporter
}

// NewMovementHandler construye el handler.
func NewMovementHandler(record *ledger.RecordMovementUseCase, queries *ledger.MovementQueryUseCase, exporter *excel.MovementExporter) *MovementHandler {
	return &MovementHandler{record: record, queries: queries, exporter: exporter}
}

// Record godoc
// @Summary      Registrar movimiento de stock
// @Description  Aplica el delta al stock del producto y asienta el movimiento en la misma transacción.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordMovementRequest  true  "product_id, quantity (delta firmado), type, department_id o supplier_id según el tipo, reason"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.record.RecordMovement(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Search godoc
// @Summary      Buscar movimientos
// @Description  Filtros opcionales por producto, departamento, tipo y rango de fechas (end inclusivo).
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        product_id     query  int     false  "ID del producto"
// @Param        department_id  query  int     false  "ID del departamento"
// @Param        type           query  string  false  "Tipo de movimiento"
// @Param        start          query  string  false  "Fecha inicial YYYY-MM-DD"
// @Param        end            query  string  false  "Fecha final YYYY-MM-DD (inclusiva)"
// @Param        limit          query  int     false  "Límite"   default(20)
// @Param        offset         query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.MovementListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *MovementHandler) Search(c *fiber.Ctx) error {
	var in dto.SearchMovementsRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.queries.Search(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar movimientos a XLSX
// @Description  Mismos filtros que la búsqueda; devuelve la hoja de cálculo como descarga.
// @Tags         movements
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        product_id     query  int     false  "ID del producto"
// @Param        department_id  query  int     false  "ID del departamento"
// @Param        type           query  string  false  "Tipo de movimiento"
// @Param        start          query  string  false  "Fecha inicial YYYY-MM-DD"
// @Param        end            query  string  false  "Fecha final YYYY-MM-DD (inclusiva)"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movements/export [get]
func (h *MovementHandler) Export(c *fiber.Ctx) error {
	var in dto.SearchMovementsRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	records, err := h.queries.SearchRecords(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err)
	}

	var buf bytes.Buffer
	if err := h.exporter.Export(&buf, records); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	filename := fmt.Sprintf("movimientos_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}
