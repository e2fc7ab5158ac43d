package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/reports"
)

// ReportHandler maneja las peticiones HTTP de reportes (protegido, solo lectura).
type ReportHandler struct {
	uc *reports.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Dashboard godoc
// @Summary      Resumen del inventario
// @Description  Valor total del stock activo, productos en o bajo el mínimo y los 10 movimientos más recientes.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// DepartmentConsumption godoc
// @Summary      Consumo por departamento
// @Description  Agrega las salidas por requisición del rango [start, end] por departamento: valor y unidades.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        start  query  string  true  "Fecha inicial YYYY-MM-DD"
// @Param        end    query  string  true  "Fecha final YYYY-MM-DD (inclusiva)"
// @Success      200    {array}   dto.DepartmentConsumptionDTO
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/reports/department-consumption [get]
func (h *ReportHandler) DepartmentConsumption(c *fiber.Ctx) error {
	in := dto.ConsumptionReportRequest{Start: c.Query("start"), End: c.Query("end")}
	out, err := h.uc.DepartmentConsumption(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// DepartmentConsumptionPDF godoc
// @Summary      Consumo por departamento en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        start  query  string  true  "Fecha inicial YYYY-MM-DD"
// @Param        end    query  string  true  "Fecha final YYYY-MM-DD (inclusiva)"
// @Success      200    {file}    binary
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/reports/department-consumption/pdf [get]
func (h *ReportHandler) DepartmentConsumptionPDF(c *fiber.Ctx) error {
	in := dto.ConsumptionReportRequest{Start: c.Query("start"), End: c.Query("end")}
	pdfBytes, err := h.uc.DepartmentConsumptionPDF(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	filename := fmt.Sprintf("consumo_%s_%s.pdf", in.Start, in.End)
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
