package handler

import (
	"fmt"
	"time"

	"github.com/bizledger/bizledger-api/internal/application/service"
	"github.com/bizledger/bizledger-api/internal/presentation/http/dto/response"
	"github.com/bizledger/bizledger-api/pkg/export"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler handles spreadsheet export downloads
type ExportHandler struct {
	invoiceService *service.InvoiceService
	expenseService *service.ExpenseService
}

// NewExportHandler creates a new export handler
func NewExportHandler(invoiceService *service.InvoiceService, expenseService *service.ExpenseService) *ExportHandler {
	return &ExportHandler{invoiceService: invoiceService, expenseService: expenseService}
}

// InvoiceRegister streams the full invoice register as an xlsx download
func (h *ExportHandler) InvoiceRegister(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	invoices, err := h.invoiceService.ListAllInvoices(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	buf, err := export.InvoiceRegister(invoices)
	if err != nil {
		response.InternalServerError(c, "Failed to generate invoice register")
		return
	}

	filename := fmt.Sprintf("invoice-register-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(200, xlsxContentType, buf.Bytes())
}

// ExpenseReport streams an expense report for a date range as an xlsx
// download. Defaults to the current month when no range is supplied.
func (h *ExportHandler) ExpenseReport(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 1, 0)
	if parsed := parseDateQuery(c, "start_date"); parsed != nil {
		from = *parsed
	}
	if parsed := parseDateQuery(c, "end_date"); parsed != nil {
		to = parsed.AddDate(0, 0, 1)
	}
	if !to.After(from) {
		response.BadRequest(c, "End date must not be before start date")
		return
	}

	expenses, err := h.expenseService.ListExpensesByRange(c.Request.Context(), *userID, from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	buf, err := export.ExpenseReport(expenses)
	if err != nil {
		response.InternalServerError(c, "Failed to generate expense report")
		return
	}

	filename := fmt.Sprintf("expense-report-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(200, xlsxContentType, buf.Bytes())
}
