package handler

import (
	"github.com/bizledger/bizledger-api/internal/application/service"
	"github.com/bizledger/bizledger-api/internal/domain/enum"
	"github.com/bizledger/bizledger-api/internal/domain/repository"
	"github.com/bizledger/bizledger-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InvoiceHandler handles invoice HTTP requests
type InvoiceHandler struct {
	invoiceService *service.InvoiceService
	paymentService *service.PaymentService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService, paymentService *service.PaymentService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService, paymentService: paymentService}
}

type invoiceRequest struct {
	VendorID           *uuid.UUID        `json:"vendor_id"`
	InvoiceDate        string            `json:"invoice_date"`
	BuyerPONo          *string           `json:"buyer_po_no"`
	BuyerPODate        string            `json:"buyer_po_date"`
	TransportationCost float64           `json:"transportation_cost" binding:"gte=0"`
	Discount           float64           `json:"discount" binding:"gte=0"`
	DueDate            string            `json:"due_date"`
	SourceOrderID      *uuid.UUID        `json:"source_order_id"`
	Items              []lineItemRequest `json:"items" binding:"required,min=1,dive"`
}

// Create handles creating an invoice
func (h *InvoiceHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req invoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	invoiceDate, ok := parseDate(req.InvoiceDate)
	if !ok {
		response.BadRequest(c, "Invalid invoice date, expected YYYY-MM-DD")
		return
	}
	dueDate, ok := parseDate(req.DueDate)
	if !ok {
		response.BadRequest(c, "Invalid due date, expected YYYY-MM-DD")
		return
	}
	poDate, ok := parseDate(req.BuyerPODate)
	if !ok {
		response.BadRequest(c, "Invalid buyer PO date, expected YYYY-MM-DD")
		return
	}

	input := &service.CreateInvoiceInput{
		VendorID:           req.VendorID,
		InvoiceDate:        invoiceDate,
		BuyerPONo:          req.BuyerPONo,
		TransportationCost: req.TransportationCost,
		Discount:           req.Discount,
		DueDate:            dueDate,
		SourceOrderID:      req.SourceOrderID,
		Items:              toLineItemInputs(req.Items),
	}
	if !poDate.IsZero() {
		input.BuyerPODate = &poDate
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), *userID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Invoice created successfully", invoice)
}

// Get handles getting a single invoice
func (h *InvoiceHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), *userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice retrieved successfully", invoice)
}

// Update handles updating an invoice
func (h *InvoiceHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	var req invoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	invoiceDate, ok := parseDate(req.InvoiceDate)
	if !ok {
		response.BadRequest(c, "Invalid invoice date, expected YYYY-MM-DD")
		return
	}
	dueDate, ok := parseDate(req.DueDate)
	if !ok {
		response.BadRequest(c, "Invalid due date, expected YYYY-MM-DD")
		return
	}
	poDate, ok := parseDate(req.BuyerPODate)
	if !ok {
		response.BadRequest(c, "Invalid buyer PO date, expected YYYY-MM-DD")
		return
	}

	input := &service.UpdateInvoiceInput{
		VendorID:           req.VendorID,
		InvoiceDate:        invoiceDate,
		BuyerPONo:          req.BuyerPONo,
		TransportationCost: req.TransportationCost,
		Discount:           req.Discount,
		DueDate:            dueDate,
		Items:              toLineItemInputs(req.Items),
	}
	if !poDate.IsZero() {
		input.BuyerPODate = &poDate
	}

	invoice, err := h.invoiceService.UpdateInvoice(c.Request.Context(), *userID, id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice updated successfully", invoice)
}

// Delete handles deleting an invoice
func (h *InvoiceHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), *userID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice deleted successfully", nil)
}

// List handles listing invoices with filtering
func (h *InvoiceHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	params := &repository.InvoiceFilterParams{
		Pagination: parsePagination(c),
		Search:     c.Query("search"),
		VendorID:   parseUUIDQuery(c, "vendor_id"),
		StartDate:  parseDateQuery(c, "start_date"),
		EndDate:    parseDateQuery(c, "end_date"),
	}
	if raw := c.Query("status"); raw != "" {
		status := enum.InvoiceStatusFromString(raw)
		params.Status = &status
	}

	result, err := h.invoiceService.ListInvoices(c.Request.Context(), *userID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Invoices retrieved successfully", result)
}

// ListPayments handles listing the payments recorded against an invoice
func (h *InvoiceHandler) ListPayments(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	payments, err := h.paymentService.ListInvoicePayments(c.Request.Context(), *userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice payments retrieved successfully", payments)
}
