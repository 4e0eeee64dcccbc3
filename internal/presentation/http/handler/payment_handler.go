package handler

import (
	"time"

	"github.com/bizledger/bizledger-api/internal/application/service"
	"github.com/bizledger/bizledger-api/internal/domain/enum"
	"github.com/bizledger/bizledger-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PaymentHandler handles payment HTTP requests
type PaymentHandler struct {
	paymentService *service.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

type paymentRequest struct {
	InvoiceID   uuid.UUID `json:"invoice_id" binding:"required"`
	PaymentDate string    `json:"payment_date"`
	Amount      float64   `json:"amount" binding:"required,gt=0"`
	Method      string    `json:"method"`
	ReferenceNo *string   `json:"reference_no"`
	Remarks     *string   `json:"remarks"`
}

// Create handles recording a payment against an invoice
func (h *PaymentHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	paymentDate := time.Now()
	if req.PaymentDate != "" {
		parsed, ok := parseDate(req.PaymentDate)
		if !ok {
			response.BadRequest(c, "Invalid payment date, expected YYYY-MM-DD")
			return
		}
		paymentDate = parsed
	}

	input := &service.CreatePaymentInput{
		InvoiceID:   req.InvoiceID,
		PaymentDate: paymentDate,
		Amount:      req.Amount,
		Method:      enum.PaymentMethod(req.Method),
		ReferenceNo: req.ReferenceNo,
		Remarks:     req.Remarks,
	}

	payment, err := h.paymentService.CreatePayment(c.Request.Context(), *userID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Payment recorded successfully", payment)
}

// Get handles getting a single payment
func (h *PaymentHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid payment ID")
		return
	}

	payment, err := h.paymentService.GetPayment(c.Request.Context(), *userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment retrieved successfully", payment)
}

// Delete handles deleting a payment and restoring the invoice balance
func (h *PaymentHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid payment ID")
		return
	}

	if err := h.paymentService.DeletePayment(c.Request.Context(), *userID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment deleted successfully", nil)
}

// List handles listing payments
func (h *PaymentHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	result, err := h.paymentService.ListPayments(c.Request.Context(), *userID, parsePagination(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Payments retrieved successfully", result)
}
