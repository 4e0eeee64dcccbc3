package handler

import (
	"time"

	"github.com/bizledger/bizledger-api/internal/application/service"
	"github.com/bizledger/bizledger-api/internal/domain/enum"
	"github.com/bizledger/bizledger-api/internal/domain/repository"
	"github.com/bizledger/bizledger-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SaleOrderHandler handles sale order HTTP requests
type SaleOrderHandler struct {
	orderService *service.SaleOrderService
}

// NewSaleOrderHandler creates a new sale order handler
func NewSaleOrderHandler(orderService *service.SaleOrderService) *SaleOrderHandler {
	return &SaleOrderHandler{orderService: orderService}
}

type lineItemRequest struct {
	Particulars   string  `json:"particulars" binding:"required"`
	OrderedQty    float64 `json:"ordered_qty" binding:"required,gt=0"`
	DispatchedQty float64 `json:"dispatched_qty" binding:"gte=0"`
	BasicAmount   float64 `json:"basic_amount" binding:"gte=0"`
	TaxPercent    float64 `json:"tax_percent" binding:"gte=0,lte=100"`
}

func toLineItemInputs(items []lineItemRequest) []service.LineItemInput {
	inputs := make([]service.LineItemInput, 0, len(items))
	for _, it := range items {
		inputs = append(inputs, service.LineItemInput{
			Particulars:   it.Particulars,
			OrderedQty:    it.OrderedQty,
			DispatchedQty: it.DispatchedQty,
			BasicAmount:   it.BasicAmount,
			TaxPercent:    it.TaxPercent,
		})
	}
	return inputs
}

// parseDate parses a YYYY-MM-DD request field, empty string yields zero time
func parseDate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, true
	}
	t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

type saleOrderRequest struct {
	CustomerID *uuid.UUID        `json:"customer_id"`
	OrderDate  string            `json:"order_date"`
	BuyerPORef *string           `json:"buyer_po_ref"`
	Notes      *string           `json:"notes"`
	Items      []lineItemRequest `json:"items" binding:"required,min=1,dive"`
}

// Create handles creating a sale order
func (h *SaleOrderHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req saleOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	orderDate, ok := parseDate(req.OrderDate)
	if !ok {
		response.BadRequest(c, "Invalid order date, expected YYYY-MM-DD")
		return
	}

	order, err := h.orderService.CreateSaleOrder(c.Request.Context(), *userID, &service.CreateSaleOrderInput{
		CustomerID: req.CustomerID,
		OrderDate:  orderDate,
		BuyerPORef: req.BuyerPORef,
		Notes:      req.Notes,
		Items:      toLineItemInputs(req.Items),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale order created successfully", order)
}

// Get handles getting a single sale order
func (h *SaleOrderHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale order ID")
		return
	}

	order, err := h.orderService.GetSaleOrder(c.Request.Context(), *userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale order retrieved successfully", order)
}

// Update handles updating a sale order
func (h *SaleOrderHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale order ID")
		return
	}

	var req struct {
		saleOrderRequest
		Status *enum.SaleOrderStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	orderDate, ok := parseDate(req.OrderDate)
	if !ok {
		response.BadRequest(c, "Invalid order date, expected YYYY-MM-DD")
		return
	}

	order, err := h.orderService.UpdateSaleOrder(c.Request.Context(), *userID, id, &service.UpdateSaleOrderInput{
		CustomerID: req.CustomerID,
		OrderDate:  orderDate,
		BuyerPORef: req.BuyerPORef,
		Notes:      req.Notes,
		Status:     req.Status,
		Items:      toLineItemInputs(req.Items),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale order updated successfully", order)
}

// UpdateStatus handles moving a sale order through its lifecycle
func (h *SaleOrderHandler) UpdateStatus(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale order ID")
		return
	}

	var req struct {
		Status enum.SaleOrderStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.orderService.UpdateStatus(c.Request.Context(), *userID, id, req.Status); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale order status updated successfully", nil)
}

// Delete handles deleting a sale order
func (h *SaleOrderHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale order ID")
		return
	}

	if err := h.orderService.DeleteSaleOrder(c.Request.Context(), *userID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale order deleted successfully", nil)
}

// List handles listing sale orders with filtering
func (h *SaleOrderHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	params := &repository.SaleOrderFilterParams{
		Pagination: parsePagination(c),
		Search:     c.Query("search"),
		CustomerID: parseUUIDQuery(c, "customer_id"),
		StartDate:  parseDateQuery(c, "start_date"),
		EndDate:    parseDateQuery(c, "end_date"),
	}
	if raw := c.Query("status"); raw != "" {
		status := enum.SaleOrderStatusFromString(raw)
		params.Status = &status
	}

	result, err := h.orderService.ListSaleOrders(c.Request.Context(), *userID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Sale orders retrieved successfully", result)
}
