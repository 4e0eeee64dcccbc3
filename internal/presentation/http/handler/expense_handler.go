package handler

import (
	"strconv"
	"time"

	"github.com/bizledger/bizledger-api/internal/application/service"
	"github.com/bizledger/bizledger-api/internal/domain/enum"
	"github.com/bizledger/bizledger-api/internal/domain/repository"
	"github.com/bizledger/bizledger-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ExpenseHandler handles expense HTTP requests
type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

type expenseRequest struct {
	Date          string  `json:"date"`
	Category      string  `json:"category" binding:"required"`
	Description   string  `json:"description" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	PaymentMode   string  `json:"payment_mode"`
	Status        string  `json:"status"`
	AttachmentRef *string `json:"attachment_ref"`
}

func (r *expenseRequest) toInput() (*service.ExpenseInput, bool) {
	date, ok := parseDate(r.Date)
	if !ok {
		return nil, false
	}
	return &service.ExpenseInput{
		Date:          date,
		Category:      enum.ExpenseCategory(r.Category),
		Description:   r.Description,
		Amount:        r.Amount,
		PaymentMode:   enum.PaymentMode(r.PaymentMode),
		Status:        enum.ExpenseStatus(r.Status),
		AttachmentRef: r.AttachmentRef,
	}, true
}

// Create handles creating an expense
func (h *ExpenseHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input, ok := req.toInput()
	if !ok {
		response.BadRequest(c, "Invalid expense date, expected YYYY-MM-DD")
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), *userID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Expense created successfully", expense)
}

// Get handles getting a single expense
func (h *ExpenseHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid expense ID")
		return
	}

	expense, err := h.expenseService.GetExpense(c.Request.Context(), *userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expense retrieved successfully", expense)
}

// Update handles updating an expense
func (h *ExpenseHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid expense ID")
		return
	}

	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input, ok := req.toInput()
	if !ok {
		response.BadRequest(c, "Invalid expense date, expected YYYY-MM-DD")
		return
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), *userID, id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expense updated successfully", expense)
}

// Delete handles deleting an expense
func (h *ExpenseHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid expense ID")
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), *userID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expense deleted successfully", nil)
}

// List handles listing expenses with filtering
func (h *ExpenseHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	params := &repository.ExpenseFilterParams{
		Pagination: parsePagination(c),
		Search:     c.Query("search"),
		StartDate:  parseDateQuery(c, "start_date"),
		EndDate:    parseDateQuery(c, "end_date"),
	}
	if raw := c.Query("category"); raw != "" {
		category := enum.ExpenseCategory(raw)
		params.Category = &category
	}
	if raw := c.Query("status"); raw != "" {
		status := enum.ExpenseStatus(raw)
		params.Status = &status
	}

	result, err := h.expenseService.ListExpenses(c.Request.Context(), *userID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Expenses retrieved successfully", result)
}

// MonthlySummary handles the per-month expense rollup. Defaults to the
// current month when year/month are not supplied.
func (h *ExpenseHandler) MonthlySummary(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	now := time.Now()
	year := now.Year()
	month := now.Month()
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(c, "Invalid year")
			return
		}
		year = parsed
	}
	if raw := c.Query("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 12 {
			response.BadRequest(c, "Invalid month")
			return
		}
		month = time.Month(parsed)
	}

	summary, err := h.expenseService.MonthlySummary(c.Request.Context(), *userID, year, month)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expense summary retrieved successfully", summary)
}

// Categories lists the accepted expense categories
func (h *ExpenseHandler) Categories(c *gin.Context) {
	response.OK(c, "Expense categories retrieved successfully", enum.AllExpenseCategories())
}
