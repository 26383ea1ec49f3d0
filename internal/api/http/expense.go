package http

import (
	"net/http"
	"time"

	"gymdesk-backend/internal/domain"
	"gymdesk-backend/internal/service"
)

type ExpenseHandler struct {
	expenseSvc service.ExpenseService
}

func NewExpenseHandler(expenseSvc service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseSvc: expenseSvc}
}

type createExpenseRequest struct {
	Title       string `json:"title" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Description string `json:"description"`
	Amount      int64  `json:"amount" validate:"required,gt=0"`
	ExpenseDate string `json:"expense_date"`
}

type updateExpenseRequest struct {
	Title       *string `json:"title"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
	Amount      *int64  `json:"amount" validate:"omitempty,gt=0"`
	ExpenseDate string  `json:"expense_date"`
}

type expensePaymentRequest struct {
	Amount int64  `json:"amount" validate:"required,gt=0"`
	Method string `json:"method"`
	Notes  string `json:"notes"`
}

func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createExpenseRequest
	if err := decode(r, &req); err != nil {
		writeValidationError(w, err)
		return
	}

	var expenseDate time.Time
	if req.ExpenseDate != "" {
		var err error
		expenseDate, err = parseDate(req.ExpenseDate)
		if err != nil {
			writeValidationError(w, err)
			return
		}
	}

	expense, err := h.expenseSvc.Create(r.Context(), userID(r), service.CreateExpenseInput{
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
		ExpenseDate: expenseDate,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, expense)
}

func (h *ExpenseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeValidationError(w, err)
		return
	}
	expense, err := h.expenseSvc.Get(r.Context(), userID(r), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, expense)
}

func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.expenseSvc.List(r.Context(), userID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, expenses)
}

func (h *ExpenseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeValidationError(w, err)
		return
	}
	var req updateExpenseRequest
	if err := decode(r, &req); err != nil {
		writeValidationError(w, err)
		return
	}
	expenseDate, err := parseDatePtr(req.ExpenseDate)
	if err != nil {
		writeValidationError(w, err)
		return
	}

	expense, err := h.expenseSvc.Update(r.Context(), userID(r), id, service.UpdateExpenseInput{
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
		ExpenseDate: expenseDate,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, expense)
}

func (h *ExpenseHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeValidationError(w, err)
		return
	}
	var req expensePaymentRequest
	if err := decode(r, &req); err != nil {
		writeValidationError(w, err)
		return
	}

	expense, err := h.expenseSvc.RecordPayment(r.Context(), userID(r), id, req.Amount,
		domain.PaymentMethod(req.Method), req.Notes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, expense)
}

func (h *ExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeValidationError(w, err)
		return
	}
	if err := h.expenseSvc.Delete(r.Context(), userID(r), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
