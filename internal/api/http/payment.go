package http

import (
	"net/http"

	"gymdesk-backend/internal/domain"
	"gymdesk-backend/internal/service"
)

type PaymentHandler struct {
	paymentSvc service.PaymentService
}

func NewPaymentHandler(paymentSvc service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentSvc: paymentSvc}
}

func (h *PaymentHandler) History(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	startDate, err := parseDatePtr(q.Get("start_date"))
	if err != nil {
		writeValidationError(w, err)
		return
	}
	endDate, err := parseDatePtr(q.Get("end_date"))
	if err != nil {
		writeValidationError(w, err)
		return
	}

	filter := domain.PaymentFilter{
		MemberID:  queryInt64(r, "member_id"),
		StartDate: startDate,
		EndDate:   endDate,
		Method:    domain.PaymentMethod(q.Get("method")),
		Page:      queryInt32(r, "page", 1),
		PageSize:  queryInt32(r, "page_size", 20),
	}

	records, total, err := h.paymentSvc.History(r.Context(), userID(r), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: records, Total: total})
}

func (h *PaymentHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.paymentSvc.Summary(r.Context(), userID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
