package http

import (
	"net/http"

	"gymdesk-backend/internal/domain"
	"gymdesk-backend/internal/service"
)

// BillableHandler serves both membership and addon routes; each route set is
// registered with its kind fixed so the URLs stay separate while the
// handlers and the service logic are shared.
type BillableHandler struct {
	billingSvc service.BillingService
	kind       domain.BillableKind
}

func NewBillableHandler(billingSvc service.BillingService, kind domain.BillableKind) *BillableHandler {
	return &BillableHandler{billingSvc: billingSvc, kind: kind}
}

type createBillableRequest struct {
	MemberID   int64  `json:"member_id" validate:"required"`
	OfferingID int64  `json:"offering_id" validate:"required"`
	TrainerID  *int64 `json:"trainer_id"`
	StartDate  string `json:"start_date" validate:"required"`
	EndDate    string `json:"end_date" validate:"required"`
	Paid       int64  `json:"paid" validate:"gte=0"`
	Discount   int64  `json:"discount" validate:"gte=0"`
	Method     string `json:"method"`
}

type updateBillableRequest struct {
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	OfferingID *int64 `json:"offering_id"`
	TrainerID  *int64 `json:"trainer_id"`
	SetTrainer bool   `json:"set_trainer"`
}

type recordPaymentRequest struct {
	Amount   int64  `json:"amount" validate:"gte=0"`
	Discount int64  `json:"discount" validate:"gte=0"`
	Method   string `json:"method"`
	Notes    string `json:"notes"`
	Status   string `json:"status" validate:"omitempty,oneof=ACTIVE PARTIAL_PAID INACTIVE CANCELLED"`
}

type refundRequest struct {
	Amount int64  `json:"amount" validate:"required,gt=0"`
	Method string `json:"method"`
	Reason string `json:"reason"`
}

func (h *BillableHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBillableRequest
	if err := decode(r, &req); err != nil {
		writeValidationError(w, err)
		return
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		writeValidationError(w, err)
		return
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		writeValidationError(w, err)
		return
	}

	entity, err := h.billingSvc.Create(r.Context(), userID(r), h.kind, service.CreateBillableInput{
		MemberID:   req.MemberID,
		OfferingID: req.OfferingID,
		TrainerID:  req.TrainerID,
		StartDate:  start,
		EndDate:    end,
		Paid:       req.Paid,
		Discount:   req.Discount,
		Method:     domain.PaymentMethod(req.Method),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entity)
}

func (h *BillableHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeValidationError(w, err)
		return
	}
	entity, err := h.billingSvc.Get(r.Context(), userID(r), h.kind, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entity)
}

func (h *BillableHandler) List(w http.ResponseWriter, r *http.Request) {
	entities, err := h.billingSvc.List(r.Context(), userID(r), h.kind)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entities)
}

func (h *BillableHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeValidationError(w, err)
		return
	}
	var req updateBillableRequest
	if err := decode(r, &req); err != nil {
		writeValidationError(w, err)
		return
	}
	start, err := parseDatePtr(req.StartDate)
	if err != nil {
		writeValidationError(w, err)
		return
	}
	end, err := parseDatePtr(req.EndDate)
	if err != nil {
		writeValidationError(w, err)
		return
	}

	entity, err := h.billingSvc.Update(r.Context(), userID(r), h.kind, id, service.UpdateBillableInput{
		StartDate:  start,
		EndDate:    end,
		OfferingID: req.OfferingID,
		TrainerID:  req.TrainerID,
		SetTrainer: req.SetTrainer,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entity)
}

func (h *BillableHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeValidationError(w, err)
		return
	}
	var req recordPaymentRequest
	if err := decode(r, &req); err != nil {
		writeValidationError(w, err)
		return
	}

	entity, err := h.billingSvc.RecordPayment(r.Context(), userID(r), h.kind, id, service.RecordPaymentInput{
		Amount:         req.Amount,
		Discount:       req.Discount,
		Method:         domain.PaymentMethod(req.Method),
		Notes:          req.Notes,
		StatusOverride: domain.BillableStatus(req.Status),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entity)
}

func (h *BillableHandler) Refund(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeValidationError(w, err)
		return
	}
	var req refundRequest
	if err := decode(r, &req); err != nil {
		writeValidationError(w, err)
		return
	}

	entity, err := h.billingSvc.Refund(r.Context(), userID(r), h.kind, id, service.RefundInput{
		Amount: req.Amount,
		Method: domain.PaymentMethod(req.Method),
		Reason: req.Reason,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entity)
}

func (h *BillableHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeValidationError(w, err)
		return
	}
	if err := h.billingSvc.Delete(r.Context(), userID(r), h.kind, id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
