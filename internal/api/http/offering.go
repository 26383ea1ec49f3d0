package http

import (
	"net/http"
	"strconv"

	"gymdesk-backend/internal/domain"
	"gymdesk-backend/internal/service"
)

// OfferingHandler serves both the plan and addon catalogs, registered once
// per kind.
type OfferingHandler struct {
	offeringSvc service.OfferingService
	kind        domain.OfferingKind
}

func NewOfferingHandler(offeringSvc service.OfferingService, kind domain.OfferingKind) *OfferingHandler {
	return &OfferingHandler{offeringSvc: offeringSvc, kind: kind}
}

type offeringRequest struct {
	Name         string `json:"name" validate:"required"`
	Description  string `json:"description"`
	Price        int64  `json:"price" validate:"gte=0"`
	DurationDays int32  `json:"duration_days" validate:"gte=0"`
	IsActive     *bool  `json:"is_active"`
}

func (h *OfferingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req offeringRequest
	if err := decode(r, &req); err != nil {
		writeValidationError(w, err)
		return
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	offering, err := h.offeringSvc.Create(r.Context(), &domain.Offering{
		UserID:       userID(r),
		Kind:         h.kind,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		DurationDays: req.DurationDays,
		IsActive:     active,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, offering)
}

func (h *OfferingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeValidationError(w, err)
		return
	}
	offering, err := h.offeringSvc.Get(r.Context(), userID(r), h.kind, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, offering)
}

func (h *OfferingHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.OfferingFilter{
		MinPrice:  queryInt64(r, "min_price"),
		MaxPrice:  queryInt64(r, "max_price"),
		Search:    q.Get("search"),
		SortBy:    q.Get("sort_by"),
		SortOrder: q.Get("sort_order"),
	}
	if v := q.Get("is_active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			writeValidationError(w, err)
			return
		}
		filter.IsActive = &active
	}

	offerings, err := h.offeringSvc.List(r.Context(), userID(r), h.kind, filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, offerings)
}

func (h *OfferingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeValidationError(w, err)
		return
	}
	var req offeringRequest
	if err := decode(r, &req); err != nil {
		writeValidationError(w, err)
		return
	}

	existing, err := h.offeringSvc.Get(r.Context(), userID(r), h.kind, id)
	if err != nil {
		writeError(w, err)
		return
	}
	active := existing.IsActive
	if req.IsActive != nil {
		active = *req.IsActive
	}

	offering, err := h.offeringSvc.Update(r.Context(), &domain.Offering{
		ID:           id,
		UserID:       userID(r),
		Kind:         h.kind,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		DurationDays: req.DurationDays,
		IsActive:     active,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, offering)
}

func (h *OfferingHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeValidationError(w, err)
		return
	}
	var req struct {
		IsActive bool `json:"is_active"`
	}
	if err := decode(r, &req); err != nil {
		writeValidationError(w, err)
		return
	}
	if err := h.offeringSvc.SetActive(r.Context(), userID(r), h.kind, id, req.IsActive); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *OfferingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeValidationError(w, err)
		return
	}
	if err := h.offeringSvc.Delete(r.Context(), userID(r), h.kind, id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
