package http

import (
	"net/http"

	"gymdesk-backend/internal/domain"
	"gymdesk-backend/internal/service"
)

type MemberHandler struct {
	memberSvc service.MemberService
}

func NewMemberHandler(memberSvc service.MemberService) *MemberHandler {
	return &MemberHandler{memberSvc: memberSvc}
}

type memberRequest struct {
	FirstName      string `json:"first_name" validate:"required"`
	LastName       string `json:"last_name" validate:"required"`
	Email          string `json:"email" validate:"omitempty,email"`
	Phone          string `json:"phone" validate:"required"`
	Address        string `json:"address"`
	Gender         string `json:"gender"`
	ReferralSource string `json:"referral_source"`
	Notes          string `json:"notes"`
}

type listResponse struct {
	Items any   `json:"items"`
	Total int64 `json:"total"`
}

func (h *MemberHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req memberRequest
	if err := decode(r, &req); err != nil {
		writeValidationError(w, err)
		return
	}

	member, err := h.memberSvc.Create(r.Context(), &domain.Member{
		UserID:         userID(r),
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		Address:        req.Address,
		Gender:         req.Gender,
		ReferralSource: req.ReferralSource,
		Notes:          req.Notes,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, member)
}

func (h *MemberHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeValidationError(w, err)
		return
	}
	member, err := h.memberSvc.Get(r.Context(), userID(r), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, member)
}

func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.MemberFilter{
		ID:        queryInt64(r, "id"),
		Name:      q.Get("name"),
		Email:     q.Get("email"),
		Phone:     q.Get("phone"),
		SortBy:    q.Get("sort_by"),
		SortOrder: q.Get("sort_order"),
		Page:      queryInt32(r, "page", 1),
		PageSize:  queryInt32(r, "page_size", 10),
	}

	members, total, err := h.memberSvc.List(r.Context(), userID(r), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: members, Total: total})
}

func (h *MemberHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeValidationError(w, err)
		return
	}
	var req memberRequest
	if err := decode(r, &req); err != nil {
		writeValidationError(w, err)
		return
	}

	member, err := h.memberSvc.Update(r.Context(), &domain.Member{
		ID:             id,
		UserID:         userID(r),
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		Address:        req.Address,
		Gender:         req.Gender,
		ReferralSource: req.ReferralSource,
		Notes:          req.Notes,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, member)
}

func (h *MemberHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeValidationError(w, err)
		return
	}
	if err := h.memberSvc.Delete(r.Context(), userID(r), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
