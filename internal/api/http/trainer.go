package http

import (
	"net/http"

	"gymdesk-backend/internal/domain"
	"gymdesk-backend/internal/service"
)

type TrainerHandler struct {
	trainerSvc service.TrainerService
}

func NewTrainerHandler(trainerSvc service.TrainerService) *TrainerHandler {
	return &TrainerHandler{trainerSvc: trainerSvc}
}

type trainerRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone"`
	Specialty string `json:"specialty"`
}

func (h *TrainerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req trainerRequest
	if err := decode(r, &req); err != nil {
		writeValidationError(w, err)
		return
	}

	trainer, err := h.trainerSvc.Create(r.Context(), &domain.Trainer{
		UserID:    userID(r),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Specialty: req.Specialty,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, trainer)
}

func (h *TrainerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeValidationError(w, err)
		return
	}
	trainer, err := h.trainerSvc.Get(r.Context(), userID(r), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trainer)
}

func (h *TrainerHandler) List(w http.ResponseWriter, r *http.Request) {
	trainers, total, err := h.trainerSvc.List(r.Context(), userID(r),
		queryInt32(r, "page", 1), queryInt32(r, "page_size", 10))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: trainers, Total: total})
}

func (h *TrainerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeValidationError(w, err)
		return
	}
	var req trainerRequest
	if err := decode(r, &req); err != nil {
		writeValidationError(w, err)
		return
	}

	trainer, err := h.trainerSvc.Update(r.Context(), &domain.Trainer{
		ID:        id,
		UserID:    userID(r),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Specialty: req.Specialty,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trainer)
}

func (h *TrainerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeValidationError(w, err)
		return
	}
	if err := h.trainerSvc.Delete(r.Context(), userID(r), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
