package http

import (
	"net/http"

	"gymdesk-backend/internal/domain"
	"gymdesk-backend/internal/service"
)

type GymClassHandler struct {
	classSvc service.GymClassService
}

func NewGymClassHandler(classSvc service.GymClassService) *GymClassHandler {
	return &GymClassHandler{classSvc: classSvc}
}

type gymClassRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Schedule    string `json:"schedule"`
	Capacity    int32  `json:"capacity" validate:"gte=0"`
	TrainerID   *int64 `json:"trainer_id"`
}

func (h *GymClassHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req gymClassRequest
	if err := decode(r, &req); err != nil {
		writeValidationError(w, err)
		return
	}

	class, err := h.classSvc.Create(r.Context(), &domain.GymClass{
		UserID:      userID(r),
		Name:        req.Name,
		Description: req.Description,
		Schedule:    req.Schedule,
		Capacity:    req.Capacity,
		TrainerID:   req.TrainerID,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, class)
}

func (h *GymClassHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeValidationError(w, err)
		return
	}
	class, err := h.classSvc.Get(r.Context(), userID(r), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, class)
}

func (h *GymClassHandler) List(w http.ResponseWriter, r *http.Request) {
	classes, err := h.classSvc.List(r.Context(), userID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, classes)
}

func (h *GymClassHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeValidationError(w, err)
		return
	}
	var req gymClassRequest
	if err := decode(r, &req); err != nil {
		writeValidationError(w, err)
		return
	}

	class, err := h.classSvc.Update(r.Context(), &domain.GymClass{
		ID:          id,
		UserID:      userID(r),
		Name:        req.Name,
		Description: req.Description,
		Schedule:    req.Schedule,
		Capacity:    req.Capacity,
		TrainerID:   req.TrainerID,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, class)
}

func (h *GymClassHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeValidationError(w, err)
		return
	}
	if err := h.classSvc.Delete(r.Context(), userID(r), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
