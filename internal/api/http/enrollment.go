package http

import (
	"net/http"

	"gymdesk-backend/internal/domain"
	"gymdesk-backend/internal/service"
)

type EnrollmentHandler struct {
	enrollmentSvc service.EnrollmentService
}

func NewEnrollmentHandler(enrollmentSvc service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentSvc: enrollmentSvc}
}

type enrollRequest struct {
	Member     memberRequest           `json:"member" validate:"required"`
	Membership enrollMembershipRequest `json:"membership" validate:"required"`
}

// enrollMembershipRequest mirrors createBillableRequest minus member_id,
// which is only known once the member row is inserted.
type enrollMembershipRequest struct {
	OfferingID int64  `json:"offering_id" validate:"required"`
	StartDate  string `json:"start_date" validate:"required"`
	EndDate    string `json:"end_date" validate:"required"`
	Paid       int64  `json:"paid" validate:"gte=0"`
	Discount   int64  `json:"discount" validate:"gte=0"`
	Method     string `json:"method"`
}

type enrollResponse struct {
	Member     *domain.Member         `json:"member"`
	Membership *domain.BillableEntity `json:"membership"`
}

func (h *EnrollmentHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	var req enrollRequest
	if err := decode(r, &req); err != nil {
		writeValidationError(w, err)
		return
	}
	start, err := parseDate(req.Membership.StartDate)
	if err != nil {
		writeValidationError(w, err)
		return
	}
	end, err := parseDate(req.Membership.EndDate)
	if err != nil {
		writeValidationError(w, err)
		return
	}

	member, membership, err := h.enrollmentSvc.Enroll(r.Context(), userID(r), service.EnrollInput{
		Member: domain.Member{
			FirstName:      req.Member.FirstName,
			LastName:       req.Member.LastName,
			Email:          req.Member.Email,
			Phone:          req.Member.Phone,
			Address:        req.Member.Address,
			Gender:         req.Member.Gender,
			ReferralSource: req.Member.ReferralSource,
			Notes:          req.Member.Notes,
		},
		Membership: service.CreateBillableInput{
			OfferingID: req.Membership.OfferingID,
			StartDate:  start,
			EndDate:    end,
			Paid:       req.Membership.Paid,
			Discount:   req.Membership.Discount,
			Method:     domain.PaymentMethod(req.Membership.Method),
		},
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, enrollResponse{Member: member, Membership: membership})
}
