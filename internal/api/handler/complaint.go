package handler

import (
	"net/http"
	"strconv"

	"complaintdesk/backend/internal/api/middleware"
	"complaintdesk/backend/internal/apperrors"
	"complaintdesk/backend/internal/complaint"

	"github.com/gin-gonic/gin"
)

type createComplaintRequest struct {
	FullName      string `json:"fullname" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
	Title         string `json:"title" binding:"required"`
	Body          string `json:"body" binding:"required"`
}

type updateComplaintRequest struct {
	Status  string  `json:"status"`
	DueDate string  `json:"due_date"`
	Notes   *string `json:"notes"`
}

// CreateComplaint is the public submission endpoint. It is rate limited
// per client IP to keep the open form from being flooded.
func (h *Handler) CreateComplaint(c *gin.Context) {
	allowed, err := h.Storage.SubmissionAllowed(c.ClientIP())
	if err != nil {
		h.Logger.Warn().Err(err).Msg("rate limit check failed")
		writeError(c, apperrors.Store(err, "could not check submission limit"))
		return
	}
	if !allowed {
		writeError(c, apperrors.RateLimited("too many submissions, try again later"))
		return
	}

	var req createComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperrors.Validation("fullname, customer_email, title and body are required"))
		return
	}

	created, err := h.Complaints.CreateComplaint(complaint.CreateComplaintInput{
		FullName:      req.FullName,
		CustomerEmail: req.CustomerEmail,
		Title:         req.Title,
		Body:          req.Body,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListComplaints returns every complaint with its reviews.
func (h *Handler) ListComplaints(c *gin.Context) {
	complaints, err := h.Complaints.ListComplaints()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, complaints)
}

// UpdateComplaint applies a staff update to one complaint. The acting
// user id always comes from the authenticated principal, never from the
// request body.
func (h *Handler) UpdateComplaint(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		writeError(c, apperrors.Unauthorized("no authenticated user"))
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, apperrors.Validation("invalid complaint id"))
		return
	}

	var req updateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperrors.Validation("invalid request body"))
		return
	}

	updated, err := h.Complaints.UpdateComplaint(complaint.UpdateComplaintInput{
		ComplaintID: uint(id),
		Status:      req.Status,
		DueDate:     req.DueDate,
		Notes:       req.Notes,
		UserID:      principal.UserID,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}
