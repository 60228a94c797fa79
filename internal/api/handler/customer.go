package handler

import (
	"net/http"

	"complaintdesk/backend/internal/apperrors"
	"complaintdesk/backend/internal/models"

	"github.com/gin-gonic/gin"
)

type createCustomerRequest struct {
	FullName string `json:"fullname" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}

// CreateCustomer registers a customer explicitly.
func (h *Handler) CreateCustomer(c *gin.Context) {
	var req createCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperrors.Validation("fullname and email are required"))
		return
	}

	customer := &models.Customer{
		FullName: req.FullName,
		Email:    req.Email,
	}
	if err := h.Storage.CreateCustomer(customer); err != nil {
		writeError(c, apperrors.Store(err, "could not create customer"))
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// ListCustomers returns all customers.
func (h *Handler) ListCustomers(c *gin.Context) {
	customers, err := h.Storage.ListCustomers()
	if err != nil {
		writeError(c, apperrors.Store(err, "could not list customers"))
		return
	}
	c.JSON(http.StatusOK, customers)
}
