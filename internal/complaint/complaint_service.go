// Package complaint provides the core logic for handling customer
// complaints: creating them (with implicit customer creation), moving
// them through their status lifecycle, and maintaining the per-staff
// review records that track due dates and notes.
package complaint

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"complaintdesk/backend/internal/apperrors"
	"complaintdesk/backend/internal/models"
	"complaintdesk/backend/internal/storage"
)

// Service handles the business logic for complaints.
type Service struct {
	Storage storage.Storage

	mu    sync.Mutex
	locks map[lockKey]*sync.Mutex
}

type lockKey struct {
	complaintID uint
	userID      uint
}

// NewService creates a new complaint service.
func NewService(s storage.Storage) *Service {
	return &Service{
		Storage: s,
		locks:   make(map[lockKey]*sync.Mutex),
	}
}

// CreateComplaintInput is the payload of the public submission form.
type CreateComplaintInput struct {
	FullName      string
	CustomerEmail string
	Title         string
	Body          string
}

// UpdateComplaintInput carries one staff update. Status and DueDate use
// the empty string for "not supplied"; Notes uses nil, because an empty
// string is a meaningful value that clears the stored notes.
type UpdateComplaintInput struct {
	ComplaintID uint
	Status      string
	DueDate     string
	Notes       *string
	UserID      uint
}

// CreateComplaint registers a new complaint, creating the customer first
// if this email has never been seen. New complaints always start open.
func (s *Service) CreateComplaint(in CreateComplaintInput) (*models.Complaint, error) {
	if in.FullName == "" || in.CustomerEmail == "" || in.Title == "" || in.Body == "" {
		return nil, apperrors.Validation("fullname, email, title and body are required")
	}

	customer, err := s.Storage.FirstOrCreateCustomer(in.FullName, in.CustomerEmail)
	if err != nil {
		return nil, apperrors.Store(err, "could not create customer")
	}

	complaint := &models.Complaint{
		Title:      in.Title,
		Body:       in.Body,
		Status:     models.StatusOpen,
		CustomerID: customer.ID,
	}
	if err := s.Storage.CreateComplaint(complaint); err != nil {
		return nil, apperrors.Store(err, "could not create complaint")
	}

	return complaint, nil
}

// ListComplaints returns all complaints with their reviews populated.
func (s *Service) ListComplaints() ([]models.Complaint, error) {
	complaints, err := s.Storage.ListComplaints()
	if err != nil {
		return nil, apperrors.Store(err, "could not list complaints")
	}
	return complaints, nil
}

// UpdateComplaint applies one staff update: an optional status change
// plus the review bookkeeping it implies.
//
// A review is touched when a due date is supplied, notes are supplied
// (an empty string counts, it clears them), or the supplied status is
// in_progress or closed. Setting status to open on its own touches
// nothing. When no review exists yet for this (complaint, staff) pair
// one is created, defaulting the due date to now; when one exists, only
// the supplied fields are written. The find-then-create sequence is
// serialized per pair so the uniqueness invariant holds under
// concurrent updates.
func (s *Service) UpdateComplaint(in UpdateComplaintInput) (*models.Complaint, error) {
	if in.UserID == 0 {
		return nil, apperrors.Validation("acting user id is required")
	}
	if in.Status != "" && !models.ValidStatus(in.Status) {
		return nil, apperrors.Validation("invalid status %q", in.Status)
	}

	var due time.Time
	if in.DueDate != "" {
		parsed, err := ParseDueDate(in.DueDate)
		if err != nil {
			return nil, err
		}
		due = parsed
	}

	unlock := s.lock(in.ComplaintID, in.UserID)
	defer unlock()

	complaint, err := s.Storage.GetComplaintByID(in.ComplaintID)
	if err != nil {
		return nil, apperrors.Store(err, "could not load complaint %d", in.ComplaintID)
	}
	if complaint == nil {
		return nil, apperrors.NotFound("complaint %d not found", in.ComplaintID)
	}

	if in.Status != "" {
		if err := s.Storage.UpdateComplaintStatus(in.ComplaintID, in.Status); err != nil {
			return nil, apperrors.Store(err, "could not update status of complaint %d", in.ComplaintID)
		}
	}

	if in.DueDate != "" || in.Notes != nil ||
		in.Status == models.StatusInProgress || in.Status == models.StatusClosed {
		if err := s.touchReview(in, due); err != nil {
			return nil, err
		}
	}

	updated, err := s.Storage.GetComplaintByID(in.ComplaintID)
	if err != nil {
		return nil, apperrors.Store(err, "could not reload complaint %d", in.ComplaintID)
	}
	return updated, nil
}

// touchReview updates the review for the (complaint, user) pair, or
// creates it when none exists.
func (s *Service) touchReview(in UpdateComplaintInput, due time.Time) error {
	existing, err := s.Storage.FindReview(in.ComplaintID, in.UserID)
	if err != nil {
		return apperrors.Store(err, "could not look up review for complaint %d", in.ComplaintID)
	}

	if existing != nil {
		fields := map[string]interface{}{}
		if in.DueDate != "" {
			fields["due_date"] = due
		}
		if in.Notes != nil {
			fields["notes"] = *in.Notes
		}
		if len(fields) == 0 {
			return nil
		}
		if err := s.Storage.UpdateReviewFields(existing.ID, fields); err != nil {
			return apperrors.Store(err, "could not update review %d", existing.ID)
		}
		return nil
	}

	review := &models.Review{
		ComplaintID: in.ComplaintID,
		UserID:      in.UserID,
		DueDate:     due,
		Notes:       in.Notes,
	}
	if in.DueDate == "" {
		review.DueDate = time.Now()
	}
	if err := s.Storage.CreateReview(review); err != nil {
		return apperrors.Store(err, "could not create review for complaint %d", in.ComplaintID)
	}
	return nil
}

// lock serializes updates per (complaint, user) pair. Entries are never
// released; the key space is bounded by staff count times complaint count.
func (s *Service) lock(complaintID, userID uint) func() {
	key := lockKey{complaintID: complaintID, userID: userID}

	s.mu.Lock()
	m, ok := s.locks[key]
	if !ok {
		m = &sync.Mutex{}
		s.locks[key] = m
	}
	s.mu.Unlock()

	m.Lock()
	return m.Unlock
}

// ParseDueDate parses a YYYY-MM-DD calendar date into local midnight.
// The string is decomposed into its integer parts on purpose: generic
// timestamp parsing would interpret the date as UTC and shift it by a
// day in western timezones.
func ParseDueDate(value string) (time.Time, error) {
	parts := strings.Split(value, "-")
	if len(parts) != 3 {
		return time.Time{}, apperrors.Validation("due date %q is not in YYYY-MM-DD format", value)
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, apperrors.Validation("due date %q has an invalid year", value)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return time.Time{}, apperrors.Validation("due date %q has an invalid month", value)
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil || day < 1 || day > 31 {
		return time.Time{}, apperrors.Validation("due date %q has an invalid day", value)
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), nil
}
