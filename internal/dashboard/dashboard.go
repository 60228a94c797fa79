// Package dashboard derives the statistics and filtered views the staff
// dashboard is built from. Everything here is a pure function over the
// complaint list; recomputing is side-effect-free.
package dashboard

import (
	"time"

	"complaintdesk/backend/internal/models"
)

// Filter values shared by the created-date and due-date filters.
// FilterOverdue is only meaningful for the due-date filter.
const (
	FilterAll     = "all"
	FilterToday   = "today"
	FilterWeek    = "week"
	FilterMonth   = "month"
	FilterOverdue = "overdue"
)

// Urgency buckets for the nearest due date of a complaint.
type Urgency string

const (
	UrgencyOverdue  Urgency = "overdue"
	UrgencyDueToday Urgency = "due_today"
	UrgencyUpcoming Urgency = "upcoming"
)

// Stats holds the complaint counts by status.
type Stats struct {
	Total      int `json:"total"`
	Open       int `json:"open"`
	InProgress int `json:"in_progress"`
	Closed     int `json:"closed"`
}

// ComputeStats counts complaints by status.
func ComputeStats(complaints []models.Complaint) Stats {
	stats := Stats{Total: len(complaints)}
	for _, c := range complaints {
		switch c.Status {
		case models.StatusOpen:
			stats.Open++
		case models.StatusInProgress:
			stats.InProgress++
		case models.StatusClosed:
			stats.Closed++
		}
	}
	return stats
}

// FilterByCreatedDate keeps complaints created on or after an inclusive
// lower bound relative to the start of the current local day: today,
// the last 7 days, or the last calendar month. FilterAll passes the
// list through unchanged.
func FilterByCreatedDate(complaints []models.Complaint, filter string, now time.Time) []models.Complaint {
	if filter == FilterAll {
		return complaints
	}

	today := startOfDay(now)
	var since time.Time
	switch filter {
	case FilterToday:
		since = today
	case FilterWeek:
		since = today.AddDate(0, 0, -7)
	case FilterMonth:
		// Calendar-month subtraction, not 30 days.
		since = today.AddDate(0, -1, 0)
	default:
		return complaints
	}

	out := make([]models.Complaint, 0, len(complaints))
	for _, c := range complaints {
		if !c.CreatedAt.Before(since) {
			out = append(out, c)
		}
	}
	return out
}

// FilterByDueDate keeps complaints where any review due date satisfies
// the predicate: already past now, due on the current calendar day, or
// due within the next 7/30 days. Complaints without reviews never match
// anything but FilterAll.
func FilterByDueDate(complaints []models.Complaint, filter string, now time.Time) []models.Complaint {
	if filter == FilterAll {
		return complaints
	}

	out := make([]models.Complaint, 0, len(complaints))
	for _, c := range complaints {
		if anyReviewDue(c.Reviews, filter, now) {
			out = append(out, c)
		}
	}
	return out
}

func anyReviewDue(reviews []models.Review, filter string, now time.Time) bool {
	for _, r := range reviews {
		diffDays := r.DueDate.Sub(now).Hours() / 24

		switch filter {
		case FilterOverdue:
			if r.DueDate.Before(now) {
				return true
			}
		case FilterToday:
			if sameDay(r.DueDate, now) {
				return true
			}
		case FilterWeek:
			if diffDays >= 0 && diffDays <= 7 {
				return true
			}
		case FilterMonth:
			if diffDays >= 0 && diffDays <= 30 {
				return true
			}
		}
	}
	return false
}

// NearestDueDate returns the earliest review due date of a complaint.
// ok is false when the complaint has no reviews.
func NearestDueDate(c models.Complaint) (nearest time.Time, ok bool) {
	for _, r := range c.Reviews {
		if !ok || r.DueDate.Before(nearest) {
			nearest = r.DueDate
			ok = true
		}
	}
	return nearest, ok
}

// Classify maps a due date to its urgency bucket. A date that is both
// past now and on today's calendar day counts as overdue.
func Classify(due, now time.Time) Urgency {
	if due.Before(now) {
		return UrgencyOverdue
	}
	if sameDay(due, now) {
		return UrgencyDueToday
	}
	return UrgencyUpcoming
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
