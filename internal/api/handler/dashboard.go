package handler

import (
	"net/http"
	"time"

	"complaintdesk/backend/internal/dashboard"
	"complaintdesk/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// dashboardComplaint annotates a complaint with the due-date urgency
// used for coloring in the list view.
type dashboardComplaint struct {
	models.Complaint
	NearestDueDate *time.Time        `json:"nearest_due_date,omitempty"`
	Urgency        dashboard.Urgency `json:"urgency,omitempty"`
}

// Dashboard returns the status counts plus the complaint list filtered
// by the optional created/due query parameters. The aggregation only
// reads the current data; refreshing is a plain re-request.
func (h *Handler) Dashboard(c *gin.Context) {
	complaints, err := h.Complaints.ListComplaints()
	if err != nil {
		writeError(c, err)
		return
	}

	stats := dashboard.ComputeStats(complaints)

	now := time.Now()
	filtered := dashboard.FilterByCreatedDate(complaints, c.DefaultQuery("created", dashboard.FilterAll), now)
	filtered = dashboard.FilterByDueDate(filtered, c.DefaultQuery("due", dashboard.FilterAll), now)

	items := make([]dashboardComplaint, 0, len(filtered))
	for _, cm := range filtered {
		item := dashboardComplaint{Complaint: cm}
		if nearest, ok := dashboard.NearestDueDate(cm); ok {
			item.NearestDueDate = &nearest
			item.Urgency = dashboard.Classify(nearest, now)
		}
		items = append(items, item)
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":      stats,
		"complaints": items,
	})
}
