package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/glowline/salon-scheduler/internal/httpresp"
	"github.com/glowline/salon-scheduler/internal/middleware"
	"github.com/glowline/salon-scheduler/internal/timezone"
	"github.com/glowline/salon-scheduler/internal/usecase/dashboard"
)

type DashboardHandler struct {
	agg *dashboard.Aggregator
	tz  string
}

func NewDashboardHandler(agg *dashboard.Aggregator, tz string) *DashboardHandler {
	return &DashboardHandler{agg: agg, tz: tz}
}

// Upcoming is the customer's own dashboard view.
func (h *DashboardHandler) Upcoming(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	now := timezone.NowIn(h.tz)

	apps := h.agg.UpcomingFor(c.Request.Context(), sess.User.ID, now)
	httpresp.List(c, apps)
}

// Stats is the admin overview: totals, status breakdown, service
// distribution and the last 30 days of revenue.
func (h *DashboardHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()
	now := timezone.NowIn(h.tz)

	httpresp.OK(c, gin.H{
		"stats":                h.agg.Stats(ctx, now),
		"counts_by_status":     h.agg.CountsByStatus(ctx),
		"service_distribution": h.agg.ServiceDistribution(ctx),
		"revenue_by_day":       h.agg.RevenueByDay(ctx, now.AddDate(0, 0, -30), now),
	})
}
