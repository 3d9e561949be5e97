package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/belezasmart/internal/middleware"
	ucDashboard "github.com/BruksfildServices01/belezasmart/internal/usecase/dashboard"
)

type DashboardHandler struct {
	dashboardUC *ucDashboard.GetDashboard
	log         logrus.FieldLogger
}

func NewDashboardHandler(dashboardUC *ucDashboard.GetDashboard, log logrus.FieldLogger) *DashboardHandler {
	return &DashboardHandler{dashboardUC: dashboardUC, log: log}
}

func (h *DashboardHandler) Get(c *gin.Context) {
	out, err := h.dashboardUC.Execute(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		respondError(c, h.log, err, "failed_to_load_dashboard")
		return
	}
	c.JSON(http.StatusOK, out)
}
