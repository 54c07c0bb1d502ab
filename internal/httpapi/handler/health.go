package handler

import (
	"net/http"
)

// HealthCheck handles GET /health_check.
//
// @Summary      Health check
// @Description  Liveness probe. Always 200 with an empty body.
// @Tags         health
// @Success      200
// @Router       /health_check [get]
func HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
