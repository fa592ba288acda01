// Package http is a thin gin wrapper over the embedding surface. It is
// ambient transport, not part of the solving engine.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sudoku-engine/internal/embed"
)

// RegisterRoutes wires the solve endpoint and a liveness check onto r.
func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", handleHealth)
	r.POST("/api/solve", handleSolve)
}

func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type solveRequest struct {
	Puzzle     string `json:"puzzle" binding:"required"`
	ReturnGrid bool   `json:"return_grid"`
}

type solveResponse struct {
	Stats []int `json:"stats"`
	Grid  []int `json:"grid,omitempty"`
}

func handleSolve(c *gin.Context) {
	var req solveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stats, grid, err := embed.Solve(req.Puzzle, req.ReturnGrid)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, solveResponse{Stats: stats.Slice(), Grid: grid})
}
