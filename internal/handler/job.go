package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobchat/internal/model"
)

// JobStore reads individual job records.
type JobStore interface {
	GetJobByID(ctx context.Context, jobID int64) (*model.Job, error)
}

// JobHandler handles job-related HTTP requests
type JobHandler struct {
	store JobStore
}

// NewJobHandler creates a new job handler
func NewJobHandler(store JobStore) *JobHandler {
	return &JobHandler{store: store}
}

// GetJob handles GET /api/v1/jobs/:id
func (h *JobHandler) GetJob(c *gin.Context) {
	jobIDStr := c.Param("id")
	jobID, err := strconv.ParseInt(jobIDStr, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID"})
		return
	}

	job, err := h.store.GetJobByID(c.Request.Context(), jobID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get job: " + err.Error()})
		return
	}

	if job == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		return
	}

	c.JSON(http.StatusOK, job)
}
