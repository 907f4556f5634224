package handlers

import (
	"log"
	"net/http"

	request "auto_service_queue/internal/adapter/http/dto/request"
	response "auto_service_queue/internal/adapter/http/dto/response"
	"auto_service_queue/internal/usecase"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	usecase usecase.IJobUseCase
}

func NewJobHandler(uc usecase.IJobUseCase) *JobHandler {
	return &JobHandler{usecase: uc}
}

// UpdateJobStatus godoc
// @Summary      Move a job to pending, started or completed
// @Description  Sends the matching customer SMS when the status changes.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job_id  path      string                          true  "Job ID"
// @Param        body    body      request.UpdateJobStatusRequest  true  "New status"
// @Success      200     {object}  response.StatusChangeResponse
// @Failure      400     {object}  pkg.HTTPError
// @Failure      404     {object}  pkg.HTTPError
// @Failure      409     {object}  pkg.HTTPError
// @Router       /jobs/{job_id}/status [patch]
// @Router       /wait-time/job/{job_id}/status [put]
func (h *JobHandler) UpdateJobStatus(c *gin.Context) {
	jobID := c.Param("job_id")

	var payload request.UpdateJobStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	log.Printf("[job][handler] set-status start job_id=%s status=%q", jobID, payload.Status)

	change, err := h.usecase.SetStatus(c.Request.Context(), jobID, payload.Status)
	if err != nil {
		log.Printf("[job][handler] set-status failed job_id=%s err=%v", jobID, err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromStatusChange(change))
}

// GetJobStatus godoc
// @Summary      Job status with customer and wait time
// @Tags         jobs
// @Produce      json
// @Param        job_id  path      string  true  "Job ID"
// @Success      200     {object}  response.JobStatusResponse
// @Failure      404     {object}  pkg.HTTPError
// @Router       /wait-time/job/{job_id} [get]
func (h *JobHandler) GetJobStatus(c *gin.Context) {
	view, err := h.usecase.GetJobStatus(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromJobStatusView(view))
}
