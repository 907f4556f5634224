package handlers

import (
	"log"
	"net/http"

	request "auto_service_queue/internal/adapter/http/dto/request"
	response "auto_service_queue/internal/adapter/http/dto/response"
	"auto_service_queue/internal/usecase"

	"github.com/gin-gonic/gin"
)

// WaitTimeHandler serves estimates and the queue view.

type WaitTimeHandler struct {
	waitTime usecase.IWaitTimeUseCase
	queue    usecase.IQueueUseCase
}

func NewWaitTimeHandler(waitTime usecase.IWaitTimeUseCase, queue usecase.IQueueUseCase) *WaitTimeHandler {
	return &WaitTimeHandler{waitTime: waitTime, queue: queue}
}

// Estimate godoc
// @Summary      Estimate wait time for a set of services
// @Description  Persists the estimate when customerId is given.
// @Tags         wait-time
// @Accept       json
// @Produce      json
// @Param        body  body      request.EstimateWaitTimeRequest  true  "Requested services"
// @Success      200   {object}  response.EstimateResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Router       /wait-time/estimate [post]
func (h *WaitTimeHandler) Estimate(c *gin.Context) {
	var payload request.EstimateWaitTimeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	quote, err := h.waitTime.EstimateForCustomer(c.Request.Context(), payload.ResolveCustomerID(), payload.ResolveServices())
	if err != nil {
		log.Printf("[wait-time][handler] estimate failed err=%v", err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// GetCustomerEstimate godoc
// @Summary      Latest wait time estimate of a customer
// @Tags         wait-time
// @Produce      json
// @Param        customer_id  path      string  true  "Customer ID"
// @Success      200          {object}  response.CustomerEstimateResponse
// @Failure      404          {object}  pkg.HTTPError
// @Router       /wait-time/customer/{customer_id} [get]
func (h *WaitTimeHandler) GetCustomerEstimate(c *gin.Context) {
	customerID := c.Param("customer_id")

	e, err := h.waitTime.GetCustomerEstimate(c.Request.Context(), customerID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWaitTimeEstimate(e))
}

// GetQueue godoc
// @Summary      Current queue snapshot
// @Tags         wait-time
// @Produce      json
// @Param        customerId  query     string  false  "Customer to locate in the queue"
// @Success      200         {object}  response.QueueResponse
// @Router       /wait-time/queue [get]
func (h *WaitTimeHandler) GetQueue(c *gin.Context) {
	snapshot, err := h.queue.Snapshot(c.Request.Context(), c.Query("customerId"))
	if err != nil {
		log.Printf("[wait-time][handler] queue snapshot failed err=%v", err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQueueSnapshot(snapshot))
}
