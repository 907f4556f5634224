package handlers

import (
	"log"
	"net/http"

	request "auto_service_queue/internal/adapter/http/dto/request"
	response "auto_service_queue/internal/adapter/http/dto/response"
	"auto_service_queue/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CustomerHandler handles intake and customer lookups.

type CustomerHandler struct {
	customers     usecase.ICustomerUseCase
	notifications usecase.INotificationUseCase
}

func NewCustomerHandler(customers usecase.ICustomerUseCase, notifications usecase.INotificationUseCase) *CustomerHandler {
	return &CustomerHandler{customers: customers, notifications: notifications}
}

// CreateCustomer godoc
// @Summary      Customer intake
// @Description  Registers the customer with a pending job and texts the estimated wait.
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateCustomerRequest  true  "Intake form"
// @Success      201   {object}  response.IntakeResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Router       /customers [post]
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var payload request.CreateCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	res, err := h.customers.Intake(c.Request.Context(), payload.ToIntakeInput())
	if err != nil {
		log.Printf("[customer][handler] intake failed err=%v", err)
		writeError(c, err)
		return
	}
	log.Printf("[customer][handler] intake success customer_id=%s seq=%d", res.Customer.ID, res.Customer.CustomerSequenceNumber)
	c.JSON(http.StatusCreated, response.FromIntakeResult(res))
}

func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customer, err := h.customers.GetByID(c.Request.Context(), c.Param("customer_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

// AddJob godoc
// @Summary      Open a new job for an existing customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        customer_id  path      string                 true  "Customer ID"
// @Param        body         body      request.AddJobRequest  true  "Requested services"
// @Success      201          {object}  response.IntakeResponse
// @Failure      404          {object}  pkg.HTTPError
// @Failure      409          {object}  pkg.HTTPError
// @Router       /customers/{customer_id}/jobs [post]
func (h *CustomerHandler) AddJob(c *gin.Context) {
	customerID := c.Param("customer_id")

	var payload request.AddJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	res, err := h.customers.AddJob(c.Request.Context(), customerID, payload.ResolveServices(), payload.Message)
	if err != nil {
		log.Printf("[customer][handler] add job failed customer_id=%s err=%v", customerID, err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromIntakeResult(res))
}

func (h *CustomerHandler) ListSmsLogs(c *gin.Context) {
	logs, err := h.notifications.ListLogs(c.Request.Context(), c.Param("customer_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSmsLogs(logs))
}
