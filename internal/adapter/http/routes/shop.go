package routes

import (
	"auto_service_queue/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServices  = "/services"
	PathWaitTime  = "/wait-time"
	PathJobs      = "/jobs"
	PathCustomers = "/customers"
)

func addShopRoutes(
	rg *gin.RouterGroup,
	catalogHandler *handlers.CatalogHandler,
	waitTimeHandler *handlers.WaitTimeHandler,
	jobHandler *handlers.JobHandler,
	customerHandler *handlers.CustomerHandler,
) {
	rg.GET(PathServices, catalogHandler.ListServices)

	waitTime := rg.Group(PathWaitTime)
	{
		waitTime.POST("/estimate", waitTimeHandler.Estimate)
		waitTime.GET("/customer/:customer_id", waitTimeHandler.GetCustomerEstimate)
		waitTime.GET("/queue", waitTimeHandler.GetQueue)
		waitTime.GET("/job/:job_id", jobHandler.GetJobStatus)
		// Legacy path kept for existing front desk clients.
		waitTime.PUT("/job/:job_id/status", jobHandler.UpdateJobStatus)
	}

	jobs := rg.Group(PathJobs)
	{
		jobs.PATCH("/:job_id/status", jobHandler.UpdateJobStatus)
	}

	customers := rg.Group(PathCustomers)
	{
		customers.POST("", customerHandler.CreateCustomer)
		customers.GET("/:customer_id", customerHandler.GetCustomer)
		customers.POST("/:customer_id/jobs", customerHandler.AddJob)
		customers.GET("/:customer_id/sms-logs", customerHandler.ListSmsLogs)
	}
}
