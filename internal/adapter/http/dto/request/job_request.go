package request

type UpdateJobStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
