package response

import "auto_service_queue/internal/domain/entities"

type ServiceTypeResponse struct {
	Name              string `json:"name"`
	EstimatedDuration int    `json:"estimatedDuration"`
	Description       string `json:"description"`
}

func FromServiceTypes(items []entities.ServiceType) []ServiceTypeResponse {
	out := make([]ServiceTypeResponse, 0, len(items))
	for _, st := range items {
		out = append(out, ServiceTypeResponse{
			Name:              st.Name,
			EstimatedDuration: st.EstimatedDurationMinutes,
			Description:       st.Description,
		})
	}
	return out
}
