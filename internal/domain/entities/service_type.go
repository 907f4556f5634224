package entities

import "time"

// ServiceType is a named category of repair work with its standard duration.
//
// Storage model (DynamoDB):
//   - PK: name
type ServiceType struct {
	Name                     string    `json:"name"`
	EstimatedDurationMinutes int       `json:"estimated_duration_minutes"`
	Description              string    `json:"description"`
	CreatedAt                time.Time `json:"created_at"`
	UpdatedAt                time.Time `json:"updated_at"`
}

// DefaultServiceTypes is the catalog the shop opens with.
func DefaultServiceTypes() []ServiceType {
	return []ServiceType{
		{Name: "Oil Change", EstimatedDurationMinutes: 30, Description: "Standard oil change service"},
		{Name: "Engine Repair", EstimatedDurationMinutes: 1440, Description: "Engine repair (1-2 days)"},
		{Name: "Transmission", EstimatedDurationMinutes: 1440, Description: "Transmission service (1-2 days)"},
		{Name: "Safety Inspection", EstimatedDurationMinutes: 75, Description: "Safety inspection (60-90 min)"},
		{Name: "Tune Up", EstimatedDurationMinutes: 60, Description: "Tune up service (60 min)"},
		{Name: "Exhaust & Brakes", EstimatedDurationMinutes: 120, Description: "Exhaust & brakes service (120 min)"},
		{Name: "Shocks & Front End", EstimatedDurationMinutes: 75, Description: "Shocks & front end service (60-90 min)"},
		{Name: "Air Conditioning", EstimatedDurationMinutes: 120, Description: "Air conditioning service (1-3 hours)"},
		{Name: "Fuel Injection", EstimatedDurationMinutes: 60, Description: "Fuel injection service (60 min)"},
		{Name: "Other", EstimatedDurationMinutes: 60, Description: "Custom service (duration set by mechanic)"},
	}
}
