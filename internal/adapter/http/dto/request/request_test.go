package request

import (
	"encoding/json"
	"testing"
)

func TestEstimateWaitTimeRequest_MixedServiceShapes(t *testing.T) {
	var r EstimateWaitTimeRequest
	body := `{"services":["Oil Change",{"name":" Tune Up "},{"name":""}," "],"customerId":" cust-1 "}`
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := r.ResolveServices()
	if len(got) != 2 || got[0] != "Oil Change" || got[1] != "Tune Up" {
		t.Fatalf("unexpected services: %v", got)
	}
	if r.ResolveCustomerID() != "cust-1" {
		t.Fatalf("unexpected customer id: %q", r.ResolveCustomerID())
	}
}

func TestServiceRef_RejectsOtherShapes(t *testing.T) {
	var r EstimateWaitTimeRequest
	if err := json.Unmarshal([]byte(`{"services":[42]}`), &r); err == nil {
		t.Fatalf("expected error for numeric service")
	}
}

func TestCreateCustomerRequest_ToIntakeInput(t *testing.T) {
	r := CreateCustomerRequest{
		Name:     "Ana",
		Phone:    "555-123-4567",
		Vehicle:  "Civic",
		Service:  "Oil Change",
		Services: []ServiceRef{{Name: "Tune Up"}},
	}
	in := r.ToIntakeInput()
	if len(in.Services) != 2 || in.Services[0] != "Oil Change" || in.Services[1] != "Tune Up" {
		t.Fatalf("unexpected services: %v", in.Services)
	}
	if in.Name != "Ana" || in.Vehicle != "Civic" {
		t.Fatalf("unexpected input: %+v", in)
	}
}
