package department

import (
	departmentDatamodel "github.com/frahmantamala/complaint-redressal/internal/core/datamodel/department"
)

type Department struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// DefaultNames are the departments complaints can be routed to.
var DefaultNames = []string{"Roads", "Sanitation", "Water", "Electricity", "General"}

func ToDataModel(d *Department) *departmentDatamodel.Department {
	return &departmentDatamodel.Department{
		ID:   d.ID,
		Name: d.Name,
	}
}

func FromDataModel(d *departmentDatamodel.Department) *Department {
	return &Department{
		ID:   d.ID,
		Name: d.Name,
	}
}

func FromDataModelSlice(departments []*departmentDatamodel.Department) []*Department {
	result := make([]*Department, len(departments))
	for i, d := range departments {
		result[i] = FromDataModel(d)
	}
	return result
}
