package category

import (
	"github.com/frahmantamala/complaint-redressal/internal/complaint"
)

type Category struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Department  string `json:"department"`
}

var descriptions = map[complaint.Category]string{
	complaint.CategoryRoad:        "Potholes, damaged roads and broken footpaths",
	complaint.CategoryGarbage:     "Missed collections, overflowing bins and illegal dumping",
	complaint.CategoryWater:       "Leaks, supply interruptions and contamination",
	complaint.CategoryElectricity: "Street lights, exposed wiring and outages",
}

func newCategory(c complaint.Category) Category {
	return Category{
		Name:        string(c),
		Description: descriptions[c],
		Department:  complaint.DepartmentFor(c),
	}
}
