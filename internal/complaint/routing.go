package complaint

// Department names complaints are routed to.
const (
	DepartmentRoads       = "Roads"
	DepartmentSanitation  = "Sanitation"
	DepartmentWater       = "Water"
	DepartmentElectricity = "Electricity"
	DepartmentGeneral     = "General"
)

// DepartmentFor maps a category to the name of the department that handles it.
// Anything unrecognised, including the empty category, goes to General.
func DepartmentFor(c Category) string {
	switch c {
	case CategoryRoad:
		return DepartmentRoads
	case CategoryGarbage:
		return DepartmentSanitation
	case CategoryWater:
		return DepartmentWater
	case CategoryElectricity:
		return DepartmentElectricity
	default:
		return DepartmentGeneral
	}
}
