package variance

import "fmt"

// Vehicle is closed to this package: only Car and Truck implement it.
type Vehicle interface {
	vehicle()
}

type Car struct {
	Wheels int
}

type Truck struct {
	Wheels    int
	HaulLimit int
}

func (Car) vehicle()   {}
func (Truck) vehicle() {}

// HasEngine tags a value as engine related without changing its layout.
type HasEngine[T any] struct {
	EngineRelated T
}

func StartEngine(v Vehicle) string {
	switch v := v.(type) {
	case Car:
		return fmt.Sprintf("Starting Car with [%d] wheels", v.Wheels)
	case Truck:
		return fmt.Sprintf("Starting Truck which can haul [%d] grams", v.HaulLimit)
	default:
		return fmt.Sprintf("Cannot start %T", v)
	}
}

func StartEngineOf(h HasEngine[Vehicle]) string {
	switch v := h.EngineRelated.(type) {
	case Car:
		return fmt.Sprintf("Starting Car with [%d] wheels", v.Wheels)
	case Truck:
		return fmt.Sprintf("Starting Truck with [%d] wheels hauling [%d] grams", v.Wheels, v.HaulLimit)
	default:
		return fmt.Sprintf("Cannot start %T", v)
	}
}
