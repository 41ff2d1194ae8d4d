package entity

import (
	coreentity "roadwise/core/entity"
)

// Truck is one mobile classroom vehicle. The plate is the business key
// shown to dispatchers; scheduling references the id.
type Truck struct {
	Name  string `db:"name" json:"name"`
	Plate string `db:"plate" json:"plate"`
	Notes string `db:"notes" json:"notes"`
	coreentity.Archivable
	coreentity.BaseEntity
}

type PaginatedTruckEntity = coreentity.Pagination[Truck]
