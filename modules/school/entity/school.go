package entity

import (
	coreentity "roadwise/core/entity"
)

// School is a customer school served by the mobile classrooms.
type School struct {
	Name         string `db:"name" json:"name"`
	Slug         string `db:"slug" json:"slug"`
	Address      string `db:"address" json:"address"`
	ContactName  string `db:"contact_name" json:"contact_name"`
	ContactPhone string `db:"contact_phone" json:"contact_phone"`
	coreentity.Archivable
	coreentity.BaseEntity
}

type PaginatedSchoolEntity = coreentity.Pagination[School]
