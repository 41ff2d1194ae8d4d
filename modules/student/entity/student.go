package entity

import (
	coreentity "roadwise/core/entity"

	"github.com/google/uuid"
)

// Student is a pupil enrolled through one school.
type Student struct {
	SchoolID      uuid.UUID `db:"school_id" json:"school_id"`
	FirstName     string    `db:"first_name" json:"first_name"`
	LastName      string    `db:"last_name" json:"last_name"`
	GuardianName  string    `db:"guardian_name" json:"guardian_name"`
	GuardianPhone string    `db:"guardian_phone" json:"guardian_phone"`
	coreentity.Archivable
	coreentity.BaseEntity
}

type PaginatedStudentEntity = coreentity.Pagination[Student]
