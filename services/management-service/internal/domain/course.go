package domain

import (
	"time"

	"github.com/google/uuid"
)

type Course struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       int
	OperatorID  uuid.UUID

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CourseUpdate — частичное обновление: nil-поля не трогаем.
type CourseUpdate struct {
	Name        *string
	Description *string
	Price       *int
}
