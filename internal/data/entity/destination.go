package entity

import (
	"github.com/google/uuid"
)

type Destination struct {
	Base
	Name      string    `db:"name"`
	PackageID uuid.UUID `db:"package_id"`
}
