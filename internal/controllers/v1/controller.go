// Package v1 implements the v1 API of the Agenda Pro backend.
package v1

import (
	"gorm.io/gorm"
)

// Controller holds the database handle for all v1 API handlers. It is
// constructed once per process and injected wherever the API reads or
// writes the collections.
type Controller struct {
	DB *gorm.DB
}

// NewController returns a Controller using the database handle passed in.
func NewController(db *gorm.DB) Controller {
	return Controller{DB: db}
}
