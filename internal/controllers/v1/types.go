package v1

import (
	"time"

	"github.com/agenda-pro/backend/internal/types"
	"github.com/gin-gonic/gin"
)

type URIMonth struct {
	Month time.Time `uri:"month" time_format:"2006-01" time_utc:"1" example:"2024-03" binding:"required"` // Year and month in YYYY-MM format
}

type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}

// referenceDate returns the reference date for derived views, taken from the
// "date" query parameter and defaulting to today.
func referenceDate(c *gin.Context) (types.Date, error) {
	if s, ok := c.GetQuery("date"); ok {
		return types.ParseDate(s)
	}

	return types.DateOf(time.Now()), nil
}
