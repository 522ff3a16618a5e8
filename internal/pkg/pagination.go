package pkg

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/studylog/internal/domain"
)

// ParsePageRequest extracts pagination and sorting parameters from query
// params. Defaulting and clamping live in domain.PageRequest.Normalized, so
// the query engine applies the same rules no matter where a request came
// from; unparseable numbers fall through as zero and pick up the defaults.
func ParsePageRequest(c *gin.Context) domain.PageRequest {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "0"))

	return domain.PageRequest{
		Page:          page,
		Size:          size,
		SortBy:        c.Query("sortBy"),
		SortDirection: c.Query("sortDirection"),
	}
}
