package httputil

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/campus/internal/errors"
)

const (
	defaultLimit = 50
	maxLimit     = 100
)

var (
	errInvalidOffset = apperrors.WithMessage(apperrors.ErrInvalidInput, "offset must be a non-negative integer")
	errInvalidLimit  = apperrors.WithMessage(apperrors.ErrInvalidInput, "limit must be between 1 and 100")
)

// Page is an offset/limit window over a list ordered by the store.
type Page struct {
	Offset int
	Limit  int
}

// ParsePage reads ?offset= and ?limit=. Offset defaults to 0 and limit to 50, capped at 100.
func ParsePage(c *gin.Context) (Page, error) {
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		return Page{}, errInvalidOffset
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 || limit > maxLimit {
		return Page{}, errInvalidLimit
	}

	return Page{Offset: offset, Limit: limit}, nil
}

// Body returns the list payload under key with the window echoed back. next_offset is
// null once a short page shows the list is exhausted.
func (p Page) Body(key string, items any, count int) gin.H {
	var next any
	if count == p.Limit {
		next = p.Offset + p.Limit
	}
	return gin.H{
		key:           items,
		"offset":      p.Offset,
		"limit":       p.Limit,
		"next_offset": next,
	}
}
