package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/opticore/optipos/internal/domain/entity"
	"github.com/opticore/optipos/internal/domain/gateway"
)

// GetUser extracts the authenticated user from the Gin context
func GetUser(c *gin.Context) *entity.User {
	value, exists := c.Get("user")
	if !exists {
		return nil
	}
	user, _ := value.(*entity.User)
	return user
}

// GetSessionID extracts the terminal session ID from the Gin context
func GetSessionID(c *gin.Context) string {
	return c.GetString("session_id")
}

// listParams reads the common list-screen query parameters
func listParams(c *gin.Context) gateway.ListParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))
	return gateway.ListParams{
		Page:    page,
		PerPage: perPage,
		Search:  c.Query("search"),
	}
}

// dateRange reads start_date/end_date query parameters, defaulting to the
// current month when absent.
func dateRange(c *gin.Context) (time.Time, time.Time, error) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := now

	if s := c.Query("start_date"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			return from, to, err
		}
		from = parsed
	}
	if s := c.Query("end_date"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			return from, to, err
		}
		to = parsed
	}
	return from, to, nil
}
