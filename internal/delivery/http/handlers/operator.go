package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lunarpay/settlement-reward-service/internal/domain"
)

const defaultSource = "PC"

// OperatorFromContext reads the operator identity forwarded by the gateway.
// The token middleware has already authenticated the caller; these headers
// are trusted attribution, not credentials.
func OperatorFromContext(c *gin.Context) domain.Operator {
	operatorID, _ := strconv.ParseInt(c.GetHeader("X-Operator-Id"), 10, 64)
	source := c.GetHeader("X-Operator-Source")
	if source == "" {
		source = defaultSource
	}
	return domain.Operator{
		ID:     operatorID,
		Name:   c.GetHeader("X-Operator-Name"),
		Source: source,
		IP:     c.ClientIP(),
	}
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
