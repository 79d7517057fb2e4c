package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lunarpay/settlement-reward-service/internal/domain"
)

const (
	CodeOK               = 0
	CodeInternal         = 1000
	CodeValidation       = 1001
	CodeNotFound         = 1002
	CodeDuplicateBinding = 1003
	CodeDuplicateConfig  = 1004
	CodeStaleVersion     = 1005
	CodeAlreadyResolved  = 1006
	CodeUnauthorized     = 1007
)

type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// PageData is the unified pagination envelope.
type PageData struct {
	List     interface{} `json:"list"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
}

func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Code: CodeOK, Message: "success", Data: data})
}

func Page(c *gin.Context, list interface{}, total int64, page, pageSize int) {
	OK(c, PageData{List: list, Total: total, Page: page, PageSize: pageSize})
}

func Fail(c *gin.Context, status, code int, message string) {
	c.JSON(status, Response{Code: code, Message: message})
}

func BadRequest(c *gin.Context, message string) {
	Fail(c, http.StatusBadRequest, CodeValidation, message)
}

// FromError maps domain errors to the envelope. A non-zero code always means
// the mutation was rejected whole; callers never see a partial commit.
func FromError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		Fail(c, http.StatusBadRequest, CodeValidation, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		Fail(c, http.StatusNotFound, CodeNotFound, err.Error())
	case errors.Is(err, domain.ErrDuplicateBinding):
		Fail(c, http.StatusConflict, CodeDuplicateBinding, err.Error())
	case errors.Is(err, domain.ErrDuplicateActiveConfig):
		Fail(c, http.StatusConflict, CodeDuplicateConfig, err.Error())
	case errors.Is(err, domain.ErrStaleVersion):
		Fail(c, http.StatusConflict, CodeStaleVersion, err.Error())
	case errors.Is(err, domain.ErrAlreadyResolved):
		Fail(c, http.StatusConflict, CodeAlreadyResolved, err.Error())
	default:
		Fail(c, http.StatusInternalServerError, CodeInternal, "internal error")
	}
}
