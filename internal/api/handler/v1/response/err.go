package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Err struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`
}

func (e *Err) Error() string {
	return e.Message
}

// ErrNotFound is rendered as a bare 404 without a body.
func ErrNotFound() *Err {
	return &Err{
		StatusCode: http.StatusNotFound,
	}
}

func ErrBadRequest(err error) *Err {
	return &Err{
		StatusCode: http.StatusBadRequest,
		Message:    err.Error(),
	}
}

// ErrConflict is a business-rule conflict about existing relations. It is
// rendered with the same status as a validation error.
func ErrConflict(message string) *Err {
	return &Err{
		StatusCode: http.StatusBadRequest,
		Message:    message,
	}
}

func ErrInternalServerError(err error) *Err {
	zap.L().Error("internal server error", zap.Error(err))

	return &Err{
		StatusCode: http.StatusInternalServerError,
		Message:    "something went wrong",
	}
}

func RenderErr(ctx *gin.Context, err *Err) {
	if err.Message == "" {
		ctx.Status(err.StatusCode)
		return
	}

	ctx.JSON(err.StatusCode, err)
}
