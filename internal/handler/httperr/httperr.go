package httperr

import (
	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
		// Reason is a stable machine-readable code (e.g. SLOT_CONFLICT)
		// that clients branch on; Message is for humans only.
		Reason string `json:"reason,omitempty"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	AbortWithReason(c, status, err, msg, "", detail)
}

func AbortWithReason(c *gin.Context, status int, err error, msg, reason string, detail any) {
	if err == nil {
		panic("AbortWithReason: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Error.Reason = reason
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
