package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ParamToken validates a :token path parameter as an opaque UUID token.
func ParamToken(c *gin.Context, name string) (string, bool) {
	v := c.Param(name)
	if v == "" {
		RespondError(c, name+" is required", http.StatusBadRequest)
		return "", false
	}
	if _, err := uuid.Parse(v); err != nil {
		RespondError(c, name+" is not a valid token", http.StatusBadRequest)
		return "", false
	}
	return v, true
}
