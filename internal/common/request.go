package common

import (
	"github.com/gin-gonic/gin"
)

// BindJSONObject reads the request body as a loosely typed JSON value.
// A body that is not JSON is a bad request; shape checks are left to the schemas.
func BindJSONObject(c *gin.Context) (map[string]any, error) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		return nil, ErrBadRequest.WithDetails("Request body must be a JSON object.")
	}
	return body, nil
}
