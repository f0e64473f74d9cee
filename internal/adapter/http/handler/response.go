package handler

import "github.com/gin-gonic/gin"

// ErrorDetail is the error body shape of the prediction API
type ErrorDetail struct {
	Detail string `json:"detail"`
}

func respondDetail(c *gin.Context, status int, detail string) {
	c.JSON(status, ErrorDetail{Detail: detail})
}
