package controllers

import (
	"bytes"
	"io"
	"net/http"
	"strconv"

	"github.com/CPU-commits/RedInclusion/forms"
	"github.com/CPU-commits/RedInclusion/res"
	"github.com/gin-gonic/gin"
)

func abortError(c *gin.Context, err *res.ErrorRes) {
	var data map[string]interface{}
	if err.Field != "" {
		data = map[string]interface{}{"campo": err.Field}
	}
	c.AbortWithStatusJSON(err.StatusCode, &res.Response{
		Success: false,
		Message: err.Err.Error(),
		Data:    data,
	})
}

func abortBinding(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
		Success: false,
		Message: forms.ValidationMessage(err),
	})
}

func queryInt(c *gin.Context, key string, def int) int {
	value, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return def
	}
	return value
}

// The file is rendered before any header is sent, a failed render answers JSON
func streamFile(
	c *gin.Context,
	contentType,
	fileName string,
	write func(w io.Writer) *res.ErrorRes,
) {
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		c.AbortWithStatusJSON(err.StatusCode, &res.Response{
			Success: false,
			Message: err.Err.Error(),
		})
		return
	}
	c.Header("Content-Disposition", "attachment; filename=\""+fileName+"\"")
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
