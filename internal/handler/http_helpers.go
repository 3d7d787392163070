package handler

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	// 让校验错误按 json 字段名报告，而不是 Go 字段名
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

func respondSuccess(c *gin.Context, status int, message string, data interface{}) {
	body := gin.H{"success": true}
	if message != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": message})
}

func respondNotFound(c *gin.Context, message, errorCode string) {
	body := gin.H{"success": false, "message": message}
	if errorCode != "" {
		body["error_code"] = errorCode
	}
	c.JSON(http.StatusNotFound, body)
}

func respondValidation(c *gin.Context, fieldErrors map[string][]string) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"success": false,
		"message": "Validation error",
		"errors":  fieldErrors,
	})
}

// respondInternal logs the fault and hides its message unless debug mode is
// on, so internals never leak into production responses.
func (a *API) respondInternal(c *gin.Context, message string, err error) {
	a.log.Error().Err(err).Str("path", c.FullPath()).Msg(message)

	body := gin.H{
		"success":    false,
		"message":    message,
		"error_code": "INTERNAL_SERVER_ERROR",
	}
	if a.debug && err != nil {
		body["debug"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}

// bindJSON binds the request body and shapes validator failures into the
// per-field errors map of the response envelope.
func bindJSON(c *gin.Context, dst interface{}) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fieldErrors := make(map[string][]string, len(verrs))
		for _, fe := range verrs {
			fieldErrors[fe.Field()] = append(fieldErrors[fe.Field()], validationMessage(fe))
		}
		respondValidation(c, fieldErrors)
		return false
	}

	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": "Invalid request payload",
	})
	return false
}

func validationMessage(fe validator.FieldError) string {
	field := strings.ReplaceAll(fe.Field(), "_", " ")
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", field)
	case "max":
		return fmt.Sprintf("The %s may not be greater than %s characters.", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("The selected %s is invalid.", field)
	case "url":
		return fmt.Sprintf("The %s format is invalid.", field)
	default:
		return fmt.Sprintf("The %s field is invalid.", field)
	}
}

func parseUintParam(c *gin.Context, key string) (uint, error) {
	raw := c.Param(key)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return uint(id), nil
}
