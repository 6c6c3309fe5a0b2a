package utils

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"branchline/internal/shared/constants"
	"branchline/internal/shared/errors"
)

// APIResponse is the uniform response envelope. Success responses carry
// data and, for listings, a count; failures carry a single error message.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Count   *int64      `json:"count,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// SuccessResponse sends a successful response with the given status code.
func SuccessResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, APIResponse{
		Success: true,
		Data:    data,
	})
}

// CreatedResponse sends a 201 response with the created resource.
func CreatedResponse(c *gin.Context, data interface{}) {
	SuccessResponse(c, http.StatusCreated, data)
}

// ListSuccessResponse sends a successful list response with an item count.
func ListSuccessResponse(c *gin.Context, items interface{}, count int64) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    items,
		Count:   &count,
	})
}

// ErrorResponse sends an error response with the given status code and message.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, APIResponse{
		Success: false,
		Error:   message,
	})
}

// ErrorResponseWithError sends an error response based on error type.
// Non-AppError values are rendered as a generic 500; the real error is
// logged at the call site, never echoed to the caller.
func ErrorResponseWithError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		ErrorResponse(c, appErr.Code, appErr.Message)
		return
	}

	// Gin binding failures surface as validator errors; they are caller
	// mistakes, not server faults.
	var verrs validator.ValidationErrors
	if stderrors.As(err, &verrs) {
		message := ValidationErrorMessage(verrs)
		if message == "" {
			message = constants.ErrMsgValidationFailed
		}
		ErrorResponse(c, http.StatusBadRequest, message)
		return
	}

	ErrorResponse(c, http.StatusInternalServerError, constants.ErrMsgInternalServerError)
}
