package api

import "github.com/openwellness/burnout-api/store"

var (
	errorMessageMap = map[int64]string{
		999: "internal server error",

		1010: "invalid parameters",
		1011: "cannot parse request",
		1012: store.ErrInvalidDate.Error(),
		1013: store.ErrInvalidDateRange.Error(),

		1100: "burnout classifier unavailable",
		1101: "unable to save checkout",
		1102: "unable to read checkout history",
		1103: "unable to read aggregates",
		1104: "department already registered",
	}

	errorInternalServer = errorJSON(999)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)
	errorInvalidDate        = errorJSON(1012)
	errorInvalidDateRange   = errorJSON(1013)

	errorClassifierUnavailable = errorJSON(1100)
	errorCheckoutSave          = errorJSON(1101)
	errorCheckoutHistory       = errorJSON(1102)
	errorAggregateQuery        = errorJSON(1103)
	errorDepartmentTaken       = errorJSON(1104)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
