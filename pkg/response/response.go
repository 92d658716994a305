// Package response defines the uniform envelope returned by every endpoint:
// {data, message, statusCode}.
package response

import "net/http"

type Response struct {
	Data       any    `json:"data"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

func Success(statusCode int, msg string, data any) Response {
	return Response{
		Data:       data,
		Message:    msg,
		StatusCode: statusCode,
	}
}

func Error(statusCode int, msg string) Response {
	return Response{
		Message:    msg,
		StatusCode: statusCode,
	}
}

// Predefined error responses for common scenarios.
var (
	EmptyRequestBodyResponse = Error(http.StatusBadRequest,
		"Request body is empty. Please provide necessary data.")

	InvalidRequestBodyResponse = Error(http.StatusBadRequest,
		"Request body could not be parsed.")

	InvalidCredentialsResponse = Error(http.StatusUnauthorized,
		"Invalid email or password.")

	UnauthorizedResponse = Error(http.StatusUnauthorized,
		"Authentication required.")

	EmailTakenResponse = Error(http.StatusConflict,
		"An account with this email already exists.")

	RecordNotFoundResponse = Error(http.StatusNotFound,
		"The requested record was not found.")

	ServerErrorResponse = Error(http.StatusInternalServerError,
		"An internal server error occurred. Please try again later.")
)
