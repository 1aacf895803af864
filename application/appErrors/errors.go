package apperrors

import (
	"net/http"

	"stockroom.io/infrastructure/logger"
	server_response "stockroom.io/infrastructure/serverResponse"
)

func NotFoundError(ctx interface{}, message string) {
	server_response.Responder.Respond(ctx, http.StatusNotFound, message, nil, nil)
}

func ValidationFailedError(ctx interface{}, errMessages *[]error) {
	server_response.Responder.Respond(ctx, http.StatusUnprocessableEntity, "payload validation failed", nil, *errMessages)
}

func EntityAlreadyExistsError(ctx interface{}, message string) {
	server_response.Responder.Respond(ctx, http.StatusConflict, message, nil, nil)
}

func AuthenticationError(ctx interface{}, message string) {
	server_response.Responder.Respond(ctx, http.StatusUnauthorized, message, nil, nil)
}

func ExternalDependencyError(ctx interface{}, serviceName string, statusCode string, err error) {
	logger.Error("external dependency failure", logger.LoggerOptions{
		Key:  "service",
		Data: serviceName,
	}, logger.LoggerOptions{
		Key:  "statusCode",
		Data: statusCode,
	}, logger.LoggerOptions{
		Key:  "error",
		Data: err,
	})
	server_response.Responder.Respond(ctx, http.StatusServiceUnavailable,
		"our service is temporarily down. please check back later.", nil, nil)
}

func ErrorProcessingPayload(ctx interface{}) {
	server_response.Responder.Respond(ctx, http.StatusBadRequest, "abnormal payload passed", nil, nil)
}

func FatalServerError(ctx interface{}, err error) {
	logger.Error("fatal server error", logger.LoggerOptions{
		Key:  "error",
		Data: err,
	})
	server_response.Responder.Respond(ctx, http.StatusInternalServerError,
		"our service is temporarily down. please check back later.", nil, nil)
}

func UnknownError(ctx interface{}, err error) {
	server_response.Responder.Respond(ctx, http.StatusBadRequest,
		"something went wrong somewhere. please check back later.", nil, nil)
}

func ClientError(ctx interface{}, msg string, errs []error) {
	server_response.Responder.Respond(ctx, http.StatusBadRequest, msg, nil, errs)
}

func MalformedHeader(ctx interface{}) {
	server_response.Responder.Respond(ctx, http.StatusBadRequest, "malformed header information", nil, nil)
}

func UnsupportedUserAgent(ctx interface{}) {
	server_response.Responder.Respond(ctx, http.StatusBadRequest, "unsupported user agent", nil, nil)
}
