package handler

import (
	"net/http"

	"access-log-service/internal/repository"
	"access-log-service/internal/service"
	"access-log-service/pkg/utils"
)

// errorStatuses maps domain errors to HTTP statuses; anything else is a
// storage error and answers 500 with the error message.
var errorStatuses = []utils.StatusMapping{
	{Err: service.ErrValidation, Status: http.StatusBadRequest},
	{Err: service.ErrInvalidCredentials, Status: http.StatusUnauthorized},
	{Err: repository.ErrLogNotFound, Status: http.StatusNotFound},
	{Err: repository.ErrReadOnly, Status: http.StatusNotImplemented},
}
