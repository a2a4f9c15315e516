package models

// Domain error types. The HTTP helper maps these to status codes by type,
// so services return them instead of raw errors.New values.

type ErrorValidation struct {
	Message string
}

func (e ErrorValidation) Error() string { return e.Message }

type ErrorParse struct {
	Message string
}

func (e ErrorParse) Error() string { return e.Message }

type ErrorUnauthorized struct {
	Message string
}

func (e ErrorUnauthorized) Error() string { return e.Message }

type ErrorForbidden struct {
	Message string
}

func (e ErrorForbidden) Error() string { return e.Message }

type ErrorNotFound struct {
	Message string
}

func (e ErrorNotFound) Error() string { return e.Message }

type ErrorConflict struct {
	Message string
}

func (e ErrorConflict) Error() string { return e.Message }

type ErrorInternalServer struct {
	Message string
}

func (e ErrorInternalServer) Error() string { return e.Message }
