package v1

import "net/http"

// statusPolicy picks response codes. The legacy policy reproduces the codes
// existing clients were built against: 201 for every success, 500 for an
// unparseable body and 501 when a read fails.
type statusPolicy struct {
	legacy bool
}

func (p statusPolicy) created() int {
	return http.StatusCreated
}

func (p statusPolicy) read() int {
	if p.legacy {
		return http.StatusCreated
	}

	return http.StatusOK
}

func (p statusPolicy) malformedBody() int {
	if p.legacy {
		return http.StatusInternalServerError
	}

	return http.StatusBadRequest
}

func (p statusPolicy) readFailure() int {
	if p.legacy {
		return http.StatusNotImplemented
	}

	return http.StatusInternalServerError
}
