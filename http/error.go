package http

import (
	"net/http"

	"github.com/fwojciec/smartscrape"
)

// codes maps application error codes to HTTP status codes.
var codes = map[string]int{
	smartscrape.ECANCELED: 499,
	smartscrape.ECONFLICT: http.StatusConflict,
	smartscrape.EINVALID:  http.StatusBadRequest,
	smartscrape.ENOTFOUND: http.StatusNotFound,
	smartscrape.EINTERNAL: http.StatusInternalServerError,
}

// ErrorStatusCode returns the HTTP status code for an application error code.
func ErrorStatusCode(code string) int {
	if v, ok := codes[code]; ok {
		return v
	}
	return http.StatusInternalServerError
}

// Error writes err as a JSON error response.
// Internal errors are reported without their message.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	code, message := smartscrape.ErrorCode(err), smartscrape.ErrorMessage(err)
	if code == smartscrape.EINTERNAL {
		message = "internal error"
	}
	writeJSON(w, ErrorStatusCode(code), &ErrorResponse{Code: code, Error: message})
}

// ErrorResponse is the JSON body of an error response.
type ErrorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}
