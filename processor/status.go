package processor

import "strconv"

// StatusCode is the outcome of processing. Values follow HTTP semantics.
type StatusCode int

const (
	StatusOK             StatusCode = 200
	StatusAccepted       StatusCode = 202
	StatusNoContent      StatusCode = 204
	StatusBadRequest     StatusCode = 400
	StatusNotFound       StatusCode = 404
	StatusInternalError  StatusCode = 500
	StatusNotImplemented StatusCode = 501
	StatusUnavailable    StatusCode = 503
)

var statusText = map[StatusCode]string{
	StatusOK:             "OK",
	StatusAccepted:       "ACCEPTED",
	StatusNoContent:      "NO_CONTENT",
	StatusBadRequest:     "BAD_REQUEST",
	StatusNotFound:       "NOT_FOUND",
	StatusInternalError:  "INTERNAL_ERROR",
	StatusNotImplemented: "NOT_IMPLEMENTED",
	StatusUnavailable:    "UNAVAILABLE",
}

// String returns the status name, or the number for unknown codes.
func (s StatusCode) String() string {
	if t, ok := statusText[s]; ok {
		return t
	}
	return strconv.Itoa(int(s))
}

// IsSuccess reports whether s is in the 2xx range.
func (s StatusCode) IsSuccess() bool {
	return s >= 200 && s < 300
}

// ParseStatus maps a status name to its code.
func ParseStatus(name string) (StatusCode, bool) {
	for code, t := range statusText {
		if t == name {
			return code, true
		}
	}
	return 0, false
}
