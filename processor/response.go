package processor

import (
	"maps"

	"github.com/robokoder/processor/errors"
)

// ExtraName is the extras key the chain sets to the handling entry's name.
const ExtraName = "name"

// Response is the result of processing a request. Output may be nil. The
// extras bag belongs to the response and may be written by processors and
// by the chain.
type Response struct {
	request *Request
	output  any
	status  StatusCode
	extras  map[string]any
}

// NewResponse creates a response for req.
func NewResponse(req *Request, output any, status StatusCode) *Response {
	return &Response{
		request: req,
		output:  output,
		status:  status,
		extras:  make(map[string]any),
	}
}

func (r *Response) Request() *Request  { return r.request }
func (r *Response) Output() any        { return r.output }
func (r *Response) Status() StatusCode { return r.status }

// SetExtra sets one extras entry and returns the receiver. It is a no-op on
// a nil response.
func (r *Response) SetExtra(key string, value any) *Response {
	if r == nil {
		return nil
	}
	if r.extras == nil {
		r.extras = make(map[string]any)
	}
	r.extras[key] = value
	return r
}

// Extra returns one extras entry. A nil response has none.
func (r *Response) Extra(key string) (any, bool) {
	if r == nil {
		return nil, false
	}
	v, ok := r.extras[key]
	return v, ok
}

// Extras returns a copy of the extras bag, or nil for a nil response.
func (r *Response) Extras() map[string]any {
	if r == nil {
		return nil
	}
	return maps.Clone(r.extras)
}

// Name returns the name extra set by the chain, or "".
func (r *Response) Name() string {
	if r == nil {
		return ""
	}
	s, _ := r.extras[ExtraName].(string)
	return s
}

// Err converts a non-success status into an AppError. Success statuses
// yield nil.
func (r *Response) Err() error {
	if r.status.IsSuccess() {
		return nil
	}
	reqName := ""
	if r.request != nil {
		reqName = r.request.Name()
	}
	switch r.status {
	case StatusNotImplemented:
		return errors.NotImplemented(reqName)
	case StatusUnavailable:
		return errors.Unavailable(r.Name())
	case StatusNotFound:
		return errors.NotFound("request", reqName)
	case StatusBadRequest:
		return errors.InvalidInput("", "rejected by processor "+r.Name())
	default:
		return errors.ProcessorFailed(r.Name(), int(r.status))
	}
}
