package redisresult

import (
	"github.com/aatmaca/redisresult/redis"
)

// Result is a deferred pipeline/transaction result. It wraps the
// driver's deferred reply handle and carries an optional converter,
// an optional default-value supplier applied when the underlying value
// is absent, and a status flag marking throwaway acknowledgements.
type Result struct {
	response       redis.Response
	converter      Converter
	defaultValue   func() interface{}
	convertResults bool
	status         bool
}

// Get returns the raw driver value. An absent value is an untyped nil.
func (r *Result) Get() (interface{}, error) {
	return r.response.Get()
}

// Value returns the converted view of the eventual value: the default
// when the value is absent, the converter output otherwise. Neither
// runs when the driver reported an error. Status results have no value.
func (r *Result) Value() (interface{}, error) {
	v, err := r.response.Get()
	if err != nil {
		return nil, err
	}
	if r.status {
		return nil, nil
	}
	if v == nil {
		if r.defaultValue == nil {
			return nil, nil
		}
		return r.defaultValue(), nil
	}
	if r.converter == nil {
		return v, nil
	}
	return r.converter(v)
}

// IsStatus reports whether the result is a throwaway acknowledgement;
// only completion matters, the value is discarded.
func (r *Result) IsStatus() bool { return r.status }

// ConvertsResults reports whether the result opted into conversion
// when collected by a pipeline.
func (r *Result) ConvertsResults() bool { return r.convertResults }

// Response returns the wrapped driver handle.
func (r *Result) Response() redis.Response { return r.response }
