package redisresult

import (
	"github.com/aatmaca/redisresult/redis"
)

// ResultBuilder assembles a Result from a driver response handle.
// The zero configuration builds an identity result: no conversion,
// nil default, not a status result.
type ResultBuilder struct {
	response       redis.Response
	converter      Converter
	defaultValue   func() interface{}
	convertResults bool
	pipe           *Pipeline
}

// ForResponse starts a builder for the given deferred response.
func ForResponse(response redis.Response) *ResultBuilder {
	return &ResultBuilder{response: response}
}

// MappedWith sets the converter applied to present values.
func (b *ResultBuilder) MappedWith(converter Converter) *ResultBuilder {
	b.converter = converter
	return b
}

// DefaultNullTo supplies value when the underlying value is absent.
func (b *ResultBuilder) DefaultNullTo(value interface{}) *ResultBuilder {
	return b.DefaultNullToFunc(func() interface{} { return value })
}

// DefaultNullToFunc supplies the default lazily.
func (b *ResultBuilder) DefaultNullToFunc(fn func() interface{}) *ResultBuilder {
	b.defaultValue = fn
	return b
}

// ConvertResults sets whether the result seeks conversion when a
// pipeline collects it. Builders handed out by Pipeline.Command are
// primed with the pipeline's flag.
func (b *ResultBuilder) ConvertResults(flag bool) *ResultBuilder {
	b.convertResults = flag
	return b
}

// Build assembles the result. Builders obtained from a Pipeline
// register the result with it; registration happens once, further
// builds produce unregistered results.
func (b *ResultBuilder) Build() *Result {
	return b.build(false)
}

// BuildStatusResult assembles a throwaway status result.
func (b *ResultBuilder) BuildStatusResult() *Result {
	return b.build(true)
}

func (b *ResultBuilder) build(status bool) *Result {
	res := &Result{
		response:       b.response,
		converter:      b.converter,
		defaultValue:   b.defaultValue,
		convertResults: b.convertResults,
		status:         status,
	}
	if b.pipe != nil {
		b.pipe.Append(res)
		b.pipe = nil
	}
	return res
}
