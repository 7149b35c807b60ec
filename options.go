package redisresult

type options struct {
	convertResults bool
}

// Option configures a Pipeline.
type Option func(*options)

// WithConvertResults controls whether Exec collects converted values
// for results that opted into conversion. Enabled by default.
func WithConvertResults(flag bool) Option {
	return func(o *options) { o.convertResults = flag }
}

func newOptions(opts ...Option) *options {
	o := &options{convertResults: true}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
