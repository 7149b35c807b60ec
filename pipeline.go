package redisresult

import (
	"context"
	"fmt"

	"github.com/rs/xid"

	"github.com/aatmaca/redisresult/redis"
)

// Pipeline queues commands on a driver pipeline and collects their
// deferred results in order once the batch executes. A Pipeline and
// its Results belong to a single goroutine, like the driver pipeline
// they wrap.
type Pipeline struct {
	id        string
	pipe      redis.Pipeliner
	opts      *options
	results   []*Result
	executed  bool
	discarded bool
}

func NewPipeline(pipe redis.Pipeliner, opts ...Option) *Pipeline {
	return &Pipeline{
		id:   xid.New().String(),
		pipe: pipe,
		opts: newOptions(opts...),
	}
}

// ID returns the pipeline's correlation identifier, used in error logs.
func (p *Pipeline) ID() string { return p.id }

// Len returns the number of registered results.
func (p *Pipeline) Len() int { return len(p.results) }

// Command queues cmd and returns a builder primed with the pipeline's
// convert flag. Build and BuildStatusResult register the result here.
func (p *Pipeline) Command(ctx context.Context, cmd string, args ...interface{}) (*ResultBuilder, error) {
	if p.executed {
		return nil, ErrPipelineExecuted
	}
	if p.discarded {
		return nil, ErrPipelineDiscarded
	}
	response, err := p.pipe.Queue(ctx, cmd, args...)
	if err != nil {
		return nil, err
	}
	b := ForResponse(response)
	b.convertResults = p.opts.convertResults
	b.pipe = p
	return b, nil
}

// Do queues cmd with identity conversion.
func (p *Pipeline) Do(ctx context.Context, cmd string, args ...interface{}) (*Result, error) {
	b, err := p.Command(ctx, cmd, args...)
	if err != nil {
		return nil, err
	}
	return b.Build(), nil
}

// Status queues cmd as a throwaway acknowledgement.
func (p *Pipeline) Status(ctx context.Context, cmd string, args ...interface{}) (*Result, error) {
	b, err := p.Command(ctx, cmd, args...)
	if err != nil {
		return nil, err
	}
	return b.BuildStatusResult(), nil
}

// Append registers a result built outside of Command.
func (p *Pipeline) Append(res *Result) *Result {
	p.results = append(p.results, res)
	return res
}

// Exec executes the batch and collects values in queue order. Status
// results are checked for errors but contribute no value. A result is
// collected converted when both the pipeline and the result opted into
// conversion, raw otherwise. Exec is one-shot.
func (p *Pipeline) Exec(ctx context.Context) ([]interface{}, error) {
	if p.executed {
		return nil, ErrPipelineExecuted
	}
	if p.discarded {
		return nil, ErrPipelineDiscarded
	}
	p.executed = true
	if err := p.pipe.Exec(ctx); err != nil {
		return nil, err
	}
	values := make([]interface{}, 0, len(p.results))
	for _, res := range p.results {
		if res.IsStatus() {
			if _, err := res.Get(); err != nil {
				return nil, err
			}
			continue
		}
		var v interface{}
		var err error
		if p.opts.convertResults && res.ConvertsResults() {
			v, err = res.Value()
		} else {
			v, err = res.Get()
		}
		if err != nil {
			errLog.Print(fmt.Sprintf("redis result, pipeline %s collect failed, err: %v", p.id, err))
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// Discard abandons the batch.
func (p *Pipeline) Discard() error {
	if p.executed {
		return ErrPipelineExecuted
	}
	if p.discarded {
		return nil
	}
	p.discarded = true
	return p.pipe.Discard()
}

// Pipelined runs fn against a fresh pipeline on conn and executes it.
// The pipeline is discarded when fn fails.
func Pipelined(ctx context.Context, conn redis.Conn, fn func(p *Pipeline) error, opts ...Option) ([]interface{}, error) {
	return execute(ctx, NewPipeline(conn.Pipeline(), opts...), fn)
}

// Transactional is Pipelined wrapped in MULTI/EXEC.
func Transactional(ctx context.Context, conn redis.Conn, fn func(p *Pipeline) error, opts ...Option) ([]interface{}, error) {
	return execute(ctx, NewPipeline(conn.TxPipeline(), opts...), fn)
}

func execute(ctx context.Context, p *Pipeline, fn func(p *Pipeline) error) ([]interface{}, error) {
	if err := fn(p); err != nil {
		if err0 := p.Discard(); err0 != nil {
			errLog.Print(fmt.Sprintf("redis result, pipeline %s discard failed, err: %v", p.id, err0))
		}
		return nil, err
	}
	return p.Exec(ctx)
}
