package redisresult

import (
	"context"

	"github.com/aatmaca/redisresult/redis"
)

type stubResponse struct {
	val interface{}
	err error
}

func (r *stubResponse) Get() (interface{}, error) { return r.val, r.err }

// stubPipeliner resolves queued responses in order from a prepared
// reply list at Exec. An error in the list resolves as a command error.
type stubPipeliner struct {
	replies   []interface{}
	execErr   error
	executed  bool
	discarded bool
	queued    []*stubPending
}

func (p *stubPipeliner) Queue(_ context.Context, _ string, _ ...interface{}) (redis.Response, error) {
	if p.executed {
		return nil, redis.ErrExecuted
	}
	if p.discarded {
		return nil, redis.ErrDiscarded
	}
	r := &stubPending{p: p, idx: len(p.queued)}
	p.queued = append(p.queued, r)
	return r, nil
}

func (p *stubPipeliner) Len() int { return len(p.queued) }

func (p *stubPipeliner) Exec(context.Context) error {
	if p.executed {
		return redis.ErrExecuted
	}
	if p.discarded {
		return redis.ErrDiscarded
	}
	p.executed = true
	return p.execErr
}

func (p *stubPipeliner) Discard() error {
	if p.executed {
		return redis.ErrExecuted
	}
	p.discarded = true
	return nil
}

type stubPending struct {
	p   *stubPipeliner
	idx int
}

func (r *stubPending) Get() (interface{}, error) {
	if r.p.discarded {
		return nil, redis.ErrDiscarded
	}
	if !r.p.executed {
		return nil, redis.ErrNotExecuted
	}
	if r.idx >= len(r.p.replies) {
		return nil, nil
	}
	v := r.p.replies[r.idx]
	if err, ok := v.(error); ok {
		return nil, err
	}
	return v, nil
}

type stubConn struct {
	pipe *stubPipeliner
	tx   *stubPipeliner
}

func (c *stubConn) Pipeline() redis.Pipeliner   { return c.pipe }
func (c *stubConn) TxPipeline() redis.Pipeliner { return c.tx }
func (c *stubConn) IsNil(error) bool            { return false }
func (c *stubConn) Close() error                { return nil }
