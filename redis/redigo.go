package redis

import (
	"context"
	"errors"

	"github.com/gomodule/redigo/redis"
)

type Redigo struct {
	pool *redis.Pool
}

func NewRedigo(pool *redis.Pool) Conn {
	return &Redigo{pool: pool}
}

func (c *Redigo) Pipeline() Pipeliner   { return &redigoPipeline{conn: c.pool.Get()} }
func (c *Redigo) TxPipeline() Pipeliner { return &redigoPipeline{conn: c.pool.Get(), tx: true} }
func (c *Redigo) IsNil(err error) bool  { return errors.Is(err, redis.ErrNil) }
func (c *Redigo) Close() error          { return c.pool.Close() }

// redigoPipeline buffers commands with Send and resolves every queued
// Response in order at Exec, one Receive per command. In tx mode the
// batch is wrapped in MULTI/EXEC and the EXEC reply array is unpacked
// into the Responses.
type redigoPipeline struct {
	conn      redis.Conn
	tx        bool
	sendErr   error
	executed  bool
	discarded bool
	responses []*redigoResponse
}

func (p *redigoPipeline) Queue(ctx context.Context, cmd string, args ...interface{}) (Response, error) {
	if p.executed {
		return nil, ErrExecuted
	}
	if p.discarded {
		return nil, ErrDiscarded
	}
	if p.sendErr != nil {
		return nil, p.sendErr
	}
	if p.tx && len(p.responses) == 0 {
		if err := p.conn.Send("MULTI"); err != nil {
			p.sendErr = err
			return nil, err
		}
	}
	if err := p.conn.Send(cmd, args...); err != nil {
		p.sendErr = err
		return nil, err
	}
	r := &redigoResponse{p: p}
	p.responses = append(p.responses, r)
	return r, nil
}

func (p *redigoPipeline) Len() int { return len(p.responses) }

func (p *redigoPipeline) Exec(ctx context.Context) error {
	if p.executed {
		return ErrExecuted
	}
	if p.discarded {
		return ErrDiscarded
	}
	p.executed = true
	defer p.conn.Close()
	if len(p.responses) == 0 {
		return nil
	}
	if p.sendErr != nil {
		for _, r := range p.responses {
			r.err = p.sendErr
		}
		return p.sendErr
	}
	if p.tx {
		return p.execTx(ctx)
	}
	if err := p.conn.Flush(); err != nil {
		return err
	}
	for _, r := range p.responses {
		r.val, r.err = p.receive(ctx)
	}
	return nil
}

func (p *redigoPipeline) execTx(ctx context.Context) error {
	arr, err := redis.Values(p.do(ctx, "EXEC"))
	if err != nil {
		if errors.Is(err, redis.ErrNil) {
			err = ErrTxAborted
		}
		for _, r := range p.responses {
			r.err = err
		}
		return err
	}
	for i, r := range p.responses {
		if i >= len(arr) {
			r.err = ErrTxAborted
			continue
		}
		if e, ok := arr[i].(redis.Error); ok {
			r.err = e
			continue
		}
		r.val = arr[i]
	}
	return nil
}

func (p *redigoPipeline) receive(ctx context.Context) (interface{}, error) {
	if cwc, ok := p.conn.(redis.ConnWithContext); ok {
		return cwc.ReceiveContext(ctx)
	}
	return p.conn.Receive()
}

func (p *redigoPipeline) do(ctx context.Context, cmd string, args ...interface{}) (interface{}, error) {
	if cwc, ok := p.conn.(redis.ConnWithContext); ok {
		return cwc.DoContext(ctx, cmd, args...)
	}
	return p.conn.Do(cmd, args...)
}

func (p *redigoPipeline) Discard() error {
	if p.executed {
		return ErrExecuted
	}
	if p.discarded {
		return nil
	}
	p.discarded = true
	return p.conn.Close()
}

type redigoResponse struct {
	p   *redigoPipeline
	val interface{}
	err error
}

func (r *redigoResponse) Get() (interface{}, error) {
	if r.p.discarded {
		return nil, ErrDiscarded
	}
	if !r.p.executed {
		return nil, ErrNotExecuted
	}
	return r.val, r.err
}
