package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

type GoRedis struct {
	client redis.UniversalClient
}

func NewGoRedis(client redis.UniversalClient) Conn {
	return &GoRedis{client: client}
}

func (c *GoRedis) Pipeline() Pipeliner   { return &goRedisPipeline{pipe: c.client.Pipeline()} }
func (c *GoRedis) TxPipeline() Pipeliner { return &goRedisPipeline{pipe: c.client.TxPipeline()} }
func (c *GoRedis) IsNil(err error) bool  { return errors.Is(err, redis.Nil) }
func (c *GoRedis) Close() error          { return c.client.Close() }

// goRedisPipeline queues commands as *redis.Cmd; go-redis resolves
// every Cmd when Exec flushes the batch.
type goRedisPipeline struct {
	pipe      redis.Pipeliner
	queued    int
	executed  bool
	discarded bool
}

func (p *goRedisPipeline) Queue(ctx context.Context, cmd string, args ...interface{}) (Response, error) {
	if p.executed {
		return nil, ErrExecuted
	}
	if p.discarded {
		return nil, ErrDiscarded
	}
	cmdArgs := make([]interface{}, 0, len(args)+1)
	cmdArgs = append(cmdArgs, cmd)
	cmdArgs = append(cmdArgs, args...)
	p.queued++
	return &goRedisResponse{p: p, cmd: p.pipe.Do(ctx, cmdArgs...)}, nil
}

func (p *goRedisPipeline) Len() int { return p.queued }

func (p *goRedisPipeline) Exec(ctx context.Context) error {
	if p.executed {
		return ErrExecuted
	}
	if p.discarded {
		return ErrDiscarded
	}
	p.executed = true
	if p.queued == 0 {
		return nil
	}
	// go-redis reports the first command error from Exec even when the
	// round trip succeeded and every Cmd resolved. Command errors
	// (redis.Nil included) surface on each Response; only
	// connection-level failures abort the batch.
	var cmdErr redis.Error
	if _, err := p.pipe.Exec(ctx); err != nil && !errors.As(err, &cmdErr) {
		return err
	}
	return nil
}

func (p *goRedisPipeline) Discard() error {
	if p.executed {
		return ErrExecuted
	}
	if p.discarded {
		return nil
	}
	p.discarded = true
	p.pipe.Discard()
	return nil
}

type goRedisResponse struct {
	p   *goRedisPipeline
	cmd *redis.Cmd
}

func (r *goRedisResponse) Get() (interface{}, error) {
	if r.p.discarded {
		return nil, ErrDiscarded
	}
	if !r.p.executed {
		return nil, ErrNotExecuted
	}
	v, err := r.cmd.Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return v, nil
}
