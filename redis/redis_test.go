package redis

import (
	"net"
	"testing"
	"time"
)

const testAddr = "127.0.0.1:6379"

func requireRedis(t *testing.T) {
	t.Helper()
	conn, err := net.DialTimeout("tcp", testAddr, time.Second)
	if err != nil {
		t.Skipf("redis not reachable at %s: %v", testAddr, err)
	}
	_ = conn.Close()
}
