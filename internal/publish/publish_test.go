package publish

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/riskgridgo/internal/config"
)

func TestPlanRejectsBadURL(t *testing.T) {
	cfg := &config.Publish{
		URL:     "://not-a-url",
		Event:   "plan",
		Timeout: "1s",
	}

	err := Plan(context.Background(), cfg, nil)
	assert.ErrorContains(t, err, "failed to parse publish URL")
}

func TestPlanTimesOutOnUnresponsiveEndpoint(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { listener.Close() })

	// Hold accepted connections open without ever completing the websocket
	// handshake, so the client can only give up via the publish timeout.
	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			defer conn.Close()
		}
	}()

	cfg := &config.Publish{
		URL:     "http://" + listener.Addr().String(),
		Event:   "plan",
		Timeout: "200ms",
	}

	err = Plan(context.Background(), cfg, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out publishing plan")
}
