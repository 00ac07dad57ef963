package stack

import (
	"bufio"
	"net"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Minimal NATS server: sends INFO and answers every PING
func serveNats(t *testing.T) string {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { listener.Close() })

	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			go func(conn net.Conn) {
				defer conn.Close()
				conn.Write([]byte("INFO {\"server_id\":\"test\",\"version\":\"2.9.0\",\"max_payload\":1048576}\r\n"))
				reader := bufio.NewReader(conn)
				for {
					line, err := reader.ReadString('\n')
					if err != nil {
						return
					}
					if strings.HasPrefix(line, "PING") {
						conn.Write([]byte("PONG\r\n"))
					}
				}
			}(conn)
		}
	}()
	return "nats://" + listener.Addr().String()
}

func unusedAddr(t *testing.T) string {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())
	return "nats://" + addr
}

func TestPublishRetriesAfterFailedConnect(t *testing.T) {
	client := &NatsClient{url: unusedAddr(t)}
	defer client.Close()

	require.Error(t, client.PublishEncode("red_inclusion.test", map[string]string{"a": "b"}))
	assert.Nil(t, client.conn)

	client.url = serveNats(t)
	assert.NoError(t, client.PublishEncode("red_inclusion.test", map[string]string{"a": "b"}))
	assert.NotNil(t, client.conn)
}
