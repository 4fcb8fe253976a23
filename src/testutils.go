package outrigger

import (
	"io"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func AssertOutputContains(t *testing.T, command func(), expectedOutputContains string) {
	t.Helper()

	var oldStdout = os.Stdout
	defer func() {
		os.Stdout = oldStdout
	}()

	var r, w, _ = os.Pipe()
	os.Stdout = w

	command()

	w.Close() //nolint:gosec

	os.Stdout = oldStdout

	var outputBytes, readErr = io.ReadAll(r)

	require.NoError(t, readErr)

	var outputString = string(outputBytes)

	assert.Contains(t, outputString, expectedOutputContains)
}

/*
 * Scripted endpoint standing in for a serial port.  Everything the
 * handle writes is captured; once a full ';'-terminated command has
 * arrived, the respond callback decides what bytes (if any) come back
 * after a short delay, like a rig would.
 */

type script_endpoint struct {
	mu      sync.Mutex
	rx      []byte
	written []byte
	partial []byte
	notify  chan struct{}
	closed  bool

	/* Maps one complete command frame to the reply bytes. */
	respond func(cmd string) string

	/* Delay before a reply becomes readable. */
	reply_delay time.Duration
}

func new_script_endpoint(respond func(cmd string) string) *script_endpoint {
	return &script_endpoint{
		notify:      make(chan struct{}, 1),
		respond:     respond,
		reply_delay: 20 * time.Millisecond,
	}
}

func (ep *script_endpoint) poke() {
	select {
	case ep.notify <- struct{}{}:
	default:
	}
}

/* Push bytes that the "rig" sends on its own (AI mode). */
func (ep *script_endpoint) push(data string) {
	ep.mu.Lock()
	ep.rx = append(ep.rx, data...)
	ep.mu.Unlock()
	ep.poke()
}

func (ep *script_endpoint) wait_read(timeout_ms uint) int {
	var deadline = time.After(time.Duration(timeout_ms) * time.Millisecond)
	for {
		ep.mu.Lock()
		var ready = len(ep.rx) > 0
		var closed = ep.closed
		ep.mu.Unlock()
		if closed {
			return -1
		}
		if ready {
			return 1
		}
		select {
		case <-ep.notify:
		case <-deadline:
			return 0
		}
	}
}

func (ep *script_endpoint) read(buf []byte, timeout_ms uint) int {
	if ep.wait_read(timeout_ms) != 1 {
		return -1
	}
	ep.mu.Lock()
	var n = copy(buf, ep.rx)
	ep.rx = ep.rx[n:]
	ep.mu.Unlock()
	return n
}

func (ep *script_endpoint) wait_write(timeout_ms uint) int {
	return 1
}

func (ep *script_endpoint) write(buf []byte, timeout_ms uint) int {
	ep.mu.Lock()
	ep.written = append(ep.written, buf...)
	ep.partial = append(ep.partial, buf...)

	var replies []string
	for {
		var term = -1
		for i, b := range ep.partial {
			if b == ';' {
				term = i
				break
			}
		}
		if term < 0 {
			break
		}
		var cmd = string(ep.partial[:term+1])
		ep.partial = append([]byte(nil), ep.partial[term+1:]...)
		if ep.respond != nil {
			if reply := ep.respond(cmd); reply != "" {
				replies = append(replies, reply)
			}
		}
	}
	ep.mu.Unlock()

	for _, reply := range replies {
		go func(data string) {
			time.Sleep(ep.reply_delay)
			ep.push(data)
		}(reply)
	}

	return len(buf)
}

func (ep *script_endpoint) pending() int {
	ep.mu.Lock()
	defer ep.mu.Unlock()
	return len(ep.rx)
}

func (ep *script_endpoint) close() error {
	ep.mu.Lock()
	ep.closed = true
	ep.mu.Unlock()
	ep.poke()
	return nil
}

func (ep *script_endpoint) sent() string {
	ep.mu.Lock()
	defer ep.mu.Unlock()
	return string(ep.written)
}
