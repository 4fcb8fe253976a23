package outrigger

import (
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
 * The handoff tests drive the reader with a scripted framing callback
 * instead of a transport: the endpoint below is only there to satisfy
 * io_start.
 */

type io_test_rig struct {
	ep      *script_endpoint
	frames  chan *io_response
	mu      sync.Mutex
	async   []*io_response
	asyncCh chan *io_response
}

func new_io_test_rig() *io_test_rig {
	return &io_test_rig{
		ep:      new_script_endpoint(nil),
		frames:  make(chan *io_response, 16),
		asyncCh: make(chan *io_response, 16),
	}
}

func (tr *io_test_rig) read_cb(cbdata any) *io_response {
	select {
	case resp := <-tr.frames:
		return resp
	case <-time.After(500 * time.Millisecond):
		/* Idle timeout.  An armed waiter is handed this nil, so
		 * it must outlast the arming delays in the tests below. */
		return nil
	}
}

func (tr *io_test_rig) async_cb(cbdata any, resp *io_response) {
	if resp == nil {
		return /* idle timeout, not a message */
	}
	tr.mu.Lock()
	tr.async = append(tr.async, resp)
	tr.mu.Unlock()
	tr.asyncCh <- resp
}

func resp_of(s string) *io_response {
	return &io_response{len: len(s), msg: []byte(s)}
}

func TestIOAsyncDelivery(t *testing.T) {
	var tr = new_io_test_rig()
	var hdl = io_start(tr.ep, tr.read_cb, tr.async_cb, nil)
	require.NotNil(t, hdl)
	defer io_end(hdl)

	// With no synchronous waiter, every frame goes to the async callback.
	tr.frames <- resp_of("AI1;")

	select {
	case resp := <-tr.asyncCh:
		assert.Equal(t, "AI1;", string(resp.msg))
	case <-time.After(time.Second):
		t.Fatal("async frame was not delivered")
	}
}

func TestIOGetResponseMatch(t *testing.T) {
	var tr = new_io_test_rig()
	var hdl = io_start(tr.ep, tr.read_cb, tr.async_cb, nil)
	require.NotNil(t, hdl)
	defer io_end(hdl)

	var got = make(chan *io_response, 1)
	go func() {
		got <- io_get_response(hdl, []byte("IF"), 2, 0)
	}()

	// Give the waiter time to arm.
	SLEEP_MS(100)

	// A non-matching frame must be diverted to the async callback
	// and the wait must continue.
	tr.frames <- resp_of("AI1;")
	tr.frames <- resp_of("IF00014250000;")

	select {
	case resp := <-got:
		require.NotNil(t, resp)
		assert.Equal(t, "IF00014250000;", string(resp.msg))
	case <-time.After(2 * time.Second):
		t.Fatal("waiter did not get the matching frame")
	}

	select {
	case resp := <-tr.asyncCh:
		assert.Equal(t, "AI1;", string(resp.msg))
	case <-time.After(time.Second):
		t.Fatal("non-matching frame was not diverted to async")
	}
}

func TestIOGetResponseEOF(t *testing.T) {
	var tr = new_io_test_rig()
	var hdl = io_start(tr.ep, tr.read_cb, tr.async_cb, nil)
	require.NotNil(t, hdl)
	defer io_end(hdl)

	// Arm a waiter and let the framing callback time out on it.
	// The waiter must observe the failure as nil, and the handle
	// must still be usable afterwards.
	var resp = io_get_response(hdl, []byte("IF"), 2, 0)
	assert.Nil(t, resp)

	var got = make(chan *io_response, 1)
	go func() {
		got <- io_get_response(hdl, []byte("FA"), 2, 0)
	}()
	SLEEP_MS(100)
	tr.frames <- resp_of("FA00014250000;")

	select {
	case resp := <-got:
		require.NotNil(t, resp)
		assert.Equal(t, "FA00014250000;", string(resp.msg))
	case <-time.After(2 * time.Second):
		t.Fatal("handle wedged after an EOF wait")
	}
}

func TestIOExactlyOnceDelivery(t *testing.T) {
	// Every frame the reader produces must end up in exactly one
	// place: the waiter (when it matches) or the async callback.
	var tr = new_io_test_rig()
	var hdl = io_start(tr.ep, tr.read_cb, tr.async_cb, nil)
	require.NotNil(t, hdl)
	defer io_end(hdl)

	const rounds = 10

	var matched = 0
	for i := 0; i < rounds; i++ {
		var got = make(chan *io_response, 1)
		go func() {
			got <- io_get_response(hdl, []byte("IF"), 2, 0)
		}()
		SLEEP_MS(60)
		tr.frames <- resp_of("XX;") /* async */
		tr.frames <- resp_of("IF0;")

		select {
		case resp := <-got:
			require.NotNil(t, resp)
			matched++
		case <-time.After(2 * time.Second):
			t.Fatal("waiter starved")
		}
	}

	// All the non-matching frames, eventually, and nothing else.
	require.Eventually(t, func() bool {
		tr.mu.Lock()
		defer tr.mu.Unlock()
		return len(tr.async) == rounds
	}, 2*time.Second, 10*time.Millisecond)

	assert.Equal(t, rounds, matched)

	tr.mu.Lock()
	for _, resp := range tr.async {
		assert.Equal(t, "XX;", string(resp.msg))
	}
	tr.mu.Unlock()
}

func TestIOPrefixMatchBounds(t *testing.T) {
	assert.True(t, io_prefix_match([]byte("IF123"), []byte("IF"), 2, 0))
	assert.False(t, io_prefix_match([]byte("I"), []byte("IF"), 2, 0))
	assert.False(t, io_prefix_match([]byte("FA123"), []byte("IF"), 2, 0))
	assert.True(t, io_prefix_match([]byte("xIF"), []byte("IF"), 2, 1))
}

func TestIOEndReturnsEINVALOnNil(t *testing.T) {
	assert.Equal(t, int(syscall.EINVAL), io_end(nil))
}

func TestIOPassThroughs(t *testing.T) {
	var tr = new_io_test_rig()
	var hdl = io_start(tr.ep, tr.read_cb, tr.async_cb, nil)
	require.NotNil(t, hdl)
	defer io_end(hdl)

	assert.Equal(t, 0, io_pending(hdl))
	assert.Equal(t, 1, io_wait_write(hdl, 10))
	assert.Equal(t, 3, io_write(hdl, []byte("ID;"), 10))
	assert.Equal(t, "ID;", tr.ep.sent())

	tr.ep.push("X")
	assert.Equal(t, 1, io_wait_read(hdl, 100))
	assert.Equal(t, 1, io_pending(hdl))
	var buf [1]byte
	assert.Equal(t, 1, io_read(hdl, buf[:], 100))
	assert.Equal(t, byte('X'), buf[0])

	assert.Equal(t, -1, io_pending(nil))
	assert.Equal(t, -1, io_write(nil, []byte("x"), 1))
	assert.Equal(t, -1, io_read(nil, buf[:], 1))
}
