package article

import (
	"testing"
	"time"
)

func TestPurgeCacheInvokesCallback(t *testing.T) {
	done := make(chan struct{})
	h := NewHandler(nil, func() { close(done) })

	h.purgeCache()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("purge callback was not invoked")
	}
}

func TestPurgeCacheWithoutCallbackIsNoOp(t *testing.T) {
	NewHandler(nil, nil).purgeCache()
}
