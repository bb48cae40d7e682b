package rate_limiter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMiddleware_LimitsPerClient(t *testing.T) {
	l := New(0.001, 2)
	h := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	call := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/recipe", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, call("10.0.0.1:1000"))
	assert.Equal(t, http.StatusOK, call("10.0.0.1:1001"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1:1002"))
	assert.Equal(t, http.StatusOK, call("10.0.0.2:1000"))

	l.CleanupAllVisitors()
	assert.Equal(t, http.StatusOK, call("10.0.0.1:1003"))
}

func TestCleanup_DropsIdleVisitors(t *testing.T) {
	l := New(1, 1)
	l.GetVisitor("10.0.0.1")

	l.cleanup(time.Hour)
	assert.Len(t, l.visitors, 1)

	l.cleanup(-time.Second)
	assert.Empty(t, l.visitors)
}

func TestStartVisitorCleanupLoop_StopsWithContext(t *testing.T) {
	defer goleak.VerifyNone(t)

	l := New(1, 1)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		l.StartVisitorCleanupLoop(ctx, time.Millisecond)
		close(done)
	}()

	cancel()
	<-done
}
