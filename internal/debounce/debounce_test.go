package debounce

import (
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestDebounceRunsAfterQuietPeriod(t *testing.T) {
	d := New(20 * time.Millisecond)
	defer d.Cancel()

	var calls int32
	d.Debounce(func() { atomic.AddInt32(&calls, 1) })

	time.Sleep(100 * time.Millisecond)
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("expected 1 call, got %d", got)
	}
}

func TestDebounceCoalescesBurst(t *testing.T) {
	d := New(30 * time.Millisecond)
	defer d.Cancel()

	var calls int32
	var last int32
	for i := 1; i <= 5; i++ {
		v := int32(i)
		d.Debounce(func() {
			atomic.AddInt32(&calls, 1)
			atomic.StoreInt32(&last, v)
		})
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(150 * time.Millisecond)
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("expected exactly 1 call from burst, got %d", got)
	}
	if got := atomic.LoadInt32(&last); got != 5 {
		t.Errorf("expected trailing call to win, got call %d", got)
	}
}

func TestCancelDiscardsPending(t *testing.T) {
	d := New(20 * time.Millisecond)

	var calls int32
	d.Debounce(func() { atomic.AddInt32(&calls, 1) })
	d.Cancel()

	time.Sleep(100 * time.Millisecond)
	if got := atomic.LoadInt32(&calls); got != 0 {
		t.Errorf("expected canceled call not to run, got %d calls", got)
	}
}

func TestCancelIsIdempotent(t *testing.T) {
	d := New(20 * time.Millisecond)
	d.Cancel()
	d.Debounce(func() {})
	d.Cancel()
	d.Cancel()
}

func TestImmediateSkipsQuietPeriod(t *testing.T) {
	d := New(time.Hour)

	var pending int32
	var immediate int32
	d.Debounce(func() { atomic.AddInt32(&pending, 1) })
	d.Immediate(func() { atomic.AddInt32(&immediate, 1) })

	if got := atomic.LoadInt32(&immediate); got != 1 {
		t.Errorf("expected immediate call to run synchronously, got %d", got)
	}
	if got := atomic.LoadInt32(&pending); got != 0 {
		t.Errorf("expected pending call to be canceled, got %d", got)
	}
}
