package breaker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBreakerStaysClosedUnderThreshold(t *testing.T) {
	b := New(3, time.Minute)

	b.RecordFailure()
	b.RecordFailure()

	assert.Equal(t, StateClosed, b.GetState())
	assert.True(t, b.Allow())
}

func TestBreakerOpensOverThreshold(t *testing.T) {
	b := New(2, time.Minute)

	for i := 0; i < 3; i++ {
		b.RecordFailure()
	}

	assert.Equal(t, StateOpen, b.GetState())
	assert.False(t, b.Allow())
}

func TestBreakerHalfOpenAfterTimeout(t *testing.T) {
	b := New(0, 10*time.Millisecond)

	b.RecordFailure()
	assert.False(t, b.Allow())

	time.Sleep(20 * time.Millisecond)

	assert.True(t, b.Allow())
	assert.Equal(t, StateHalfOpen, b.GetState())
}

func TestBreakerClosesOnProbeSuccess(t *testing.T) {
	b := New(0, 10*time.Millisecond)

	b.RecordFailure()
	time.Sleep(20 * time.Millisecond)
	assert.True(t, b.Allow())

	b.RecordSuccess()

	assert.Equal(t, StateClosed, b.GetState())
	assert.True(t, b.Allow())
}

func TestBreakerReopensOnProbeFailure(t *testing.T) {
	b := New(0, 10*time.Millisecond)

	b.RecordFailure()
	time.Sleep(20 * time.Millisecond)
	assert.True(t, b.Allow())

	b.RecordFailure()

	assert.Equal(t, StateOpen, b.GetState())
	assert.False(t, b.Allow())
}

func TestBreakerAgesOutOldFailures(t *testing.T) {
	b := NewWithWindow(1, time.Minute, 10*time.Millisecond)

	b.RecordFailure()
	time.Sleep(20 * time.Millisecond)
	b.RecordFailure()

	// The first failure fell out of the window, so the count never
	// exceeded the threshold.
	assert.Equal(t, StateClosed, b.GetState())
}
