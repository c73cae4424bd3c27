package loop

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestHubJoinLeave(t *testing.T) {
	h := NewHub(log.New(io.Discard))

	_, leaveA := h.Join("a", "alice")
	_, leaveB := h.Join("b", "bob")
	assert.Equal(t, 2, h.Active())

	leaveA()
	leaveA()
	assert.Equal(t, 1, h.Active())

	leaveB()
	assert.Zero(t, h.Active())
}

func TestHubShutdownWaitsForSessions(t *testing.T) {
	h := NewHub(log.New(io.Discard))
	shutdown, leave := h.Join("a", "alice")

	go func() {
		<-shutdown
		time.Sleep(50 * time.Millisecond)
		leave()
	}()

	assert.True(t, h.Shutdown(5*time.Second))
	assert.Zero(t, h.Active())
}

func TestHubShutdownTimesOut(t *testing.T) {
	h := NewHub(log.New(io.Discard))
	shutdown, _ := h.Join("a", "alice")

	assert.False(t, h.Shutdown(50*time.Millisecond))

	select {
	case <-shutdown:
	default:
		t.Fatal("shutdown channel not closed")
	}
	assert.False(t, h.Shutdown(10*time.Millisecond), "second shutdown does not panic")
}

func TestHubShutdownWithNoSessions(t *testing.T) {
	h := NewHub(log.New(io.Discard))
	assert.True(t, h.Shutdown(time.Second))
}

func TestHubShutdownNoticesLeaveWithinOnePoll(t *testing.T) {
	h := NewHub(log.New(io.Discard))
	shutdown, leave := h.Join("a", "alice")
	go func() {
		<-shutdown
		leave()
	}()

	start := time.Now()
	assert.True(t, h.Shutdown(time.Minute))
	assert.Less(t, time.Since(start), 2*ShutdownPoll)
}
