package game

import (
	"sync"
	"testing"
)

func TestLatchLastWriteWins(t *testing.T) {
	l := NewLatch(DirRight)
	if got := l.Load(); got != DirRight {
		t.Fatalf("expected initial right, got %s", got)
	}
	if l.Store(DirUp) {
		t.Error("first store should not report an overwrite")
	}
	if !l.Store(DirLeft) {
		t.Error("second unread store should report an overwrite")
	}
	if got := l.Load(); got != DirLeft {
		t.Errorf("expected left, got %s", got)
	}
	if l.Store(DirDown) {
		t.Error("store after load should not report an overwrite")
	}
	if l.Store(DirDown) {
		t.Error("storing the same direction is not a dropped press")
	}
}

func TestLatchConcurrentAccess(t *testing.T) {
	l := NewLatch(DirRight)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(d Direction) {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				l.Store(d)
				_ = l.Load()
			}
		}(allDirs[i%len(allDirs)])
	}
	wg.Wait()
	switch l.Load() {
	case DirUp, DirDown, DirLeft, DirRight:
	default:
		t.Error("latch holds an invalid direction")
	}
}
