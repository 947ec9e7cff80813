package terminal

import (
	"context"
	"errors"
	"testing"

	"termsnake/game"
)

type countingRecorder struct {
	accepted, overwritten int
}

func (r *countingRecorder) IncInputsAccepted()    { r.accepted++ }
func (r *countingRecorder) IncInputsOverwritten() { r.overwritten++ }

func TestListenerStoresLatestDirection(t *testing.T) {
	ft := &fakeTerm{events: []KeyEvent{
		{Key: KeyRune, Rune: 'w'},
		{Key: KeyRune, Rune: 'x'},
		{Key: KeyLeft},
		{Key: KeyRune, Rune: 'c', Ctrl: true},
		{Key: KeyDown},
	}}
	latch := game.NewLatch(game.DirRight)
	rec := &countingRecorder{}
	interrupted := false
	l := &Listener{Events: ft, Latch: latch, Metrics: rec, Interrupt: func() { interrupted = true }}

	if err := l.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !interrupted {
		t.Error("interrupt callback not called")
	}
	if got := latch.Load(); got != game.DirLeft {
		t.Errorf("expected left, got %s", got)
	}
	if rec.accepted != 2 || rec.overwritten != 1 {
		t.Errorf("unexpected counts %+v", rec)
	}
	if len(ft.events) != 1 {
		t.Errorf("listener kept reading after interrupt")
	}
}

func TestListenerPropagatesReadErrors(t *testing.T) {
	boom := errors.New("boom")
	l := &Listener{Events: &fakeTerm{readErr: boom}, Latch: game.NewLatch(game.DirRight)}
	if err := l.Run(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped read error, got %v", err)
	}
}

func TestListenerQuietAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	l := &Listener{Events: &fakeTerm{readErr: errors.New("closed")}, Latch: game.NewLatch(game.DirRight)}
	if err := l.Run(ctx); err != nil {
		t.Fatalf("expected nil after cancel, got %v", err)
	}
}
