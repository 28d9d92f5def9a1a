package store

import (
	"context"
	"errors"
	"testing"
)

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	sess, err := s.CreateSession(ctx)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if sess.ID == "" {
		t.Fatal("expected non-empty ID")
	}

	t1, err := s.AppendTurn(ctx, TurnParams{SessionID: sess.ID, Kind: "hint", Guess: "맑음", First: "사과", Second: "바나나", Remaining: 10})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	t2, _ := s.AppendTurn(ctx, TurnParams{SessionID: sess.ID, Kind: "jamo", Jamo: "ㅂ", Remaining: 4})
	if t1.Seq != 1 || t2.Seq != 2 {
		t.Errorf("expected seq 1,2 got %d,%d", t1.Seq, t2.Seq)
	}

	got, err := s.GetSession(ctx, sess.ID)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if len(got.Turns) != 2 || got.TurnCount != 2 {
		t.Fatalf("expected 2 turns, got %d (count %d)", len(got.Turns), got.TurnCount)
	}
	if got.Turns[0].Guess != "맑음" || got.Turns[0].Second != "바나나" {
		t.Errorf("unexpected first turn: %+v", got.Turns[0])
	}
	if got.Turns[1].Jamo != "ㅂ" || got.Turns[1].Guess != "" {
		t.Errorf("unexpected second turn: %+v", got.Turns[1])
	}

	if err := s.FinishSession(ctx, sess.ID, "보법"); err != nil {
		t.Fatalf("finish: %v", err)
	}
	if _, err := s.AppendTurn(ctx, TurnParams{SessionID: sess.ID, Kind: "reset"}); err == nil {
		t.Error("expected error appending to finished session")
	}
	got, _ = s.GetSession(ctx, sess.ID)
	if got.FinishedAt == nil || got.Answer != "보법" {
		t.Errorf("expected finished session with answer, got %+v", got)
	}

	if err := s.RmSession(ctx, sess.ID); err != nil {
		t.Fatalf("rm session: %v", err)
	}
	if _, err := s.GetSession(ctx, sess.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestAppendTurnValidates(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	if _, err := s.AppendTurn(ctx, TurnParams{SessionID: "missing", Kind: "hint"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	sess, _ := s.CreateSession(ctx)
	if _, err := s.AppendTurn(ctx, TurnParams{SessionID: sess.ID, Kind: "pumpkin"}); err == nil {
		t.Error("expected error for invalid turn kind")
	}
}

func TestListSessions(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	a, _ := s.CreateSession(ctx)
	b, _ := s.CreateSession(ctx)
	s.FinishSession(ctx, a.ID, "사과")

	all, err := s.ListSessions(ctx, 0, false)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(all))
	}

	open, _ := s.ListSessions(ctx, 0, true)
	if len(open) != 1 || open[0].ID != b.ID {
		t.Errorf("expected only %s open, got %+v", b.ID, open)
	}
}
