package appointment

import (
	"testing"

	"github.com/ArthurMoreiraS/OperlyService/internal/httperr"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to Status }{
		{StatusPending, StatusConfirmed},
		{StatusPending, StatusCancelled},
		{StatusPending, StatusNoShow},
		{StatusConfirmed, StatusCompleted},
		{StatusConfirmed, StatusCancelled},
		{StatusConfirmed, StatusNoShow},
	}
	for _, tc := range allowed {
		if err := CanTransition(tc.from, tc.to); err != nil {
			t.Errorf("CanTransition(%s, %s) = %v, want nil", tc.from, tc.to, err)
		}
	}

	denied := []struct{ from, to Status }{
		{StatusPending, StatusCompleted}, // must confirm first
		{StatusCompleted, StatusPending}, // no reverting a completed job
		{StatusCompleted, StatusCancelled},
		{StatusCancelled, StatusPending},
		{StatusCancelled, StatusConfirmed},
		{StatusNoShow, StatusConfirmed},
		{StatusPending, StatusPending},
	}
	for _, tc := range denied {
		err := CanTransition(tc.from, tc.to)
		if !httperr.IsKind(err, httperr.KindConflict) {
			t.Errorf("CanTransition(%s, %s) = %v, want conflict", tc.from, tc.to, err)
		}
	}
}

func TestCanTransitionUnknownTarget(t *testing.T) {
	err := CanTransition(StatusPending, Status("DONE"))
	if !httperr.IsKind(err, httperr.KindBadRequest) {
		t.Errorf("unknown target = %v, want bad request", err)
	}
}

func TestTerminal(t *testing.T) {
	for s, want := range map[Status]bool{
		StatusPending:   false,
		StatusConfirmed: false,
		StatusCompleted: true,
		StatusCancelled: true,
		StatusNoShow:    false,
	} {
		if Terminal(s) != want {
			t.Errorf("Terminal(%s) = %v, want %v", s, !want, want)
		}
	}
}
