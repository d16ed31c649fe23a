package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mkaraca/careergate/internal/app/models"
	"github.com/mkaraca/careergate/internal/pkg/apperrors"
	"github.com/mkaraca/careergate/internal/upstream"
)

// ApplyState is a step in the guarded apply-to-position flow.
type ApplyState int

const (
	StateIdle ApplyState = iota
	StateAuthChecking
	StateUnauthenticated
	StateWrongRole
	StateSubmitting
	StateApplied
	StateFailed
)

// String implements fmt.Stringer
func (s ApplyState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateAuthChecking:
		return "AuthChecking"
	case StateUnauthenticated:
		return "Unauthenticated"
	case StateWrongRole:
		return "WrongRole"
	case StateSubmitting:
		return "Submitting"
	case StateApplied:
		return "Applied"
	case StateFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// ApplyOutcome is the terminal result of one apply attempt, with the visited
// states for observability.
type ApplyOutcome struct {
	State ApplyState
	Trace []ApplyState
	Err   error
}

// ApplyService runs the only multi-step guarded action in the gateway:
// a student applying to a position. Each click is one run from Idle to a
// terminal state; a new click restarts from Idle.
type ApplyService struct {
	positions *upstream.PositionClient
	logger    zerolog.Logger
}

// NewApplyService creates an ApplyService.
func NewApplyService(positions *upstream.PositionClient, logger zerolog.Logger) *ApplyService {
	return &ApplyService{positions: positions, logger: logger}
}

// Apply walks Idle -> AuthChecking -> {Unauthenticated | WrongRole |
// Submitting} -> {Applied | Failed}. Only a student session ever reaches
// Submitting.
func (a *ApplyService) Apply(ctx context.Context, sess models.Session, positionID int64) ApplyOutcome {
	trace := []ApplyState{StateIdle, StateAuthChecking}

	if !sess.Authenticated {
		trace = append(trace, StateUnauthenticated)
		return ApplyOutcome{State: StateUnauthenticated, Trace: trace, Err: apperrors.ErrUnauthenticated}
	}

	if sess.UserType != models.RoleStudent {
		trace = append(trace, StateWrongRole)
		return ApplyOutcome{State: StateWrongRole, Trace: trace, Err: apperrors.ErrWrongRole}
	}

	trace = append(trace, StateSubmitting)
	if err := a.positions.Apply(ctx, positionID, sess.UserID); err != nil {
		a.logger.Warn().Err(err).Int64("positionId", positionID).Int64("userId", sess.UserID).Msg("Position application failed")
		trace = append(trace, StateFailed)
		return ApplyOutcome{State: StateFailed, Trace: trace, Err: err}
	}

	trace = append(trace, StateApplied)
	return ApplyOutcome{State: StateApplied, Trace: trace}
}
