package services

import (
	"context"

	"github.com/mkaraca/careergate/internal/app/models"
	"github.com/mkaraca/careergate/internal/session"
	"github.com/mkaraca/careergate/internal/upstream"
)

// FairService handles fair registration, attendance and cancellation, keeping
// the session's registered-fairs list consistent with confirmed backend state.
type FairService struct {
	fairs    *upstream.CareerFairClient
	sessions *session.Service
}

// NewFairService creates a FairService.
func NewFairService(fairs *upstream.CareerFairClient, sessions *session.Service) *FairService {
	return &FairService{fairs: fairs, sessions: sessions}
}

// ListPositions lists open positions across fairs.
func (s *FairService) ListPositions(ctx context.Context) ([]models.Position, error) {
	return s.fairs.ListPositions(ctx)
}

// Register registers the session's user for a fair and records the fair in
// the session once the backend confirms.
func (s *FairService) Register(ctx context.Context, sess models.Session, fairID int64) error {
	if err := s.fairs.Register(ctx, fairID, sess.UserID); err != nil {
		return err
	}
	return s.sessions.AddRegisteredFair(ctx, sess.SID, fairID)
}

// Attend marks the session's user as attending a fair.
func (s *FairService) Attend(ctx context.Context, sess models.Session, fairID int64) error {
	return s.fairs.Attend(ctx, fairID, sess.UserID)
}

// Cancel cancels a fair registration. The fair stays in the session's
// registered list until the backend confirms: no optimistic removal.
func (s *FairService) Cancel(ctx context.Context, sess models.Session, fairID int64) error {
	if err := s.fairs.CancelRegistration(ctx, fairID, sess.UserID); err != nil {
		return err
	}
	return s.sessions.RemoveRegisteredFair(ctx, sess.SID, fairID)
}
