package services

import (
	"context"
	"sort"

	"github.com/mkaraca/careergate/internal/app/models"
	"github.com/mkaraca/careergate/internal/upstream"
)

// AnnouncementService manages admin announcements. Listing is always
// newest-first regardless of how the backend orders them.
type AnnouncementService struct {
	admin *upstream.AdminClient
}

// NewAnnouncementService creates an AnnouncementService.
func NewAnnouncementService(admin *upstream.AdminClient) *AnnouncementService {
	return &AnnouncementService{admin: admin}
}

// List returns announcements sorted strictly descending by timestamp.
func (s *AnnouncementService) List(ctx context.Context, adminID int64) ([]models.Announcement, error) {
	announcements, err := s.admin.Announcements(ctx, adminID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(announcements, func(i, j int) bool {
		return announcements[i].Timestamp.After(announcements[j].Timestamp)
	})
	return announcements, nil
}

// Create posts a new announcement.
func (s *AnnouncementService) Create(ctx context.Context, adminID int64, message string) (*models.Announcement, error) {
	return s.admin.CreateAnnouncement(ctx, adminID, message)
}

// Update changes an announcement's message.
func (s *AnnouncementService) Update(ctx context.Context, adminID, announcementID int64, message string) (*models.Announcement, error) {
	return s.admin.UpdateAnnouncement(ctx, adminID, announcementID, message)
}

// Delete removes an announcement.
func (s *AnnouncementService) Delete(ctx context.Context, adminID, announcementID int64) error {
	return s.admin.DeleteAnnouncement(ctx, adminID, announcementID)
}
