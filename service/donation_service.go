package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vidyonnati/foundation-backend/events"
	"github.com/vidyonnati/foundation-backend/models"
	"github.com/vidyonnati/foundation-backend/pkg/metrics"
	"github.com/vidyonnati/foundation-backend/repository"
)

type DonationService interface {
	Record(ctx context.Context, donation *models.Donation) error
	List(status string, page, pageSize int) ([]*models.Donation, int64, error)
	UpdateStatus(id uuid.UUID, status, notes string) error
}

type DonationServiceImpl struct {
	donations repository.DonationRepository
	events    events.Publisher
	log       *logrus.Logger
}

func NewDonationService(donations repository.DonationRepository, pub events.Publisher, log *logrus.Logger) DonationService {
	return &DonationServiceImpl{donations: donations, events: pub, log: log}
}

func (s *DonationServiceImpl) Record(ctx context.Context, donation *models.Donation) error {
	if donation.AmountINR <= 0 {
		return errors.New("donation amount must be positive")
	}
	donation.Status = models.DonationStatusPending
	if err := s.donations.Create(donation); err != nil {
		return fmt.Errorf("failed to record donation: %w", err)
	}
	metrics.DonationsRecorded.Inc()
	if err := s.events.Publish(ctx, donation.ID.String(), events.Event{Type: events.TypeDonationRecorded, At: donation.CreatedAt}); err != nil {
		s.log.WithError(err).Warn("donation event publish failed")
	}
	return nil
}

func (s *DonationServiceImpl) List(status string, page, pageSize int) ([]*models.Donation, int64, error) {
	return s.donations.ListWithPagination(status, page, pageSize)
}

func (s *DonationServiceImpl) UpdateStatus(id uuid.UUID, status, notes string) error {
	switch status {
	case models.DonationStatusPending, models.DonationStatusReceived, models.DonationStatusAcknowledged:
	default:
		return fmt.Errorf("unknown donation status: %q", status)
	}
	return s.donations.UpdateStatus(id, status, notes)
}
