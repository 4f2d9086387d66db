package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vidyonnati/foundation-backend/events"
	"github.com/vidyonnati/foundation-backend/models"
	"github.com/vidyonnati/foundation-backend/repository"
)

type LeadService interface {
	Record(ctx context.Context, lead *models.HelpLead) error
	List(status string, page, pageSize int) ([]*models.HelpLead, int64, error)
	UpdateStatus(id uuid.UUID, status, notes string) error
}

type LeadServiceImpl struct {
	leads  repository.LeadRepository
	events events.Publisher
	log    *logrus.Logger
}

func NewLeadService(leads repository.LeadRepository, pub events.Publisher, log *logrus.Logger) LeadService {
	return &LeadServiceImpl{leads: leads, events: pub, log: log}
}

func (s *LeadServiceImpl) Record(ctx context.Context, lead *models.HelpLead) error {
	lead.Status = models.LeadStatusNew
	if err := s.leads.Create(lead); err != nil {
		return fmt.Errorf("failed to record lead: %w", err)
	}
	if err := s.events.Publish(ctx, lead.ID.String(), events.Event{Type: events.TypeLeadRecorded, At: lead.CreatedAt}); err != nil {
		s.log.WithError(err).Warn("lead event publish failed")
	}
	return nil
}

func (s *LeadServiceImpl) List(status string, page, pageSize int) ([]*models.HelpLead, int64, error) {
	return s.leads.ListWithPagination(status, page, pageSize)
}

func (s *LeadServiceImpl) UpdateStatus(id uuid.UUID, status, notes string) error {
	switch status {
	case models.LeadStatusNew, models.LeadStatusContacted, models.LeadStatusClosed:
	default:
		return fmt.Errorf("unknown lead status: %q", status)
	}
	return s.leads.UpdateStatus(id, status, notes)
}
