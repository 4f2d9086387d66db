package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vidyonnati/foundation-backend/draftstore"
	"github.com/vidyonnati/foundation-backend/forms"
	"github.com/vidyonnati/foundation-backend/models"
	"github.com/vidyonnati/foundation-backend/repository"
)

// WizardState is everything the wizard UI needs to render: current step,
// merged answers and whether an application already went through for this
// variant and academic year.
type WizardState struct {
	Variant       forms.Variant        `json:"variant"`
	Step          int                  `json:"step"`
	StepCount     int                  `json:"step_count"`
	Values        map[string]string    `json:"values"`
	Documents     []forms.DocumentType `json:"documents"`
	Submitted     bool                 `json:"submitted"`
	ApplicationID string               `json:"application_id,omitempty"`
}

type WizardService interface {
	State(ctx context.Context, user *models.User, variant forms.Variant) (*WizardState, error)
	// Next validates the current step against the posted values. On failure
	// the field errors are returned, the step does not move and nothing is
	// persisted. On success the step advances and the draft is snapshotted.
	Next(ctx context.Context, user *models.User, variant forms.Variant, values map[string]string) (*WizardState, map[string]string, error)
	Back(ctx context.Context, user *models.User, variant forms.Variant, values map[string]string) (*WizardState, error)
	JumpTo(ctx context.Context, user *models.User, variant forms.Variant, step int, values map[string]string) (*WizardState, error)
	ChangeVariant(ctx context.Context, user *models.User, from, to forms.Variant, values map[string]string) (*WizardState, error)
}

type WizardServiceImpl struct {
	drafts *draftstore.Store
	apps   repository.ApplicationRepository
	log    *logrus.Logger
	now    func() time.Time
}

func NewWizardService(drafts *draftstore.Store, apps repository.ApplicationRepository, log *logrus.Logger) WizardService {
	return &WizardServiceImpl{drafts: drafts, apps: apps, log: log, now: time.Now}
}

func (s *WizardServiceImpl) State(ctx context.Context, user *models.User, variant forms.Variant) (*WizardState, error) {
	schema, err := forms.SchemaFor(variant)
	if err != nil {
		return nil, err
	}
	values, step, ok := s.drafts.Load(ctx, user.ID.String(), variant)
	if !ok {
		values, step = map[string]string{}, 0
	}
	s.prefill(values, user)
	schema.Derive(values)
	return s.buildState(schema, variant, user, step, values), nil
}

func (s *WizardServiceImpl) Next(ctx context.Context, user *models.User, variant forms.Variant, values map[string]string) (*WizardState, map[string]string, error) {
	schema, err := forms.SchemaFor(variant)
	if err != nil {
		return nil, nil, err
	}
	_, step, ok := s.drafts.Load(ctx, user.ID.String(), variant)
	if !ok {
		step = 0
	}
	schema.Derive(values)
	if errs := schema.ValidateStep(step, values); len(errs) > 0 {
		return s.buildState(schema, variant, user, step, values), errs, nil
	}
	if step < forms.StepCount-1 {
		step++
	}
	s.drafts.Save(ctx, user.ID.String(), variant, values, step)
	return s.buildState(schema, variant, user, step, values), nil, nil
}

// Back never fails and never re-validates.
func (s *WizardServiceImpl) Back(ctx context.Context, user *models.User, variant forms.Variant, values map[string]string) (*WizardState, error) {
	schema, err := forms.SchemaFor(variant)
	if err != nil {
		return nil, err
	}
	_, step, ok := s.drafts.Load(ctx, user.ID.String(), variant)
	if !ok {
		step = 0
	}
	if step > 0 {
		step--
	}
	schema.Derive(values)
	s.drafts.Save(ctx, user.ID.String(), variant, values, step)
	return s.buildState(schema, variant, user, step, values), nil
}

// JumpTo is unconditional; the review screen's edit links use it.
func (s *WizardServiceImpl) JumpTo(ctx context.Context, user *models.User, variant forms.Variant, step int, values map[string]string) (*WizardState, error) {
	schema, err := forms.SchemaFor(variant)
	if err != nil {
		return nil, err
	}
	if step < 0 {
		step = 0
	}
	if step > forms.StepCount-1 {
		step = forms.StepCount - 1
	}
	schema.Derive(values)
	s.drafts.Save(ctx, user.ID.String(), variant, values, step)
	return s.buildState(schema, variant, user, step, values), nil
}

// ChangeVariant snapshots the current variant's draft, then opens the target
// variant at step 0 with whatever draft it already has. Variants never share
// draft storage.
func (s *WizardServiceImpl) ChangeVariant(ctx context.Context, user *models.User, from, to forms.Variant, values map[string]string) (*WizardState, error) {
	schema, err := forms.SchemaFor(to)
	if err != nil {
		return nil, err
	}
	if _, fromStep, ok := s.drafts.Load(ctx, user.ID.String(), from); ok {
		s.drafts.Save(ctx, user.ID.String(), from, values, fromStep)
	} else {
		s.drafts.Save(ctx, user.ID.String(), from, values, 0)
	}
	toValues, _, ok := s.drafts.Load(ctx, user.ID.String(), to)
	if !ok {
		toValues = map[string]string{}
	}
	s.prefill(toValues, user)
	schema.Derive(toValues)
	// The draft is the wizard state, so the reset to step 0 must be written
	// through: otherwise the next State call reopens the target at whatever
	// step its draft last recorded.
	s.drafts.Save(ctx, user.ID.String(), to, toValues, 0)
	return s.buildState(schema, to, user, 0, toValues), nil
}

// prefill copies known profile fields into empty draft slots. Draft data
// always wins over profile pre-fill.
func (s *WizardServiceImpl) prefill(values map[string]string, user *models.User) {
	profile := map[string]string{
		"fullName": user.FullName,
		"email":    user.Email,
		"phone":    user.Phone,
	}
	for k, v := range profile {
		if values[k] == "" && v != "" {
			values[k] = v
		}
	}
}

func (s *WizardServiceImpl) buildState(schema *forms.Schema, variant forms.Variant, user *models.User, step int, values map[string]string) *WizardState {
	state := &WizardState{
		Variant:   variant,
		Step:      step,
		StepCount: forms.StepCount,
		Values:    values,
		Documents: schema.Documents,
	}
	year := AcademicYear(s.now())
	if app, err := s.apps.GetByUserTypeYear(user.ID, string(variant), year); err == nil {
		state.Submitted = true
		state.ApplicationID = app.ApplicationID
	}
	return state
}
