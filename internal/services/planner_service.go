package services

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"tripdesk/internal/models/request_models"
	"tripdesk/internal/models/response_models"
	"tripdesk/pkg/utils"
)

// View states of the submission flow:
// Idle -> Validating -> {Idle | Submitting} -> {Results | Idle}.
const (
	ViewIdle       = "idle"
	ViewValidating = "validating"
	ViewSubmitting = "submitting"
	ViewResults    = "results"
)

// PlanAPIInterface is the slice of the planning client the services
// depend on.
type PlanAPIInterface interface {
	SubmitPlan(ctx context.Context, req request_models.TripRequest) (*response_models.PlanResult, error)
	SendFeedback(ctx context.Context, payload any) error
	SendPlanEmail(ctx context.Context, email string, plan response_models.PlanResult) error
}

type PlannerServiceInterface interface {
	SubmitPlan(ctx context.Context, req request_models.TripRequest) (*response_models.PlanResult, error)
	State() response_models.PlannerState
}

// NoticeSource exposes the most recent user-facing notification.
type NoticeSource interface {
	Last() string
}

type PlannerService struct {
	api     PlanAPIInterface
	notices NoticeSource
	log     *logrus.Logger

	loading atomic.Bool

	mu     sync.RWMutex
	view   string
	result *response_models.PlanResult
}

func NewPlannerService(api PlanAPIInterface, notices NoticeSource, logger *logrus.Logger) PlannerServiceInterface {
	return &PlannerService{api: api, notices: notices, log: logger, view: ViewIdle}
}

// SubmitPlan validates the trip request, forwards it to the planning
// API and keeps the result as the current session plan. Only one
// submission runs at a time; the loading flag clears on every exit
// path.
func (s *PlannerService) SubmitPlan(ctx context.Context, req request_models.TripRequest) (*response_models.PlanResult, error) {
	if !s.loading.CompareAndSwap(false, true) {
		return nil, utils.ErrSubmitInFlight
	}
	defer s.loading.Store(false)

	// A failed submission falls back to whatever was on screen before,
	// so an earlier result survives a failed resubmission.
	s.mu.RLock()
	prev := s.view
	s.mu.RUnlock()

	s.setView(ViewValidating)
	if err := ValidateTripRequest(&req); err != nil {
		s.setView(prev)
		return nil, err
	}

	s.setView(ViewSubmitting)
	plan, err := s.api.SubmitPlan(ctx, req)
	if err != nil {
		s.log.Warnf("plan submission failed: %v", err)
		s.setView(prev)
		return nil, err
	}

	s.mu.Lock()
	s.view = ViewResults
	s.result = plan
	s.mu.Unlock()
	return plan, nil
}

func (s *PlannerService) State() response_models.PlannerState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state := response_models.PlannerState{
		View:    s.view,
		Loading: s.loading.Load(),
	}
	if s.notices != nil {
		state.LastNotice = s.notices.Last()
	}
	if s.view == ViewResults {
		state.Result = s.result
	}
	return state
}

func (s *PlannerService) setView(view string) {
	s.mu.Lock()
	s.view = view
	s.mu.Unlock()
}
