package plan

import (
	"context"
	"errors"
	"fmt"

	"github.com/daysoff/daysoff/internal/event_bus"
	"github.com/daysoff/daysoff/internal/utils"
	"github.com/daysoff/daysoff/pkg/companyholiday"
	"github.com/daysoff/daysoff/pkg/holiday"
	"github.com/daysoff/daysoff/pkg/optimizer"
	"github.com/daysoff/daysoff/pkg/user"
	log "github.com/sirupsen/logrus"
)

var ErrInvalidRequest = errors.New("invalid plan request")

// CreatePlanRequest carries everything a single optimization run needs.
type CreatePlanRequest struct {
	Strategy     optimizer.StrategyType
	Year         int
	PersonalDays int
	CountryCode  string
	Region       string
}

type Service interface {
	CreatePlan(ctx context.Context, req CreatePlanRequest) (Plan, error)
	GetPlan(ctx context.Context, planUid string) (Plan, error)
	ListPlans(ctx context.Context) ([]Plan, error)
	DeletePlan(ctx context.Context, planUid string) (bool, error)
}

type ServiceImpl struct {
	repo            Repository
	companyHolidays companyholiday.Service
	publicHolidays  holiday.Service
	clock           utils.Clock
	bus             *event_bus.EventBus
}

func NewService(
	repo Repository,
	companyHolidays companyholiday.Service,
	publicHolidays holiday.Service,
	clock utils.Clock,
	bus *event_bus.EventBus,
) *ServiceImpl {
	return &ServiceImpl{
		repo:            repo,
		companyHolidays: companyHolidays,
		publicHolidays:  publicHolidays,
		clock:           clock,
		bus:             bus,
	}
}

// CreatePlan resolves the holiday inputs, runs the optimizer and stores the
// outcome. An optimization finding no periods is a normal result, not an
// error.
func (s *ServiceImpl) CreatePlan(ctx context.Context, req CreatePlanRequest) (Plan, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Plan{}, fmt.Errorf("failed to get current user: %w", err)
	}
	if req.CountryCode == "" {
		return Plan{}, fmt.Errorf("%w: country code is required", ErrInvalidRequest)
	}

	publicHolidays, err := s.publicHolidays.HolidaysForRegion(ctx, req.Year, req.CountryCode, req.Region)
	if err != nil {
		return Plan{}, fmt.Errorf("failed to resolve public holidays: %w", err)
	}
	companyHolidays, err := s.companyHolidays.GetAllForYear(ctx, req.Year)
	if err != nil {
		return Plan{}, fmt.Errorf("failed to load company holidays: %w", err)
	}

	periods, err := optimizer.Optimize(
		req.Strategy,
		toOptimizerHolidays(publicHolidays),
		companyToOptimizerHolidays(companyHolidays),
		req.PersonalDays,
		req.Year,
		s.clock.Now(),
	)
	if err != nil {
		return Plan{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	plan := Plan{
		Strategy:     req.Strategy,
		Year:         req.Year,
		CountryCode:  req.CountryCode,
		Region:       req.Region,
		PersonalDays: req.PersonalDays,
		Periods:      periods,
	}
	stored, err := s.repo.StorePlan(ctx, userId, plan)
	if err != nil {
		return Plan{}, err
	}

	summary := stored.Summary()
	if err := s.bus.Publish(event_bus.NewEvent(ctx, event_bus.PlanCreatedEvent, event_bus.PlanCreated{
		Uid:              stored.Uid,
		Strategy:         string(stored.Strategy),
		Year:             stored.Year,
		Periods:          summary.Periods,
		PersonalDaysUsed: summary.PersonalDaysUsed,
		TotalDaysOff:     summary.TotalDaysOff,
	})); err != nil {
		log.Warnf("failed to publish plan created event: %v", err)
	}

	return stored, nil
}

func (s *ServiceImpl) GetPlan(ctx context.Context, planUid string) (Plan, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Plan{}, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetPlan(ctx, userId, planUid)
}

func (s *ServiceImpl) ListPlans(ctx context.Context) ([]Plan, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.ListPlans(ctx, userId)
}

func (s *ServiceImpl) DeletePlan(ctx context.Context, planUid string) (bool, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get current user: %w", err)
	}

	deleted, err := s.repo.DeletePlan(ctx, userId, planUid)
	if err != nil {
		return false, err
	}
	if deleted {
		if err := s.bus.Publish(event_bus.NewEvent(ctx, event_bus.PlanDeletedEvent, event_bus.PlanDeleted{
			Uid: planUid,
		})); err != nil {
			log.Warnf("failed to publish plan deleted event: %v", err)
		}
	}
	return deleted, nil
}

func toOptimizerHolidays(holidays []holiday.Holiday) []optimizer.Holiday {
	out := make([]optimizer.Holiday, 0, len(holidays))
	for _, h := range holidays {
		out = append(out, optimizer.Holiday{Date: h.Date, Name: h.Name})
	}
	return out
}

func companyToOptimizerHolidays(holidays []companyholiday.CompanyHoliday) []optimizer.Holiday {
	out := make([]optimizer.Holiday, 0, len(holidays))
	for _, h := range holidays {
		out = append(out, optimizer.Holiday{Date: h.Date, Name: h.Name})
	}
	return out
}
