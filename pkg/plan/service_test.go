package plan

import (
	"context"
	"testing"
	"time"

	"github.com/daysoff/daysoff/internal/event_bus"
	"github.com/daysoff/daysoff/internal/test_utils"
	"github.com/daysoff/daysoff/internal/utils"
	"github.com/daysoff/daysoff/pkg/companyholiday"
	"github.com/daysoff/daysoff/pkg/holiday"
	"github.com/daysoff/daysoff/pkg/optimizer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = test_utils.ContextWithTestUser(context.Background())

type fixture struct {
	repo           *StubRepository
	holidayClient  *holiday.StubClient
	companyRepo    *companyholiday.StubRepository
	companyService companyholiday.Service
	bus            *event_bus.EventBus
	service        Service
}

func setup() *fixture {
	f := &fixture{
		repo:          NewStubRepository(),
		holidayClient: holiday.NewStubClient(),
		companyRepo:   companyholiday.NewStubRepository(),
		bus:           event_bus.NewEventBus(),
	}
	f.companyService = companyholiday.NewService(f.companyRepo)
	clock := &utils.MockClock{FixedNow: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	f.service = NewService(f.repo, f.companyService, holiday.NewService(f.holidayClient), clock, f.bus)
	return f
}

func TestServiceImpl_CreatePlan(t *testing.T) {
	t.Run("runs the optimizer and stores the outcome", func(t *testing.T) {
		f := setup()
		// Thursday 2025-05-01 is the only holiday of the year
		f.holidayClient.Holidays["2025/PL"] = []holiday.PublicHoliday{
			{Date: "2025-05-01", Name: "Labour Day", Global: true, Types: []string{"Public"}},
		}

		var published []event_bus.Event
		f.bus.Subscribe(event_bus.PlanCreatedEvent, func(e event_bus.Event) error {
			published = append(published, e)
			return nil
		})

		created, err := f.service.CreatePlan(ctx, CreatePlanRequest{
			Strategy:     optimizer.StrategyLongWeekend,
			Year:         2025,
			PersonalDays: 1,
			CountryCode:  "PL",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, created.Uid)
		assert.Equal(t, optimizer.StrategyLongWeekend, created.Strategy)
		require.Len(t, created.Periods, 1)
		period := created.Periods[0]
		assert.Equal(t, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), period.StartDate)
		assert.Equal(t, 4, period.TotalDaysOff)

		summary := created.Summary()
		assert.Equal(t, 1, summary.Periods)
		assert.Equal(t, 4, summary.TotalDaysOff)
		assert.Equal(t, 1, summary.PersonalDaysUsed)
		assert.Equal(t, 1, summary.PublicHolidayDays)
		assert.Equal(t, 2, summary.WeekendDays)

		require.Len(t, published, 1)
		payload, ok := published[0].Data.(event_bus.PlanCreated)
		require.True(t, ok)
		assert.Equal(t, created.Uid, payload.Uid)
		assert.Equal(t, 1, payload.Periods)
		assert.Equal(t, 4, payload.TotalDaysOff)
	})

	t.Run("feeds stored company holidays into the optimization", func(t *testing.T) {
		f := setup()
		f.holidayClient.Holidays["2025/PL"] = []holiday.PublicHoliday{
			{Date: "2025-05-01", Name: "Labour Day", Global: true, Types: []string{"Public"}},
		}
		_, err := f.companyService.Create(ctx, companyholiday.CompanyHoliday{
			Date: time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC),
			Name: "Bridge day",
		})
		require.NoError(t, err)

		created, err := f.service.CreatePlan(ctx, CreatePlanRequest{
			Strategy:     optimizer.StrategyMidWeek,
			Year:         2025,
			PersonalDays: 1,
			CountryCode:  "PL",
		})

		require.NoError(t, err)
		require.Len(t, created.Periods, 1)
		assert.Equal(t, 1, created.Periods[0].CompanyHolidayDays)
		assert.Equal(t, 1, created.Periods[0].PublicHolidayDays)
	})

	t.Run("an optimization without results still stores the plan", func(t *testing.T) {
		f := setup()

		created, err := f.service.CreatePlan(ctx, CreatePlanRequest{
			Strategy:     optimizer.StrategyExtended,
			Year:         2025,
			PersonalDays: 2, // below the extended minimum
			CountryCode:  "PL",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, created.Uid)
		assert.Empty(t, created.Periods)
	})

	t.Run("rejects a missing country code", func(t *testing.T) {
		f := setup()

		_, err := f.service.CreatePlan(ctx, CreatePlanRequest{
			Strategy:     optimizer.StrategyLongWeekend,
			Year:         2025,
			PersonalDays: 1,
		})

		assert.ErrorIs(t, err, ErrInvalidRequest)
	})

	t.Run("rejects negative personal days", func(t *testing.T) {
		f := setup()

		_, err := f.service.CreatePlan(ctx, CreatePlanRequest{
			Strategy:     optimizer.StrategyLongWeekend,
			Year:         2025,
			PersonalDays: -3,
			CountryCode:  "PL",
		})

		assert.ErrorIs(t, err, ErrInvalidRequest)
	})

	t.Run("fails without a user in context", func(t *testing.T) {
		f := setup()

		_, err := f.service.CreatePlan(context.Background(), CreatePlanRequest{
			Strategy:     optimizer.StrategyLongWeekend,
			Year:         2025,
			PersonalDays: 1,
			CountryCode:  "PL",
		})

		assert.Error(t, err)
	})
}

func TestServiceImpl_GetPlan(t *testing.T) {
	t.Run("returns a stored plan by uid", func(t *testing.T) {
		f := setup()
		created, err := f.service.CreatePlan(ctx, CreatePlanRequest{
			Strategy:     optimizer.StrategyLongWeekend,
			Year:         2025,
			PersonalDays: 1,
			CountryCode:  "PL",
		})
		require.NoError(t, err)

		found, err := f.service.GetPlan(ctx, created.Uid)

		require.NoError(t, err)
		assert.Equal(t, created.Uid, found.Uid)
		assert.Equal(t, created.Strategy, found.Strategy)
	})

	t.Run("unknown uid yields ErrPlanNotFound", func(t *testing.T) {
		f := setup()

		_, err := f.service.GetPlan(ctx, "no-such-plan")

		assert.ErrorIs(t, err, ErrPlanNotFound)
	})
}

func TestServiceImpl_DeletePlan(t *testing.T) {
	t.Run("deletes and publishes the deletion", func(t *testing.T) {
		f := setup()
		created, err := f.service.CreatePlan(ctx, CreatePlanRequest{
			Strategy:     optimizer.StrategyLongWeekend,
			Year:         2025,
			PersonalDays: 1,
			CountryCode:  "PL",
		})
		require.NoError(t, err)

		var published []event_bus.Event
		f.bus.Subscribe(event_bus.PlanDeletedEvent, func(e event_bus.Event) error {
			published = append(published, e)
			return nil
		})

		deleted, err := f.service.DeletePlan(ctx, created.Uid)

		require.NoError(t, err)
		assert.True(t, deleted)
		require.Len(t, published, 1)

		_, err = f.service.GetPlan(ctx, created.Uid)
		assert.ErrorIs(t, err, ErrPlanNotFound)
	})

	t.Run("deleting an unknown plan reports false without event", func(t *testing.T) {
		f := setup()

		var published []event_bus.Event
		f.bus.Subscribe(event_bus.PlanDeletedEvent, func(e event_bus.Event) error {
			published = append(published, e)
			return nil
		})

		deleted, err := f.service.DeletePlan(ctx, "no-such-plan")

		require.NoError(t, err)
		assert.False(t, deleted)
		assert.Empty(t, published)
	})
}

func TestServiceImpl_ListPlans(t *testing.T) {
	f := setup()
	for _, year := range []int{2025, 2026} {
		_, err := f.service.CreatePlan(ctx, CreatePlanRequest{
			Strategy:     optimizer.StrategyLongWeekend,
			Year:         year,
			PersonalDays: 1,
			CountryCode:  "PL",
		})
		require.NoError(t, err)
	}

	plans, err := f.service.ListPlans(ctx)

	require.NoError(t, err)
	assert.Len(t, plans, 2)
}
