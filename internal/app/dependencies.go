package app

import (
	"github.com/daysoff/daysoff/internal/config"
	"github.com/daysoff/daysoff/internal/event_bus"
	"github.com/daysoff/daysoff/internal/utils"
	"github.com/daysoff/daysoff/pkg/companyholiday"
	"github.com/daysoff/daysoff/pkg/holiday"
	"github.com/daysoff/daysoff/pkg/plan"
	"github.com/daysoff/daysoff/pkg/user"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Bus   *event_bus.EventBus
	Clock utils.Clock

	UserService user.Service
	UserHandler *user.Handler

	HolidayClient  holiday.Client
	HolidayService holiday.Service
	HolidayHandler *holiday.Handler

	CompanyHolidayRepo    companyholiday.Repository
	CompanyHolidayService companyholiday.Service
	CompanyHolidayHandler *companyholiday.Handler

	PlanRepo    plan.Repository
	PlanService plan.Service
	PlanHandler *plan.Handler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *pgxpool.Pool, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.Bus = event_bus.NewEventBus()
	deps.Clock = &utils.SystemClock{}

	deps.UserService = user.NewUserService(user.NewUserRepo(db))
	deps.UserHandler = user.NewHandler(deps.UserService)

	deps.HolidayClient = holiday.NewNagerClient(cfg.HolidayAPI.BaseURL, cfg.HolidayAPI.CacheTTL)
	deps.HolidayService = holiday.NewService(deps.HolidayClient)
	deps.HolidayHandler = holiday.NewHandler(deps.HolidayService)

	deps.CompanyHolidayRepo = companyholiday.NewRepository(db)
	deps.CompanyHolidayService = companyholiday.NewService(deps.CompanyHolidayRepo)
	deps.CompanyHolidayHandler = companyholiday.NewHandler(deps.CompanyHolidayService)

	deps.PlanRepo = plan.NewRepository(db)
	deps.PlanService = plan.NewService(deps.PlanRepo, deps.CompanyHolidayService, deps.HolidayService, deps.Clock, deps.Bus)
	deps.PlanHandler = plan.NewHandler(deps.PlanService)

	deps.Bus.Subscribe(event_bus.PlanCreatedEvent, func(e event_bus.Event) error {
		created, ok := e.Data.(event_bus.PlanCreated)
		if !ok {
			return nil
		}
		log.Infof("plan %s created: %s strategy for %d, %d periods, %d days off for %d personal days",
			created.Uid, created.Strategy, created.Year, created.Periods, created.TotalDaysOff, created.PersonalDaysUsed)
		return nil
	})

	return deps
}
