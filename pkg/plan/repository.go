package plan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/daysoff/daysoff/pkg/optimizer"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

var ErrPlanNotFound = errors.New("plan not found")

type Repository interface {
	StorePlan(ctx context.Context, userId int, plan Plan) (Plan, error)
	GetPlan(ctx context.Context, userId int, planUid string) (Plan, error)
	ListPlans(ctx context.Context, userId int) ([]Plan, error)
	DeletePlan(ctx context.Context, userId int, planUid string) (bool, error)
}

type RepositoryImpl struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

// periodDay is the JSON shape of one classified day inside a stored period.
type periodDay struct {
	Date string `json:"date"`
	Type string `json:"type"`
	Name string `json:"name,omitempty"`
}

func (r *RepositoryImpl) StorePlan(ctx context.Context, userId int, plan Plan) (Plan, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return Plan{}, err
	}
	defer tx.Rollback(ctx)

	plan.Uid = uuid.NewString()

	query := `INSERT INTO plan (uid, user_id, strategy, year, country_code, region, personal_days, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, now()) RETURNING id, created_at`
	err = tx.QueryRow(ctx, query,
		plan.Uid,
		userId,
		string(plan.Strategy),
		plan.Year,
		plan.CountryCode,
		plan.Region,
		plan.PersonalDays,
	).Scan(&plan.Id, &plan.CreatedAt)
	if err != nil {
		err := fmt.Errorf("could not store plan: %w", err)
		log.Error(err)
		return Plan{}, err
	}

	periodQuery := `INSERT INTO plan_period (plan_id, start_date, end_date, personal_days, public_holiday_days,
					company_holiday_days, weekend_days, total_days, description, days)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	for _, period := range plan.Periods {
		days, err := marshalDays(period.Days)
		if err != nil {
			log.Error(err)
			return Plan{}, err
		}
		_, err = tx.Exec(ctx, periodQuery,
			plan.Id,
			period.StartDate.Format("2006-01-02"),
			period.EndDate.Format("2006-01-02"),
			period.PersonalDaysUsed,
			period.PublicHolidayDays,
			period.CompanyHolidayDays,
			period.WeekendDays,
			period.TotalDaysOff,
			period.Description,
			days,
		)
		if err != nil {
			err := fmt.Errorf("could not store plan period: %w", err)
			log.Error(err)
			return Plan{}, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return Plan{}, err
	}
	return plan, nil
}

func (r *RepositoryImpl) GetPlan(ctx context.Context, userId int, planUid string) (Plan, error) {
	query := `SELECT id, uid, strategy, year, country_code, region, personal_days, created_at
			  FROM plan WHERE user_id = $1 AND uid = $2`
	var plan Plan
	var strategy string
	err := r.db.QueryRow(ctx, query, userId, planUid).Scan(
		&plan.Id,
		&plan.Uid,
		&strategy,
		&plan.Year,
		&plan.CountryCode,
		&plan.Region,
		&plan.PersonalDays,
		&plan.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Plan{}, ErrPlanNotFound
	} else if err != nil {
		err := fmt.Errorf("could not query plan: %w", err)
		log.Error(err)
		return Plan{}, err
	}
	plan.Strategy = optimizer.StrategyType(strategy)

	periods, err := r.loadPeriods(ctx, plan.Id, plan.Strategy)
	if err != nil {
		return Plan{}, err
	}
	plan.Periods = periods
	return plan, nil
}

func (r *RepositoryImpl) ListPlans(ctx context.Context, userId int) ([]Plan, error) {
	query := `SELECT id, uid, strategy, year, country_code, region, personal_days, created_at
			  FROM plan WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userId)
	if err != nil {
		err := fmt.Errorf("could not query plans: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var plans []Plan
	for rows.Next() {
		var plan Plan
		var strategy string
		if err := rows.Scan(
			&plan.Id,
			&plan.Uid,
			&strategy,
			&plan.Year,
			&plan.CountryCode,
			&plan.Region,
			&plan.PersonalDays,
			&plan.CreatedAt,
		); err != nil {
			err := fmt.Errorf("could not scan plan: %w", err)
			log.Error(err)
			return nil, err
		}
		plan.Strategy = optimizer.StrategyType(strategy)
		plans = append(plans, plan)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	for i := range plans {
		periods, err := r.loadPeriods(ctx, plans[i].Id, plans[i].Strategy)
		if err != nil {
			return nil, err
		}
		plans[i].Periods = periods
	}
	return plans, nil
}

func (r *RepositoryImpl) DeletePlan(ctx context.Context, userId int, planUid string) (bool, error) {
	query := `DELETE FROM plan WHERE user_id = $1 AND uid = $2`
	tag, err := r.db.Exec(ctx, query, userId, planUid)
	if err != nil {
		err := fmt.Errorf("could not delete plan: %w", err)
		log.Error(err)
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *RepositoryImpl) loadPeriods(ctx context.Context, planId int, strategy optimizer.StrategyType) ([]optimizer.HolidayPeriod, error) {
	query := `SELECT start_date, end_date, personal_days, public_holiday_days, company_holiday_days,
			  weekend_days, total_days, description, days
			  FROM plan_period WHERE plan_id = $1 ORDER BY start_date`
	rows, err := r.db.Query(ctx, query, planId)
	if err != nil {
		err := fmt.Errorf("could not query plan periods: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var periods []optimizer.HolidayPeriod
	for rows.Next() {
		var period optimizer.HolidayPeriod
		var daysJSON []byte
		if err := rows.Scan(
			&period.StartDate,
			&period.EndDate,
			&period.PersonalDaysUsed,
			&period.PublicHolidayDays,
			&period.CompanyHolidayDays,
			&period.WeekendDays,
			&period.TotalDaysOff,
			&period.Description,
			&daysJSON,
		); err != nil {
			err := fmt.Errorf("could not scan plan period: %w", err)
			log.Error(err)
			return nil, err
		}
		period.Strategy = strategy
		days, err := unmarshalDays(daysJSON)
		if err != nil {
			log.Error(err)
			return nil, err
		}
		period.Days = days
		periods = append(periods, period)
	}
	return periods, rows.Err()
}

func marshalDays(days []optimizer.DayOff) ([]byte, error) {
	records := make([]periodDay, 0, len(days))
	for _, day := range days {
		records = append(records, periodDay{
			Date: day.Date.Format("2006-01-02"),
			Type: string(day.Type),
			Name: day.Name,
		})
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("could not marshal period days: %w", err)
	}
	return data, nil
}

func unmarshalDays(data []byte) ([]optimizer.DayOff, error) {
	var records []periodDay
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("could not unmarshal period days: %w", err)
	}
	days := make([]optimizer.DayOff, 0, len(records))
	for _, record := range records {
		date, err := time.Parse("2006-01-02", record.Date)
		if err != nil {
			return nil, fmt.Errorf("could not parse stored period day date %q: %w", record.Date, err)
		}
		days = append(days, optimizer.DayOff{
			Date: date,
			Type: optimizer.DayOffType(record.Type),
			Name: record.Name,
		})
	}
	return days, nil
}
