package companyholiday

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

type Repository interface {
	// Store inserts a company holiday, replacing any existing entry on the
	// same date for the same user.
	Store(ctx context.Context, userId int, holiday CompanyHoliday) (int, error)
	GetAllForYear(ctx context.Context, userId int, year int) ([]CompanyHoliday, error)
	Rename(ctx context.Context, userId int, holidayId int, name string) (bool, error)
	Delete(ctx context.Context, userId int, holidayId int) (bool, error)
}

type RepositoryImpl struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) Store(ctx context.Context, userId int, holiday CompanyHoliday) (int, error) {
	query := `INSERT INTO company_holiday (user_id, date, name) VALUES ($1, $2, $3)
			  ON CONFLICT (user_id, date) DO UPDATE SET name = EXCLUDED.name
			  RETURNING id`

	var id int
	err := r.db.QueryRow(ctx, query, userId, holiday.Date.Format("2006-01-02"), holiday.Name).Scan(&id)
	if err != nil {
		err := fmt.Errorf("could not store company holiday: %w", err)
		log.Error(err)
		return 0, err
	}
	return id, nil
}

func (r *RepositoryImpl) GetAllForYear(ctx context.Context, userId int, year int) ([]CompanyHoliday, error) {
	query := `SELECT id, date, name FROM company_holiday
			  WHERE user_id = $1 AND date_part('year', date) = $2 ORDER BY date`

	rows, err := r.db.Query(ctx, query, userId, year)
	if err != nil {
		err := fmt.Errorf("could not query company holidays: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var holidays []CompanyHoliday
	for rows.Next() {
		var holiday CompanyHoliday
		if err := rows.Scan(&holiday.ID, &holiday.Date, &holiday.Name); err != nil {
			err := fmt.Errorf("could not scan company holiday: %w", err)
			log.Error(err)
			return nil, err
		}
		holidays = append(holidays, holiday)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return holidays, nil
}

func (r *RepositoryImpl) Rename(ctx context.Context, userId int, holidayId int, name string) (bool, error) {
	query := `UPDATE company_holiday SET name = $1 WHERE id = $2 AND user_id = $3`

	tag, err := r.db.Exec(ctx, query, name, holidayId, userId)
	if err != nil {
		err := fmt.Errorf("could not rename company holiday: %w", err)
		log.Error(err)
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *RepositoryImpl) Delete(ctx context.Context, userId int, holidayId int) (bool, error) {
	query := `DELETE FROM company_holiday WHERE id = $1 AND user_id = $2`

	tag, err := r.db.Exec(ctx, query, holidayId, userId)
	if err != nil {
		err := fmt.Errorf("could not delete company holiday: %w", err)
		log.Error(err)
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
