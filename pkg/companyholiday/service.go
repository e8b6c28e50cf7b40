package companyholiday

import (
	"context"
	"fmt"

	"github.com/daysoff/daysoff/pkg/user"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	GetAllForYear(ctx context.Context, year int) ([]CompanyHoliday, error)
	Create(ctx context.Context, holiday CompanyHoliday) (CompanyHoliday, error)
	Rename(ctx context.Context, holidayId int, name string) (bool, error)
	Delete(ctx context.Context, holidayId int) (bool, error)
}

type ServiceImpl struct {
	repo Repository
}

func NewService(repo Repository) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) GetAllForYear(ctx context.Context, year int) ([]CompanyHoliday, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetAllForYear(ctx, userId, year)
}

func (s *ServiceImpl) Create(ctx context.Context, holiday CompanyHoliday) (CompanyHoliday, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return CompanyHoliday{}, fmt.Errorf("failed to get current user: %w", err)
	}
	if holiday.Name == "" {
		holiday.Name = "Company holiday"
	}

	id, err := s.repo.Store(ctx, userId, holiday)
	if err != nil {
		return CompanyHoliday{}, err
	}
	holiday.ID = id
	return holiday, nil
}

func (s *ServiceImpl) Rename(ctx context.Context, holidayId int, name string) (bool, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get current user: %w", err)
	}

	renamed, err := s.repo.Rename(ctx, userId, holidayId, name)
	if err != nil {
		return false, err
	}
	if !renamed {
		log.Warnf("company holiday not renamed, probably because it does not exist (%d) or the user (%d) is not the owner", holidayId, userId)
		return false, fmt.Errorf("company holiday not renamed")
	}
	return true, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, holidayId int) (bool, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get current user: %w", err)
	}

	deleted, err := s.repo.Delete(ctx, userId, holidayId)
	if err != nil {
		return false, err
	}
	if !deleted {
		log.Warnf("company holiday not deleted, probably because it does not exist (%d) or the user (%d) is not the owner", holidayId, userId)
		return false, fmt.Errorf("company holiday not deleted")
	}
	return true, nil
}
