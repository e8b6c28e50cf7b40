package companyholiday

import "context"

type StubRepository struct {
	nextId int
	data   map[int]CompanyHoliday
}

func NewStubRepository() *StubRepository {
	return &StubRepository{data: map[int]CompanyHoliday{}}
}

func (s *StubRepository) Store(ctx context.Context, userId int, holiday CompanyHoliday) (int, error) {
	for id, existing := range s.data {
		if existing.Date.Equal(holiday.Date) {
			existing.Name = holiday.Name
			s.data[id] = existing
			return id, nil
		}
	}
	s.nextId++
	holiday.ID = s.nextId
	s.data[holiday.ID] = holiday
	return holiday.ID, nil
}

func (s *StubRepository) GetAllForYear(ctx context.Context, userId int, year int) ([]CompanyHoliday, error) {
	holidays := make([]CompanyHoliday, 0, len(s.data))
	for _, holiday := range s.data {
		if holiday.Date.Year() == year {
			holidays = append(holidays, holiday)
		}
	}
	return holidays, nil
}

func (s *StubRepository) Rename(ctx context.Context, userId int, holidayId int, name string) (bool, error) {
	holiday, ok := s.data[holidayId]
	if !ok {
		return false, nil
	}
	holiday.Name = name
	s.data[holidayId] = holiday
	return true, nil
}

func (s *StubRepository) Delete(ctx context.Context, userId int, holidayId int) (bool, error) {
	if _, ok := s.data[holidayId]; !ok {
		return false, nil
	}
	delete(s.data, holidayId)
	return true, nil
}

func (s *StubRepository) Cleanup() {
	s.data = map[int]CompanyHoliday{}
}
