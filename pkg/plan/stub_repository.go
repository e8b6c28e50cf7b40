package plan

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type StubRepository struct {
	nextId int
	data   map[string]Plan
}

func NewStubRepository() *StubRepository {
	return &StubRepository{data: map[string]Plan{}}
}

func (s *StubRepository) StorePlan(ctx context.Context, userId int, plan Plan) (Plan, error) {
	s.nextId++
	plan.Id = s.nextId
	plan.Uid = uuid.NewString()
	plan.CreatedAt = time.Now()
	s.data[plan.Uid] = plan
	return plan, nil
}

func (s *StubRepository) GetPlan(ctx context.Context, userId int, planUid string) (Plan, error) {
	plan, ok := s.data[planUid]
	if !ok {
		return Plan{}, ErrPlanNotFound
	}
	return plan, nil
}

func (s *StubRepository) ListPlans(ctx context.Context, userId int) ([]Plan, error) {
	plans := make([]Plan, 0, len(s.data))
	for _, plan := range s.data {
		plans = append(plans, plan)
	}
	return plans, nil
}

func (s *StubRepository) DeletePlan(ctx context.Context, userId int, planUid string) (bool, error) {
	if _, ok := s.data[planUid]; !ok {
		return false, nil
	}
	delete(s.data, planUid)
	return true, nil
}

func (s *StubRepository) Cleanup() {
	s.data = map[string]Plan{}
}
