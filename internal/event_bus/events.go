package event_bus

const (
	// PlanCreatedEvent is published after an optimization run was stored.
	PlanCreatedEvent EventType = "plan.created"
	// PlanDeletedEvent is published after a stored plan was removed.
	PlanDeletedEvent EventType = "plan.deleted"
)

type PlanCreated struct {
	Uid              string
	Strategy         string
	Year             int
	Periods          int
	PersonalDaysUsed int
	TotalDaysOff     int
}

type PlanDeleted struct {
	Uid string
}
