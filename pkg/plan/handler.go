package plan

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/daysoff/daysoff/pkg/optimizer"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type CreatePlanDTO struct {
	Strategy     string `json:"strategy"`
	Year         int    `json:"year"`
	PersonalDays int    `json:"personalDays"`
	CountryCode  string `json:"countryCode"`
	Region       string `json:"region,omitempty"`
}

type PlanDTO struct {
	Uid          string      `json:"uid"`
	Strategy     string      `json:"strategy"`
	Year         int         `json:"year"`
	CountryCode  string      `json:"countryCode"`
	Region       string      `json:"region,omitempty"`
	PersonalDays int         `json:"personalDays"`
	CreatedAt    time.Time   `json:"createdAt"`
	Summary      SummaryDTO  `json:"summary"`
	Periods      []PeriodDTO `json:"periods"`
}

type SummaryDTO struct {
	Periods            int `json:"periods"`
	TotalDaysOff       int `json:"totalDaysOff"`
	PersonalDaysUsed   int `json:"personalDaysUsed"`
	PublicHolidayDays  int `json:"publicHolidayDays"`
	CompanyHolidayDays int `json:"companyHolidayDays"`
	WeekendDays        int `json:"weekendDays"`
}

type PeriodDTO struct {
	StartDate          string      `json:"startDate"`
	EndDate            string      `json:"endDate"`
	Description        string      `json:"description"`
	PersonalDaysUsed   int         `json:"personalDaysUsed"`
	PublicHolidayDays  int         `json:"publicHolidayDays"`
	CompanyHolidayDays int         `json:"companyHolidayDays"`
	WeekendDays        int         `json:"weekendDays"`
	TotalDaysOff       int         `json:"totalDaysOff"`
	Days               []DayOffDTO `json:"days"`
}

type DayOffDTO struct {
	Date string `json:"date"`
	Type string `json:"type"`
	Name string `json:"name,omitempty"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating new vacation plan")
	w.Header().Set("Content-Type", "application/json")

	var dto CreatePlanDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.service.CreatePlan(r.Context(), CreatePlanRequest{
		Strategy:     optimizer.StrategyType(dto.Strategy),
		Year:         dto.Year,
		PersonalDays: dto.PersonalDays,
		CountryCode:  dto.CountryCode,
		Region:       dto.Region,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidRequest) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(planToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) GetPlan(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	planUid := vars["planUid"]

	found, err := h.service.GetPlan(r.Context(), planUid)
	if err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			http.Error(w, "Plan not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := json.NewEncoder(w).Encode(planToDTO(found)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) ListPlans(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	plans, err := h.service.ListPlans(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]PlanDTO, 0, len(plans))
	for _, p := range plans {
		dtos = append(dtos, planToDTO(p))
	}
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) DeletePlan(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	planUid := vars["planUid"]

	ok, err := h.service.DeletePlan(r.Context(), planUid)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Plan not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func planToDTO(p Plan) PlanDTO {
	summary := p.Summary()
	periods := make([]PeriodDTO, 0, len(p.Periods))
	for _, period := range p.Periods {
		periods = append(periods, periodToDTO(period))
	}
	return PlanDTO{
		Uid:          p.Uid,
		Strategy:     string(p.Strategy),
		Year:         p.Year,
		CountryCode:  p.CountryCode,
		Region:       p.Region,
		PersonalDays: p.PersonalDays,
		CreatedAt:    p.CreatedAt,
		Summary: SummaryDTO{
			Periods:            summary.Periods,
			TotalDaysOff:       summary.TotalDaysOff,
			PersonalDaysUsed:   summary.PersonalDaysUsed,
			PublicHolidayDays:  summary.PublicHolidayDays,
			CompanyHolidayDays: summary.CompanyHolidayDays,
			WeekendDays:        summary.WeekendDays,
		},
		Periods: periods,
	}
}

func periodToDTO(period optimizer.HolidayPeriod) PeriodDTO {
	days := make([]DayOffDTO, 0, len(period.Days))
	for _, day := range period.Days {
		days = append(days, DayOffDTO{
			Date: day.Date.Format("2006-01-02"),
			Type: string(day.Type),
			Name: day.Name,
		})
	}
	return PeriodDTO{
		StartDate:          period.StartDate.Format("2006-01-02"),
		EndDate:            period.EndDate.Format("2006-01-02"),
		Description:        period.Description,
		PersonalDaysUsed:   period.PersonalDaysUsed,
		PublicHolidayDays:  period.PublicHolidayDays,
		CompanyHolidayDays: period.CompanyHolidayDays,
		WeekendDays:        period.WeekendDays,
		TotalDaysOff:       period.TotalDaysOff,
		Days:               days,
	}
}
