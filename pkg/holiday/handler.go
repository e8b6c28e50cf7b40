package holiday

import (
	"encoding/json"
	"net/http"
	"strconv"

	log "github.com/sirupsen/logrus"
)

type HolidayDTO struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) ListCountries(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	countries, err := h.service.AvailableCountries(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	if err := json.NewEncoder(w).Encode(countries); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) ListHolidays(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	yearParam := r.URL.Query().Get("year")
	year, err := strconv.Atoi(yearParam)
	if err != nil {
		http.Error(w, "invalid year: "+yearParam, http.StatusBadRequest)
		return
	}
	countryCode := r.URL.Query().Get("country")
	if countryCode == "" {
		http.Error(w, "country is required", http.StatusBadRequest)
		return
	}
	region := r.URL.Query().Get("region")

	log.Debugf("listing holidays for %s/%s in %d", countryCode, region, year)
	holidays, err := h.service.HolidaysForRegion(r.Context(), year, countryCode, region)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	dtos := make([]HolidayDTO, 0, len(holidays))
	for _, holiday := range holidays {
		dtos = append(dtos, HolidayDTO{
			Date: holiday.Date.Format("2006-01-02"),
			Name: holiday.Name,
		})
	}
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
