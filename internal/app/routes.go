package app

import (
	"github.com/daysoff/daysoff/internal/config"
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Vacation plans
	r.HandleFunc("/api/plan", deps.PlanHandler.ListPlans).Methods("GET")
	r.HandleFunc("/api/plan", deps.PlanHandler.CreatePlan).Methods("POST")
	r.HandleFunc("/api/plan/{planUid}", deps.PlanHandler.GetPlan).Methods("GET")
	r.HandleFunc("/api/plan/{planUid}", deps.PlanHandler.DeletePlan).Methods("DELETE")

	// Company holidays
	r.HandleFunc("/api/company-holiday", deps.CompanyHolidayHandler.GetAll).Queries("year", "{year}").Methods("GET")
	r.HandleFunc("/api/company-holiday", deps.CompanyHolidayHandler.Create).Methods("POST")
	r.HandleFunc("/api/company-holiday/{id}", deps.CompanyHolidayHandler.Rename).Methods("PUT")
	r.HandleFunc("/api/company-holiday/{id}", deps.CompanyHolidayHandler.Delete).Methods("DELETE")

	// Public holiday data
	r.HandleFunc("/api/holiday/countries", deps.HolidayHandler.ListCountries).Methods("GET")
	r.HandleFunc("/api/holiday", deps.HolidayHandler.ListHolidays).Queries("year", "{year}", "country", "{country}").Methods("GET")

	// User management
	r.HandleFunc("/api/user/current", deps.UserHandler.CurrentUser).Methods("GET")
	r.HandleFunc("/api/user", deps.UserHandler.CreateUser).Methods("POST")
	r.HandleFunc("/api/user", deps.UserHandler.GetAvailableUsers).Methods("GET")
}
