package api

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/trimly-app/survey-api/internal/middleware"
	"github.com/trimly-app/survey-api/internal/models"
	"github.com/trimly-app/survey-api/internal/services"
)

type Router struct {
	responses *services.ResponseService
	analytics *services.AnalyticsService
	auth      *services.AuthService
	export    *services.ExportService
}

func NewRouter(store Store) *Router {
	return &Router{
		responses: services.NewResponseService(store),
		analytics: services.NewAnalyticsService(store),
		auth:      services.NewAuthService(store, middleware.SignToken),
		export:    services.NewExportService(store),
	}
}

// Auth exposes the auth service so the entrypoint can seed the default admin.
func (rt *Router) Auth() *services.AuthService { return rt.auth }

func (rt *Router) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/submit-with-storage", rt.handleCustomerResponses) // POST public, GET admin
	mux.HandleFunc("/api/submit-barber", rt.handleBarberResponses)         // POST public, GET admin
	mux.HandleFunc("/api/auth/login", rt.handleLogin)                      // POST
	mux.HandleFunc("/api/submit", rt.handleLegacySubmit)                   // POST, no persistence
	mux.Handle("/api/analytics/customer", middleware.RequireAuth(http.HandlerFunc(rt.handleCustomerAnalytics)))
	mux.Handle("/api/analytics/barber", middleware.RequireAuth(http.HandlerFunc(rt.handleBarberAnalytics)))
	mux.Handle("/api/export", middleware.RequireAuth(http.HandlerFunc(rt.handleExport)))
}

// POST: store one customer survey submission. Payloads are not validated and
// resubmission stores a second row. GET: every stored row, newest first,
// admin only.
func (rt *Router) handleCustomerResponses(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		var rec models.CustomerResponse
		if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
			log.Printf("api: decode customer submission: %v", err)
			writeFailure(w, http.StatusInternalServerError, "Failed to submit survey", err)
			return
		}
		result, err := rt.responses.SubmitCustomer(&rec)
		if err != nil {
			log.Printf("api: save customer submission: %v", err)
			writeFailure(w, http.StatusInternalServerError, "Failed to submit survey", err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Survey submitted successfully",
			"result":  result,
		})
	case http.MethodGet:
		if _, ok := middleware.UsernameFromContext(r.Context()); !ok {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "unauthorized"})
			return
		}
		rows, err := rt.responses.ListCustomers()
		if err != nil {
			log.Printf("api: list customer responses: %v", err)
			writeFailure(w, http.StatusInternalServerError, "Failed to fetch responses", err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"success":        true,
			"totalResponses": len(rows),
			"responses":      rows,
		})
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (rt *Router) handleBarberResponses(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		var rec models.BarberResponse
		if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
			log.Printf("api: decode barber submission: %v", err)
			writeFailure(w, http.StatusInternalServerError, "Failed to submit survey", err)
			return
		}
		result, err := rt.responses.SubmitBarber(&rec)
		if err != nil {
			log.Printf("api: save barber submission: %v", err)
			writeFailure(w, http.StatusInternalServerError, "Failed to submit survey", err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Survey submitted successfully",
			"result":  result,
		})
	case http.MethodGet:
		if _, ok := middleware.UsernameFromContext(r.Context()); !ok {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "unauthorized"})
			return
		}
		rows, err := rt.responses.ListBarbers()
		if err != nil {
			log.Printf("api: list barber responses: %v", err)
			writeFailure(w, http.StatusInternalServerError, "Failed to fetch responses", err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"success":        true,
			"totalResponses": len(rows),
			"responses":      rows,
		})
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// POST /api/auth/login — the failure message never reveals whether the
// username existed.
func (rt *Router) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("api: decode login: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"success": false, "message": "Terjadi kesalahan server"})
		return
	}
	token, err := rt.auth.Login(req.Username, req.Password)
	if err != nil {
		if se, ok := services.AsServiceError(err); ok && se.Code == services.ErrorUnauthorized {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "message": se.Message})
			return
		}
		log.Printf("api: login: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"success": false, "message": "Terjadi kesalahan server"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"token":   token,
		"message": "Login berhasil",
	})
}

// POST /api/submit — legacy endpoint kept for old form builds: accepts any
// JSON, logs it, stores nothing.
func (rt *Router) handleLegacySubmit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeFailure(w, http.StatusInternalServerError, "Failed to submit survey", nil)
		return
	}
	log.Printf("api: legacy survey response received (%d fields, not stored)", len(payload))
	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"message":   "Survey submitted successfully",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (rt *Router) handleCustomerAnalytics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	total, stats, err := rt.analytics.CustomerSummary()
	if err != nil {
		log.Printf("api: customer analytics: %v", err)
		writeFailure(w, http.StatusInternalServerError, "Failed to compute statistics", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":        true,
		"totalResponses": total,
		"stats":          stats,
	})
}

func (rt *Router) handleBarberAnalytics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	total, stats, err := rt.analytics.BarberSummary()
	if err != nil {
		log.Printf("api: barber analytics: %v", err)
		writeFailure(w, http.StatusInternalServerError, "Failed to compute statistics", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":        true,
		"totalResponses": total,
		"stats":          stats,
	})
}

// GET /api/export?kind=customer|barber — CSV download of a full table.
func (rt *Router) handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	b, filename, err := rt.export.Export(r.URL.Query().Get("kind"))
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			log.Printf("api: export: %v", err)
			writeFailure(w, status, "Failed to fetch responses", err)
			return
		}
		writeFailure(w, status, err.Error(), nil)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	_, _ = w.Write(b)
}
