// Package handlers provides the HTTP request handlers for the screening API:
// the pharmacy proxy, the city directory, the assessment catalog and the
// risk-scoring endpoint.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hirassa/screening-api/assessment"
	"github.com/hirassa/screening-api/cities"
	"github.com/hirassa/screening-api/health"
	"github.com/hirassa/screening-api/interfaces"
	"github.com/hirassa/screening-api/locale"
	"github.com/hirassa/screening-api/logging"
	"github.com/hirassa/screening-api/metrics"
	"github.com/hirassa/screening-api/pharmacies"
	"github.com/hirassa/screening-api/validation"
)

// Fixed error bodies of the proxy contract. The front-end matches on these
// strings, so they must not change.
const (
	errCityRequired    = "City parameter is required"
	errKeyNotSet       = "API key not configured"
	errUpstreamFailure = "Failed to fetch pharmacies"
)

// Handler serves all API endpoints with injected dependencies.
type Handler struct {
	catalog   *assessment.Catalog
	directory interfaces.PharmacyDirectory
	checker   *health.Checker
}

// New creates a handler set.
func New(catalog *assessment.Catalog, directory interfaces.PharmacyDirectory, checker *health.Checker) *Handler {
	return &Handler{
		catalog:   catalog,
		directory: directory,
		checker:   checker,
	}
}

// ListPharmacies proxies a city-filtered pharmacy lookup to the upstream
// API, shielding the credential from the browser. The upstream payload is
// passed through unchanged on success; every failure maps to one of the
// fixed error bodies so nothing upstream-internal leaks.
func (h *Handler) ListPharmacies(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	if city == "" {
		RespondWithError(w, http.StatusBadRequest, errCityRequired)
		return
	}

	if err := validation.ValidateCityCode(city); err != nil {
		logging.Warn("Rejected city parameter", "error", err)
		RespondWithError(w, http.StatusBadRequest, "Invalid city parameter")
		return
	}

	if !h.directory.HasCredential() {
		logging.Error("Pharmacy lookup refused: upstream API key is not configured")
		RespondWithError(w, http.StatusInternalServerError, errKeyNotSet)
		return
	}

	if _, known := cities.Lookup(city); !known {
		// Forwarded anyway: the upstream owns coverage
		logging.Debug("City code not in local directory", "city", city)
	}

	list, err := h.directory.ListPharmacies(r.Context(), city)
	if err != nil {
		metrics.UpstreamRequestTotal.WithLabelValues("error").Inc()

		var upstreamErr *pharmacies.UpstreamError
		if errors.As(err, &upstreamErr) {
			logging.Error("Upstream pharmacy request failed",
				"city", city,
				"upstream_status", upstreamErr.StatusCode)
		} else {
			logging.Error("Upstream pharmacy request failed", "city", city, "error", err)
		}

		RespondWithError(w, http.StatusInternalServerError, errUpstreamFailure)
		return
	}

	metrics.UpstreamRequestTotal.WithLabelValues("success").Inc()

	if list == nil {
		list = []pharmacies.Pharmacy{}
	}
	RespondWithJSON(w, http.StatusOK, list)
}

// ListCities returns the full trilingual city directory.
func (h *Handler) ListCities(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, cities.All())
}

// cityView is the localized single-city payload.
type cityView struct {
	ID   int    `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// GetCity returns one city with its name localized per the request locale.
func (h *Handler) GetCity(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	city, ok := cities.Lookup(code)
	if !ok {
		RespondWithError(w, http.StatusNotFound, "City not found")
		return
	}

	loc := locale.FromRequest(r)
	RespondWithJSON(w, http.StatusOK, cityView{
		ID:   city.ID,
		Code: city.Code,
		Name: city.Name.In(loc),
	})
}

// ListAssessments returns the full trilingual assessment catalog. The
// front-end localizes client-side, so all variants are served.
func (h *Handler) ListAssessments(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, h.catalog.All())
}

// GetAssessment returns one assessment by id.
func (h *Handler) GetAssessment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "assessmentID")

	if err := validation.ValidateAssessmentID(id); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid assessment id")
		return
	}

	a, err := h.catalog.Get(id)
	if err != nil {
		RespondWithError(w, http.StatusNotFound, "Assessment not found")
		return
	}

	RespondWithJSON(w, http.StatusOK, a)
}

// ScoreRequest is the body of a scoring call: the chosen option value per
// question id, at most one answer per question.
type ScoreRequest struct {
	Answers map[string]int `json:"answers"`
}

// RiskLevelView is the localized risk band in a scoring response.
type RiskLevelView struct {
	MinScore int                  `json:"minScore"`
	MaxScore int                  `json:"maxScore"`
	Label    string               `json:"label"`
	Message  string               `json:"message"`
	Color    assessment.RiskColor `json:"color"`
}

// ScoreResponse is the result of a completed assessment.
type ScoreResponse struct {
	AssessmentID string        `json:"assessmentId"`
	Score        int           `json:"score"`
	RiskLevel    RiskLevelView `json:"riskLevel"`
}

// ScoreAssessment computes the risk score for a completed answer set and
// resolves the matching band. Incomplete sets are rejected, and a score no
// band contains is a loud 500, never silently mapped to a default band.
func (h *Handler) ScoreAssessment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "assessmentID")

	a, err := h.catalog.Get(id)
	if err != nil {
		RespondWithError(w, http.StatusNotFound, "Assessment not found")
		return
	}

	var req ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	answers := assessment.NewAnswerSet()
	for questionID, points := range req.Answers {
		q, ok := a.Question(questionID)
		if !ok {
			RespondWithError(w, http.StatusBadRequest, fmt.Sprintf("Unknown question: %s", questionID))
			return
		}
		if !q.OffersPoints(points) {
			RespondWithError(w, http.StatusBadRequest,
				fmt.Sprintf("Invalid option value for question %s", questionID))
			return
		}
		answers.Record(questionID, points)
	}

	if !answers.IsComplete(a) {
		RespondWithError(w, http.StatusUnprocessableEntity, "All questions must be answered")
		return
	}

	score := answers.Score()
	level, err := a.ResolveRiskLevel(score)
	if err != nil {
		// Catalog validation at startup should make this unreachable, but a
		// missing band must never be papered over with a default tier.
		logging.Error("No risk level matches computed score",
			"assessment", a.ID, "score", score, "error", err)
		RespondWithError(w, http.StatusInternalServerError, "Unable to resolve risk level")
		return
	}

	metrics.AssessmentScoreTotal.WithLabelValues(string(level.Color)).Inc()

	loc := locale.FromRequest(r)
	RespondWithJSON(w, http.StatusOK, ScoreResponse{
		AssessmentID: a.ID,
		Score:        score,
		RiskLevel: RiskLevelView{
			MinScore: level.MinScore,
			MaxScore: level.MaxScore,
			Label:    level.Label.In(loc),
			Message:  level.Message.In(loc),
			Color:    level.Color,
		},
	})
}

// HealthCheck reports service status.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	_, data, httpStatus := h.checker.HealthCheck()
	RespondWithJSON(w, httpStatus, data)
}
