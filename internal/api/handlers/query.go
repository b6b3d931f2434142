package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/nikhilsahni7/medquery/internal/api/middleware"
	"github.com/nikhilsahni7/medquery/internal/api/services"
	"github.com/nikhilsahni7/medquery/internal/repositories"
	"github.com/nikhilsahni7/medquery/internal/utils"
	"golang.org/x/text/language"
)

type QueryHandler struct {
	orchestrator *services.Orchestrator
	history      *repositories.HistoryRepository
}

func NewQueryHandler(orchestrator *services.Orchestrator, history *repositories.HistoryRepository) *QueryHandler {
	return &QueryHandler{
		orchestrator: orchestrator,
		history:      history,
	}
}

// GET/POST /
// GET returns the query form data (supported languages); POST submits a
// medical question with form fields user_input and language.
func (h *QueryHandler) Ask(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.CurrentUserID(r.Context())
	if !ok {
		utils.JSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	switch r.Method {
	case http.MethodGet:
		utils.JSONResponse(w, http.StatusOK, utils.Payload{
			Success: true,
			Message: "Submit a medical query",
			Data: map[string]any{
				"languages": services.SupportedLanguages,
			},
		})
		return
	case http.MethodPost:
		// handled below
	default:
		utils.JSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	userInput := r.FormValue("user_input")
	selectedLang := r.FormValue("language")
	if selectedLang == "" {
		selectedLang = "en"
	}
	if _, err := language.Parse(selectedLang); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "Unsupported language")
		return
	}

	answer, err := h.orchestrator.Answer(r.Context(), userID, userInput, selectedLang)
	if err != nil {
		if errors.Is(err, services.ErrEmptyQuery) {
			utils.JSONError(w, http.StatusBadRequest, "Please enter a medical query.")
			return
		}
		log.Println("query failed:", err)
		utils.JSONError(w, http.StatusBadGateway, "Something went wrong. Please try again.")
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Query answered",
		Data: map[string]any{
			"question": userInput,
			"answer":   answer,
			"language": selectedLang,
		},
	})
}

// GET /history
// Lists the authenticated user's past exchanges, newest first.
func (h *QueryHandler) History(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.JSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	userID, ok := middleware.CurrentUserID(r.Context())
	if !ok {
		utils.JSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	records, err := h.history.ListByUser(r.Context(), userID)
	if err != nil {
		log.Println("history lookup failed:", err)
		utils.JSONError(w, http.StatusInternalServerError, "Database error")
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Query history",
		Data: map[string]any{
			"history": records,
		},
	})
}
