package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trackmyhomeschool/homeschool/domain"
)

// StateHandlers serves the state-requirements reference table
type StateHandlers struct {
	stateRepo domain.StateRepository
}

// NewStateHandlers creates new state handlers
func NewStateHandlers(stateRepo domain.StateRepository) *StateHandlers {
	return &StateHandlers{stateRepo: stateRepo}
}

// List returns every state with its requirement numbers. Public: the
// registration form needs this before any session exists.
func (h *StateHandlers) List(c *gin.Context) {
	states, err := h.stateRepo.List(c.Request.Context())
	if err != nil {
		log.Printf("state listing failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch states"})
		return
	}

	out := make([]gin.H, 0, len(states))
	for _, s := range states {
		out = append(out, gin.H{
			"id":                 s.ID,
			"name":               s.Name,
			"minCreditsRequired": s.MinCreditsRequired,
			"hoursPerCredit":     s.HoursPerCredit,
		})
	}
	c.JSON(http.StatusOK, out)
}
