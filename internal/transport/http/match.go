package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gravity-games/dropfour/internal/domain"
	"github.com/gravity-games/dropfour/internal/service/session"
)

// MatchHandler exposes the match lifecycle over REST. It is a thin
// adapter: all rules live in the match/domain packages.
type MatchHandler struct {
	Sessions    *session.Manager
	DefaultTier domain.BotTier
}

func NewMatchHandler(sm *session.Manager, defaultTier domain.BotTier) *MatchHandler {
	return &MatchHandler{Sessions: sm, DefaultTier: defaultTier}
}

type createMatchRequest struct {
	Player   string `json:"player" binding:"required"`
	Opponent string `json:"opponent"` // second human, mutually exclusive with tier
	Tier     string `json:"tier"`
}

type moveRequest struct {
	Column *int `json:"column" binding:"required"`
}

// Create starts a new match. With an "opponent" name the match is
// human-vs-human; otherwise it is human-vs-bot at the requested tier.
func (h *MatchHandler) Create(c *gin.Context) {
	var req createMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "player is required"})
		return
	}

	var sess *session.Session
	if req.Opponent != "" {
		sess = h.Sessions.CreateVersusHuman(req.Player, req.Opponent)
	} else {
		tier := h.DefaultTier
		if req.Tier != "" {
			tier = domain.ParseTier(req.Tier)
		}
		sess = h.Sessions.CreateVersusBot(req.Player, tier)
	}

	c.JSON(http.StatusCreated, sess.Snapshot())
}

// Get returns the current state of a match.
func (h *MatchHandler) Get(c *gin.Context) {
	sess, ok := h.Sessions.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "match not found"})
		return
	}
	c.JSON(http.StatusOK, sess.Snapshot())
}

// Move applies a column drop for the player whose turn it is; any bot
// reply is part of the same call, so the returned state is final for
// this round.
func (h *MatchHandler) Move(c *gin.Context) {
	sess, ok := h.Sessions.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "match not found"})
		return
	}

	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "column is required"})
		return
	}

	if err := sess.Play(*req.Column); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, sess.Snapshot())
}

// Delete drops a session without waiting for the cleanup worker.
func (h *MatchHandler) Delete(c *gin.Context) {
	if _, ok := h.Sessions.Get(c.Param("id")); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "match not found"})
		return
	}
	h.Sessions.Remove(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// statusForError maps domain failures onto HTTP statuses. They are all
// recoverable by the caller; nothing here means corrupted state.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidColumn), errors.Is(err, domain.ErrInvalidRow):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrColumnFull), errors.Is(err, domain.ErrGameOver):
		return http.StatusConflict
	case errors.Is(err, domain.ErrGameInProgress):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
