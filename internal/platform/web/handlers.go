package web

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"

	"github.com/vovakirdan/tui-sidescroller/internal/storage"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

type handlers struct {
	src    RunSource
	gameID string
	logger *log.Logger
}

// runJSON is the wire form of a storage.Run.
type runJSON struct {
	ID        int64     `json:"id"`
	Rank      int       `json:"rank,omitempty"`
	Player    string    `json:"player"`
	Score     int       `json:"score"`
	Level     int       `json:"level"`
	Outcome   string    `json:"outcome"`
	CreatedAt time.Time `json:"created_at"`
}

func toJSON(r storage.Run, rank int) runJSON {
	return runJSON{
		ID:        r.ID,
		Rank:      rank,
		Player:    r.Player,
		Score:     r.Score,
		Level:     r.Level,
		Outcome:   r.Outcome,
		CreatedAt: r.CreatedAt,
	}
}

// parseLimit reads ?limit, defaulting to 10 and capping at 100.
func parseLimit(c *gin.Context) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return defaultLimit, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, false
	}
	return min(n, maxLimit), true
}

func (h *handlers) listScores(c *gin.Context) {
	limit, ok := parseLimit(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
		return
	}

	runs, err := h.src.TopRuns(h.gameID, limit)
	if err != nil {
		h.fail(c, err)
		return
	}

	out := make([]runJSON, len(runs))
	for i, r := range runs {
		out[i] = toJSON(r, i+1)
	}
	c.JSON(http.StatusOK, gin.H{"game": h.gameID, "scores": out})
}

func (h *handlers) getScore(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	run, err := h.src.RunByID(id)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toJSON(run, 0))
}

func (h *handlers) stats(c *gin.Context) {
	st, err := h.src.GameStats(h.gameID)
	if err != nil {
		h.fail(c, err)
		return
	}
	resp := gin.H{
		"game":       h.gameID,
		"runs":       st.Runs,
		"completed":  st.Completed,
		"high_score": st.HighScore,
		"best_level": st.BestLevel,
		"avg_score":  st.AvgScore,
	}
	if !st.LastPlayed.IsZero() {
		resp["last_played"] = st.LastPlayed
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handlers) boardImage(c *gin.Context) {
	runs, err := h.src.TopRuns(h.gameID, defaultLimit)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.Header("Content-Type", "image/png")
	c.Status(http.StatusOK)
	if err := imaging.Encode(c.Writer, RenderBoard(runs), imaging.PNG); err != nil {
		h.logger.Error("encode board", "err", err)
	}
}

func (h *handlers) fail(c *gin.Context, err error) {
	h.logger.Error("request failed", "path", c.Request.URL.Path, "err", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
