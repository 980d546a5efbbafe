// Package web serves the high score table over HTTP with gin.
package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/vovakirdan/tui-sidescroller/internal/logging"
	"github.com/vovakirdan/tui-sidescroller/internal/storage"
)

// RunSource reads recorded runs. *storage.Store implements it.
type RunSource interface {
	TopRuns(gameID string, limit int) ([]storage.Run, error)
	RunByID(id int64) (storage.Run, error)
	GameStats(gameID string) (*storage.Stats, error)
}

// NewRouter builds the leaderboard routes for one game.
func NewRouter(src RunSource, gameID string, logger *log.Logger) *gin.Engine {
	if logger == nil {
		logger = logging.Discard()
	}
	gin.SetMode(gin.ReleaseMode)

	h := &handlers{src: src, gameID: gameID, logger: logger}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logger))
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Next()
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/scores", h.listScores)
		api.GET("/scores/:id", h.getScore)
		api.GET("/stats", h.stats)
		api.GET("/board.png", h.boardImage)
	}
	return r
}

func requestLogger(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("http",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"took", time.Since(start),
		)
	}
}

// ListenAndServe serves handler on addr until ctx is cancelled.
func ListenAndServe(ctx context.Context, addr string, handler http.Handler, logger *log.Logger) error {
	if logger == nil {
		logger = logging.Discard()
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("starting HTTP server", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
