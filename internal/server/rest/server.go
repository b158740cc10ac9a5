// Package rest mounts the account operations behind an HTTP router. The
// routing table is built explicitly in code; guarded routes go through the
// bearer-token middleware before the handler runs.
package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/akarpov87/accountd/internal/logging"
	"github.com/akarpov87/accountd/internal/server/models"
	"github.com/akarpov87/accountd/internal/server/services"
)

const shutdownTimeout = 5 * time.Second

// UserService is the account orchestration the handlers delegate to.
type UserService interface {
	Register(ctx context.Context, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	Update(ctx context.Context, email string, patch services.UpdatePatch) (string, *models.User, error)
	Logout(ctx context.Context, token string) error
	Delete(ctx context.Context, email string) error
	FindOne(ctx context.Context, email string) (*models.User, error)
}

type Server struct {
	address   string
	logger    logging.Logger
	users     UserService
	jwtSecret []byte
}

func NewServer(a string, l logging.Logger, us UserService, secretKey string) *Server {
	return &Server{
		address:   a,
		logger:    l.With("module", "rest_server"),
		users:     us,
		jwtSecret: []byte(secretKey),
	}
}

// Router builds the routing table.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	u := r.Group("/users")
	u.POST("", s.register)
	u.POST("/login", s.login)
	u.POST("/logout", s.logout)

	guarded := u.Group("", BearerAuth(s.jwtSecret))
	guarded.GET("/:email", s.findOne)
	guarded.PUT("/:email", s.update)
	guarded.DELETE("/:email", s.remove)

	return r
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{Addr: s.address, Handler: s.Router()}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP server shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}
