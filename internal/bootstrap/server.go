package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Domenick1991/turfbooking/api"
	"github.com/Domenick1991/turfbooking/config"
	"github.com/Domenick1991/turfbooking/internal/obs"
	"github.com/Domenick1991/turfbooking/internal/service/checkin"
	"github.com/Domenick1991/turfbooking/internal/service/moderation"
	"github.com/Domenick1991/turfbooking/internal/service/turfs"
	"github.com/gin-gonic/gin"
)

// Run starts the HTTP server and blocks until the context is canceled or the server fails.
func Run(ctx context.Context, cfg *config.Config, turfSvc turfs.TurfUseCase, moderationSvc moderation.ModerationUseCase, checkInSvc checkin.CheckInUseCase) error {
	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: newRouter(cfg, turfSvc, moderationSvc, checkInSvc),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newRouter(cfg *config.Config, turfSvc turfs.TurfUseCase, moderationSvc moderation.ModerationUseCase, checkInSvc checkin.CheckInUseCase) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), obs.Instrument())
	router.GET("/metrics", obs.Handler())

	api.NewTurfHandler(turfSvc).Register(router.Group("/turfs"))

	admin := router.Group("/admin/turfs", api.Authenticate(cfg.Auth.JWTSecret), api.RequireRole(api.RoleAdmin))
	api.NewModerationHandler(moderationSvc).Register(admin)

	owner := router.Group("/owner", api.Authenticate(cfg.Auth.JWTSecret), api.RequireRole(api.RoleOwner))
	api.NewCheckInHandler(checkInSvc).Register(owner)

	return router
}
