package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const shutdownTimeout = 10 * time.Second

// Run starts the HTTP server and all background services, then blocks until
// a shutdown signal arrives:
//  1. Map HTTP handlers and routes
//  2. Start the hub and, when enabled, the Redis subscriber
//  3. Serve HTTP
//  4. Drain on SIGINT/SIGTERM
func (srv *HTTPServer) Run() error {
	ctx := context.Background()

	if err := srv.mapHandlers(); err != nil {
		srv.logger.Errorf(ctx, "failed to map handlers: %v", err)
		return err
	}

	go srv.realtimeUC.Run()
	srv.logger.Info(ctx, "realtime hub started")

	if srv.subscriber != nil {
		if err := srv.subscriber.Start(); err != nil {
			srv.logger.Errorf(ctx, "failed to start redis subscriber: %v", err)
			return err
		}
	}

	httpSrv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", srv.host, srv.port),
		Handler: srv.gin,
	}

	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			srv.logger.Errorf(ctx, "http server error: %v", err)
		}
	}()
	srv.logger.Infof(ctx, "http server started on %s:%d", srv.host, srv.port)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	srv.logger.Infof(ctx, "received signal %s, stopping", sig)

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		srv.logger.Errorf(ctx, "http server shutdown error: %v", err)
	}
	if srv.subscriber != nil {
		if err := srv.subscriber.Shutdown(shutdownCtx); err != nil {
			srv.logger.Errorf(ctx, "redis subscriber shutdown error: %v", err)
		}
	}
	if err := srv.realtimeUC.Shutdown(shutdownCtx); err != nil {
		srv.logger.Errorf(ctx, "realtime hub shutdown error: %v", err)
	}

	return nil
}
