package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"schedule-server/util"

	"github.com/gorilla/mux"
)

type ScheduleHttpServer struct {
	router    *Router
	muxRouter *mux.Router
	addr      string
}

func NewScheduleHttpServer(router *Router, muxRouter *mux.Router, port string) *ScheduleHttpServer {
	return &ScheduleHttpServer{
		router:    router,
		muxRouter: muxRouter,
		addr:      ":" + port,
	}
}

// Start registers the routes and serves until an interrupt or
// termination signal arrives, then shuts down gracefully.
func (s *ScheduleHttpServer) Start() {
	logger := util.GetLogger().Sugar()

	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.muxRouter,
	}

	// Channel to listen for interrupt or termination signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Start the server in a goroutine so it doesn't block
	go func() {
		logger.Infof("Starting server on %s", s.addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Wait for a signal to shut down
	<-stop
	logger.Info("Shutting down the server...")

	// Create a deadline for the shutdown (e.g., 5 seconds)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exiting")
}
