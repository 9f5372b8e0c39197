package http

// this is entry point of the http request handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"

	"gitlab.com/codebench-2025.net/internal/config"
	"gitlab.com/codebench-2025.net/internal/core/ports/primary"
	workbenchsvc "gitlab.com/codebench-2025.net/internal/core/services/workbench"
	"gitlab.com/codebench-2025.net/internal/handlers"
	"gitlab.com/codebench-2025.net/internal/handlers/workbench"
)

type ServiceProvider struct {
	workbenchService workbenchsvc.IWorkbenchService
}

func NewServiceProvider(workbenchService workbenchsvc.IWorkbenchService) *ServiceProvider {
	return &ServiceProvider{
		workbenchService: workbenchService,
	}
}

type Server struct {
	router          *mux.Router
	srv             *http.Server
	Port            int
	ServiceName     string
	ServiceProvider ServiceProvider
	JwtConfig       *config.JwtConfig
	logger          primary.Logger
}

func NewServer(port int, serviceName string, serviceProvider ServiceProvider, jwtCfg *config.JwtConfig, logger primary.Logger) *Server {
	return &Server{
		Port:            port,
		ServiceName:     serviceName,
		ServiceProvider: serviceProvider,
		JwtConfig:       jwtCfg,
		logger:          logger,
	}
}

func (s *Server) Init() error {
	r := mux.NewRouter()
	mw := handlers.New(s.JwtConfig)
	workbench.
		NewHandler(s.ServiceProvider.workbenchService, s.logger).
		RegisterRoutes(r, mw)
	s.router = r
	return nil
}

func (s *Server) Start(ctx context.Context) {
	s.srv = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start the server in a goroutine
	go func() {
		s.logger.Info("Server listening", "service", s.ServiceName, "addr", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()
}

func (s *Server) Stop(ctx context.Context) {
	s.logger.Info("Shutting down http server...")
	if s.srv == nil {
		return
	}
	if err := s.srv.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", "error", err)
	}
}
