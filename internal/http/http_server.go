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

	"github.com/Vishal-V-D/smart-hire-backend-sub000/internal/config"
	"github.com/Vishal-V-D/smart-hire-backend-sub000/internal/core/ports/primary"
	gradingsvc "github.com/Vishal-V-D/smart-hire-backend-sub000/internal/core/services/grading"
	"github.com/Vishal-V-D/smart-hire-backend-sub000/internal/handlers"
	gradinghdl "github.com/Vishal-V-D/smart-hire-backend-sub000/internal/handlers/grading"
)

type ServiceProvider struct {
	gradingService gradingsvc.IGradingService
}

func NewServiceProvider(gradingService gradingsvc.IGradingService) *ServiceProvider {
	return &ServiceProvider{
		gradingService: gradingService,
	}
}

type Server struct {
	router          *mux.Router
	srv             *http.Server
	Port            int
	ServiceName     string
	ServiceProvider ServiceProvider
	jwtCfg          *config.JwtConfig
	logger          primary.Logger
}

func NewServer(port int, serviceName string, serviceProvider ServiceProvider, jwtCfg *config.JwtConfig, logger primary.Logger) *Server {
	return &Server{
		Port:            port,
		ServiceName:     serviceName,
		ServiceProvider: serviceProvider,
		jwtCfg:          jwtCfg,
		logger:          logger,
	}
}

func (s *Server) Init() error {
	r := mux.NewRouter()

	mw := handlers.New(s.jwtCfg)
	gradinghdl.
		NewGradingHandler(s.ServiceProvider.gradingService, s.logger).
		RegisterRoutes(r, mw)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods("GET")

	s.router = r
	return nil
}

func (s *Server) Start(ctx context.Context) {
	s.srv = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Grading requests block on judge polling, hence the long write
	// timeout relative to the read timeout.
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
