package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/limbo/fitfusion/docs"
	"github.com/limbo/fitfusion/internal/service"
	"github.com/limbo/fitfusion/pkg/httputil"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Server struct {
	mx                *chi.Mux
	activitiesService service.ActivitiesServiceI
	goalsService      service.GoalsServiceI
	registry          *prometheus.Registry
	instr             *Instrumentation
	logger            *slog.Logger
	httpServer        *http.Server
}

type ServicesList struct {
	ActivitiesService service.ActivitiesServiceI
	GoalsService      service.GoalsServiceI
}

func New(servicesOptions *ServicesList, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	registry := prometheus.NewRegistry()
	s := &Server{
		mx:                chi.NewMux(),
		activitiesService: servicesOptions.ActivitiesService,
		goalsService:      servicesOptions.GoalsService,
		registry:          registry,
		instr:             NewInstrumentation("fitfusion", "api", registry),
		logger:            logger,
	}
	s.routes()
	s.httpServer = &http.Server{
		Handler:      s.mx,
		ReadTimeout:  time.Minute,
		WriteTimeout: time.Minute,
	}
	return s
}

func (s *Server) routes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware, s.PanicRecovery)
	s.mx.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteErrorResponse(w, http.StatusNotFound, "route not found")
	})
	s.mx.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteErrorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
	})
	s.mx.Group(func(r chi.Router) {
		r.Use(s.RequestMetrics)
		r.Route("/activities", func(r chi.Router) {
			r.Get("/", s.ListActivities)
			r.Post("/", s.CreateActivity)
			r.Get("/{id}", s.GetActivity)
			r.Put("/{id}", s.UpdateActivity)
			r.Delete("/{id}", s.DeleteActivity)
		})
		r.Route("/goals", func(r chi.Router) {
			r.Get("/", s.ListGoals)
			r.Post("/", s.CreateGoal)
			r.Get("/{id}", s.GetGoal)
			r.Put("/{id}", s.UpdateGoal)
			r.Delete("/{id}", s.DeleteGoal)
		})
	})
	s.mx.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	s.mx.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
}

func (s *Server) Handler() http.Handler {
	return s.mx
}

// Run blocks until the server is shut down. Shutdown makes it return nil
func (s *Server) Run(addr string) error {
	s.httpServer.Addr = addr
	s.logger.Info("server listening", slog.String("address", addr))
	err := s.httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.New("listen and serve error: " + err.Error())
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return errors.New("graceful shutdown error: " + err.Error())
	}
	s.logger.Info("server shut down")
	return nil
}
