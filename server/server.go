// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package server exposes the interpreter over HTTP.
//
// Each POST /interpret request builds its own engine, runs it under the
// configured limits and answers with the end state as JSON, or CBOR when
// the client asks for application/cbor.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/ezrec/bfi/api"
	"github.com/ezrec/bfi/config"
	"github.com/ezrec/bfi/engine"
	"github.com/ezrec/bfi/runner"
)

const (
	VERSION  = "0.1.0"
	GREETING = "Welcome to the Brainfuck API"
	ERR_BODY = "ERR" // Body of every rejected request.
)

// Server is the HTTP front end of the interpreter.
type Server struct {
	Verbose bool // If set, engines trace each operator.

	Config  config.Config
	Logger  zerolog.Logger
	Metrics *Metrics

	router   *gin.Engine
	http     *http.Server
	appeared time.Time
}

// New creates a server with its routes registered.
func New(cfg config.Config, logger zerolog.Logger) *Server {
	s := &Server{
		Config:   cfg,
		Logger:   logger,
		Metrics:  NewMetrics(),
		router:   gin.New(),
		appeared: time.Now(),
	}

	s.http = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.router.Use(gin.Recovery())
	s.router.Use(RequestLogger(logger))
	s.router.Use(s.Metrics.Middleware())

	s.registerRoutes()

	return s
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Serve listens on the configured address until Shutdown.
func (s *Server) Serve() error {
	s.Logger.Info().Str("addr", s.Config.Addr).Msg("listening")

	err := s.http.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}
	return err
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func (s *Server) registerRoutes() {
	s.router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, GREETING)
	})

	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"uptime":  time.Since(s.appeared).String(),
			"service": s.Config.Name,
			"version": VERSION,
		})
	})

	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.Metrics.Registry, promhttp.HandlerOpts{})))

	s.router.POST("/interpret", s.interpret)
}

// Interpret runs the program of req to its end state.
func (s *Server) Interpret(ctx context.Context, req api.Request) (state engine.State, err error) {
	values, err := req.Values()
	if err != nil {
		return
	}

	eng, err := engine.New(req.Code, values, req.BitsOr(s.Config.DefaultBits), req.SignedOr(s.Config.DefaultSigned))
	if err != nil {
		return
	}

	s.Logger.Debug().
		Str("config", eng.Config()).
		Int("input", len(values)).
		Int("code", len(req.Code)).
		Msg("req")

	run := runner.NewRunner(eng, s.Config.Limits())
	run.Verbose = s.Verbose

	state, runErr := run.Run(ctx)
	if runErr != nil {
		s.Logger.Warn().Err(runErr).Str("config", state.Config).Msg("program stopped")
	}

	s.Metrics.RecordRun(state, eng.Steps())

	s.Logger.Debug().
		Stringer("status", state.Status).
		Int("output", len(state.Output)).
		Int("steps", eng.Steps()).
		Msg("res")

	return
}

func (s *Server) interpret(c *gin.Context) {
	body := http.MaxBytesReader(c.Writer, c.Request.Body, s.Config.MaxBodyBytes)

	req, err := api.DecodeRequest(body)
	if err != nil {
		s.reject(c, err)
		return
	}

	state, err := s.Interpret(c.Request.Context(), req)
	if err != nil {
		s.reject(c, err)
		return
	}

	resp := api.NewResponse(state)

	switch c.NegotiateFormat(api.MIME_JSON, api.MIME_CBOR) {
	case api.MIME_CBOR:
		data, err := resp.EncodeCBOR()
		if err != nil {
			_ = c.AbortWithError(http.StatusInternalServerError, err)
			return
		}
		c.Data(http.StatusOK, api.MIME_CBOR, data)
	default:
		c.JSON(http.StatusOK, resp)
	}
}

func (s *Server) reject(c *gin.Context, err error) {
	s.Logger.Debug().Err(err).Msg("request rejected")
	c.String(http.StatusBadRequest, ERR_BODY)
}
