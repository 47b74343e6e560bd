package server

import (
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/voyago/tripagent/config"
	"github.com/voyago/tripagent/internal/telemetry"
	"github.com/voyago/tripagent/internal/trip"
	"github.com/voyago/tripagent/provider"
	"github.com/voyago/tripagent/tools/web_search"
)

// Run wires the gateways and the pipeline and serves the HTTP API until the
// listener dies.
func Run(cfg *config.Config) error {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	// Unified HTTP error handler with structured JSON and logging
	baseLogger := log.New(log.Writer(), "[HTTP] ", log.LstdFlags)
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		msg := err.Error()
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if he.Message != nil {
				msg = fmt.Sprint(he.Message)
			}
		}
		req := c.Request()
		baseLogger.Printf("%d %s %s from %s: %v", code, req.Method, req.URL.Path, c.RealIP(), err)
		if !c.Response().Committed {
			_ = c.JSON(code, map[string]interface{}{"error": msg})
		}
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type"},
	}))

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "The Trip Agent API is live."})
	})
	e.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	if cfg.Telemetry.Enabled {
		e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}

	// Shared dependencies (top-level DI): one searcher, one LLM client, one
	// planner, reused across concurrent requests.
	searcher, err := web_search.NewWebSearcher(web_search.Provider(cfg.Search.Provider), cfg.Search.APIKey, cfg.Search.Timeout)
	if err != nil {
		return err
	}
	llm, err := provider.NewProvider(provider.Client(cfg.LLM.Provider), cfg.LLM.APIKey,
		cfg.LLM.Model, cfg.LLM.Temperature, cfg.LLM.MaxTokens, cfg.LLM.Timeout)
	if err != nil {
		return err
	}

	var tele *telemetry.Telemetry
	if cfg.Telemetry.Enabled {
		tele = telemetry.NewTelemetry(prometheus.DefaultRegisterer)
	}
	pipeLogger := log.New(log.Writer(), "[PIPELINE] ", log.LstdFlags)
	planner := trip.NewPlanner(searcher, llm, cfg.Search.MaxResults, pipeLogger, tele)

	th := &TripsHandler{Planner: planner, Timeout: cfg.General.DefaultTimeout}
	api := e.Group("/api", RateLimit(cfg.Server.RatePerMinute, cfg.Server.RateBurst))
	th.Register(api)

	registerUI(e)

	addr := cfg.Server.Address
	if addr == "" {
		addr = ":8080"
	}
	log.Printf("listening on %s", addr)
	return e.Start(addr)
}
