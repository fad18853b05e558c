package main

import (
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"intervals-mcp/internal/config"
	"intervals-mcp/internal/icu"
)

const serverVersion = "1.0.0"

func main() {
	app := &cli.App{
		Name:  "icu-server",
		Usage: "MCP server exposing Intervals.icu training data as tools",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "api-key",
				Usage:   "Intervals.icu API key",
				EnvVars: []string{"ICU_API_KEY", "API_KEY"},
			},
			&cli.StringFlag{
				Name:    "athlete-id",
				Usage:   "default athlete id when a tool call does not pass one",
				EnvVars: []string{"ICU_ATHLETE_ID", "ATHLETE_ID"},
			},
			&cli.StringFlag{
				Name:    "base-url",
				Usage:   "Intervals.icu API base URL",
				EnvVars: []string{"ICU_BASE_URL"},
			},
			&cli.StringFlag{
				Name:    "transport",
				Usage:   "mcp transport: stdio or http",
				Value:   "stdio",
				EnvVars: []string{"MCP_TRANSPORT"},
			},
			&cli.StringFlag{
				Name:    "addr",
				Usage:   "HTTP listen address",
				Value:   ":9000",
				EnvVars: []string{"MCP_ADDR"},
			},
			&cli.StringFlag{
				Name:    "path",
				Usage:   "HTTP path for the MCP endpoint",
				Value:   "/mcp",
				EnvVars: []string{"MCP_PATH"},
			},
			&cli.StringFlag{
				Name:    "server-api-key",
				Usage:   "API key required by HTTP clients (empty disables auth)",
				EnvVars: []string{"MCP_SERVER_API_KEY"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "zerolog level: trace, debug, info, warn, error",
				Value:   "info",
				EnvVars: []string{"LOG_LEVEL"},
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg := config.Config{
		APIKey:       c.String("api-key"),
		AthleteID:    c.String("athlete-id"),
		BaseURL:      c.String("base-url"),
		Transport:    c.String("transport"),
		Addr:         c.String("addr"),
		ServerAPIKey: c.String("server-api-key"),
		LogLevel:     c.String("log-level"),
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("ICU_API_KEY is required")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	// stdout carries the stdio transport, so logs go to stderr.
	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Str("component", "icu-server").Logger()

	client := icu.NewClient(cfg.APIKey, logger)
	if cfg.BaseURL != "" {
		client.BaseURL = cfg.BaseURL
	}
	s := &server{
		client: client,
		cfg:    cfg,
		log:    logger,
	}

	m := mcp.NewServer(
		&mcp.Implementation{
			Name:    "intervals-mcp",
			Version: serverVersion,
		},
		nil,
	)
	s.registerActivityTools(m)
	s.registerEventTools(m)
	s.registerSeasonTools(m)
	s.registerWellnessTools(m)
	s.registerCustomItemTools(m)
	s.registerAthleteTools(m)
	s.registerSearchTools(m)
	s.registerWorkoutTools(m)

	logger.Info().
		Str("transport", cfg.Transport).
		Int("tools", len(s.registry)).
		Msg("starting server")

	switch cfg.Transport {
	case "stdio":
		return m.Run(c.Context, &mcp.StdioTransport{})
	case "http":
		return s.serveHTTP(c, m)
	default:
		return fmt.Errorf("unknown transport %q (want stdio or http)", cfg.Transport)
	}
}

func (s *server) serveHTTP(c *cli.Context, m *mcp.Server) error {
	handler := mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		return m
	}, &mcp.StreamableHTTPOptions{JSONResponse: true})

	mux := http.NewServeMux()

	mux.HandleFunc("/health", s.withAuth(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}))

	mux.HandleFunc("/tools", s.withAuth(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		b, _ := json.MarshalIndent(map[string]any{"tools": s.registry}, "", "  ")
		w.Write(b)
	}))

	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc(c.String("path"), s.withAuth(func(w http.ResponseWriter, r *http.Request) {
		handler.ServeHTTP(w, r)
	}))

	s.log.Info().Str("addr", s.cfg.Addr).Str("path", c.String("path")).Msg("MCP HTTP server listening")
	return http.ListenAndServe(s.cfg.Addr, mux)
}

// withAuth checks the X-API-Key header or a bearer token against the
// configured server key. An empty key disables auth.
func (s *server) withAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.cfg.ServerAPIKey == "" {
			next(w, r)
			return
		}
		key := strings.TrimSpace(r.Header.Get("X-API-Key"))
		if key == "" {
			if authz := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
				key = strings.TrimSpace(authz[7:])
			}
		}
		if subtle.ConstantTimeCompare([]byte(key), []byte(s.cfg.ServerAPIKey)) != 1 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"unauthorized"}`))
			return
		}
		next(w, r)
	}
}
