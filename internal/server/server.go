// Package server serves the portfolio: pre-rendered pages for every route, the
// wasm client and its static assets.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"path"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vcrobe/folio/internal/config"
	"github.com/vcrobe/folio/internal/portfolio/site"
)

// Server represents the HTTP server
type Server struct {
	router     *mux.Router
	httpServer *http.Server
	config     config.Server
	log        *zap.Logger

	pages    map[string][]byte
	notFound []byte
}

// New creates a server and pre-renders every route. Rendering happens once: the
// content is static.
func New(cfg config.Server, log *zap.Logger) (*Server, error) {
	if log == nil {
		log = zap.NewNop()
	}

	s := &Server{
		// "/about/" redirects to "/about", matching the client's path normalisation.
		router: mux.NewRouter().StrictSlash(true),
		config: cfg,
		log:    log,
		pages:  make(map[string][]byte),
	}

	for _, p := range site.Paths() {
		doc, err := RenderPage(p)
		if err != nil {
			return nil, err
		}
		s.pages[p] = doc
	}

	notFound, err := RenderNotFound()
	if err != nil {
		return nil, err
	}
	s.notFound = notFound

	s.setupMiddleware()
	s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:              cfg.Addr(),
		Handler:           s.router,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		ErrorLog:          zap.NewStdLog(log),
	}

	return s, nil
}

// setupMiddleware configures middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(requestID)
	s.router.Use(mux.MiddlewareFunc(accessLog(s.log)))
	s.router.Use(mux.MiddlewareFunc(recoverer(s.log)))
	s.router.Use(securityHeaders)
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet, http.MethodHead)
	s.router.HandleFunc(bootPath, s.handleBoot).Methods(http.MethodGet, http.MethodHead)

	for p := range s.pages {
		s.router.HandleFunc(p, s.handlePage).Methods(http.MethodGet, http.MethodHead)
	}

	static := cacheControl(s.config.Dev, http.FileServer(http.Dir(s.config.StaticDir)))
	s.router.PathPrefix("/").Handler(s.onlyExisting(static)).Methods(http.MethodGet, http.MethodHead)

	s.router.NotFoundHandler = http.HandlerFunc(s.handleNotFound)
	s.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	})
}

// Handler returns the root handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.pages[r.URL.Path]
	if !ok {
		s.handleNotFound(w, r)
		return
	}
	writeHTML(w, http.StatusOK, doc)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeHTML(w, http.StatusNotFound, s.notFound)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
		s.log.Warn("write health response", zap.Error(err))
	}
}

func (s *Server) handleBoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
	_, _ = w.Write([]byte(bootScript))
}

// onlyExisting answers 404 with the site page for paths that are not regular
// files, instead of directory listings or the file server's plain-text error.
func (s *Server) onlyExisting(next http.Handler) http.Handler {
	root := http.Dir(s.config.StaticDir)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f, err := root.Open(path.Clean(r.URL.Path))
		if err != nil {
			s.handleNotFound(w, r)
			return
		}
		info, err := f.Stat()
		f.Close()
		if err != nil || info.IsDir() {
			s.handleNotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeHTML(w http.ResponseWriter, status int, doc []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(doc)
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled, then shuts down gracefully within
// the configured timeout. It returns once both have finished.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.log.Info("server listening", zap.String("addr", ln.Addr().String()),
			zap.String("static_dir", s.config.StaticDir), zap.Bool("dev", s.config.Dev))
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		timeout := s.config.ShutdownTimeout
		if timeout <= 0 {
			timeout = 5 * time.Second
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		s.log.Info("shutting down server", zap.Duration("timeout", timeout))
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
