// Package site serves the hxdrop documentation and demo site.
package site

import (
	"context"
	"crypto/rand"
	"embed"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/pthm/hxdrop"
	hxdropecho "github.com/pthm/hxdrop/adapters/echo"
	"github.com/pthm/hxdrop/internal/config"
)

//go:embed static
var staticFiles embed.FS

// Server is the demo site.
type Server struct {
	cfg     *config.Config
	logger  *zap.Logger
	version string
	echo    *echo.Echo
	demos   []Demo
	pickers map[string]*hxdrop.Picker
}

// New builds the site and registers its routes.
func New(cfg *config.Config, logger *zap.Logger, version string) (*Server, error) {
	demos, err := LoadCatalog()
	if err != nil {
		return nil, err
	}

	key := []byte(cfg.Server.Key)
	if len(key) == 0 {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			return nil, fmt.Errorf("generate state key: %w", err)
		}
		logger.Warn("SERVER_KEY not set, using a random state key")
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		cfg:     cfg,
		logger:  logger,
		version: version,
		echo:    e,
		demos:   demos,
		pickers: make(map[string]*hxdrop.Picker, len(demos)),
	}

	e.Use(requestID())
	e.Use(requestLogger(logger))
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10,
	}))

	reg := hxdropecho.Mount(e, hxdropecho.WithKey(key), hxdropecho.WithLogger(logger))
	for _, d := range demos {
		p := hxdrop.New("demo-"+d.Slug,
			hxdrop.WithLogger(logger),
			hxdrop.OnFilesSelected(s.logSelection),
		)
		reg.Add(p)
		s.pickers[d.Slug] = p
	}

	e.GET("/", s.handleIndex)
	e.GET("/docs", s.handleDocs)
	e.POST("/theme", s.handleTheme)
	e.GET("/healthz", s.handleHealth)
	e.GET("/static/hxdrop.js", echo.WrapHandler(hxdrop.ScriptHandler()))
	e.StaticFS("/static", echo.MustSubFS(staticFiles, "static"))

	return s, nil
}

// Handler returns the site as an http.Handler.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		s.logger.Info("starting server", zap.String("addr", s.cfg.Server.Addr))
		errc <- s.echo.Start(s.cfg.Server.Addr)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.echo.Shutdown(shutdownCtx)
}

func (s *Server) handleIndex(c echo.Context) error {
	th := theme(c, s.cfg.Site.Theme)

	mounted := make([]mountedDemo, 0, len(s.demos))
	for _, d := range s.demos {
		widget, err := s.pickers[d.Slug].Mount(d.Config(th))
		if err != nil {
			return fmt.Errorf("mount demo %q: %w", d.Slug, err)
		}
		mounted = append(mounted, mountedDemo{Demo: d, Widget: widget})
	}

	return hxdropecho.Render(c, layout("Demos", th, "/", indexPage(mounted)))
}

func (s *Server) handleDocs(c echo.Context) error {
	th := theme(c, s.cfg.Site.Theme)
	return hxdropecho.Render(c, layout("Docs", th, "/docs", docsPage()))
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":  "ok",
		"version": s.version,
		"demos":   len(s.demos),
	})
}

// logSelection is the demo pickers' selection callback.
func (s *Server) logSelection(ctx context.Context, ev hxdrop.SelectionEvent) {
	s.logger.Info("files selected",
		zap.String("widget", ev.WidgetID),
		zap.Strings("files", ev.Files.Names()),
		zap.Int64("bytes", ev.Files.TotalSize()),
		zap.Int("rejected", len(ev.Rejected)),
	)
}
