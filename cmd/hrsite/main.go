package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/mtlprog/hrsite/internal/config"
	"github.com/mtlprog/hrsite/internal/domain"
	"github.com/mtlprog/hrsite/internal/handler"
	"github.com/mtlprog/hrsite/internal/logger"
	"github.com/mtlprog/hrsite/internal/ui"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "hrsite",
		Usage: "Marketing site for Teamwise HR",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   config.DefaultLogLevel,
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Value:   config.DefaultLogFormat,
				Usage:   "Log format (json, text)",
				EnvVars: []string{"LOG_FORMAT"},
			},
			portFlag(),
		},
		Before: func(c *cli.Context) error {
			logger.Setup(logger.ParseLevel(c.String("log-level")), c.String("log-format"))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Start the web server",
				Flags:  []cli.Flag{portFlag()},
				Action: runServe,
			},
			{
				Name:  "render",
				Usage: "Render the landing page or a single section as static HTML",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "section",
						Aliases: []string{"s"},
						Usage:   "Render only this section (see 'sections')",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file (default: stdout)",
					},
				},
				Action: runRender,
			},
			{
				Name:   "sections",
				Usage:  "List renderable sections in page order",
				Action: runSections,
			},
		},
		Action: runServe,
	}
}

// portFlag is declared on the root app and on serve, so the default action
// and "serve --port" both see it.
func portFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "port",
		Aliases: []string{"p"},
		Value:   config.DefaultPort,
		Usage:   "HTTP server port",
		EnvVars: []string{"PORT"},
	}
}

// startServer runs the server until it fails or the process is signalled.
var startServer = serveUntilSignal

func runServe(c *cli.Context) error {
	port := c.String("port")
	if port == "" {
		port = config.DefaultPort
	}

	h, err := handler.New()
	if err != nil {
		return fmt.Errorf("failed to build handler: %w", err)
	}

	return startServer(c.Context, newServer(port, h.Router(slog.Default())))
}

func newServer(port string, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + port,
		Handler:           h,
		ReadTimeout:       config.ReadTimeout,
		WriteTimeout:      config.WriteTimeout,
		IdleTimeout:       config.IdleTimeout,
		ReadHeaderTimeout: config.ReadHeaderTimeout,
	}
}

func serveUntilSignal(ctx context.Context, server *http.Server) error {
	serverErr := make(chan error, 1)
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("starting server", "server_addr", "http://localhost"+server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-done:
		slog.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, config.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

func runRender(c *cli.Context) error {
	section := c.String("section")
	if section != "" && !domain.SectionName(section).IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrSectionNotFound, section)
	}

	out, err := renderHTML(section)
	if err != nil {
		return err
	}

	path := c.String("output")
	if path == "" {
		return writeOut(c.App.Writer, out)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	if err := writeOut(f, out); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output file: %w", err)
	}

	slog.Info("page rendered", "output", path, "bytes", len(out))
	return nil
}

// renderHTML renders the named section, or the whole page when section is "".
func renderHTML(section string) (string, error) {
	if section == "" {
		return ui.Render(ui.Page(config.SiteTitle))
	}

	node, err := ui.Section(domain.SectionName(section))
	if err != nil {
		return "", err
	}
	return ui.Render(node)
}

func writeOut(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func runSections(c *cli.Context) error {
	for _, name := range ui.Sections() {
		if _, err := fmt.Fprintln(c.App.Writer, name); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}
