// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2025 Aleksei Sviridkin

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-logr/logr"
	"github.com/nats-io/nats.go"
	"github.com/spf13/cobra"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/lexfrei/studio-site/internal/config"
	"github.com/lexfrei/studio-site/internal/contact"
	"github.com/lexfrei/studio-site/internal/contact/intake"
	"github.com/lexfrei/studio-site/internal/content"
	"github.com/lexfrei/studio-site/internal/i18n"
	"github.com/lexfrei/studio-site/internal/metrics"
	"github.com/lexfrei/studio-site/internal/navigation"
	"github.com/lexfrei/studio-site/internal/session"
	"github.com/lexfrei/studio-site/internal/web"
)

const shutdownTimeout = 10 * time.Second

func serveCmd(load func() (config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the site",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg, ctrl.Log.WithName("studio"))
		},
	}
}

func serve(ctx context.Context, cfg config.Config, log logr.Logger) error {
	if err := i18n.Validate(); err != nil {
		return fmt.Errorf("translations: %w", err)
	}

	catalog, err := content.LoadEmbedded()
	if err != nil {
		return fmt.Errorf("content: %w", err)
	}

	deps, closeDeps, err := intakeDeps(cfg, log)
	if err != nil {
		return err
	}
	defer closeDeps()

	submitter, err := intake.New(cfg.Intake(), deps)
	if err != nil {
		return fmt.Errorf("intake: %w", err)
	}

	var store *session.Store

	m := metrics.New(func() int {
		if store == nil {
			return 0
		}

		return store.Len()
	})

	formLog := log.WithName("contact")

	store, err = session.NewStore(session.Options{
		TTL:         cfg.SessionTTL,
		MaxSessions: cfg.MaxSessions,
		Secure:      cfg.SecureCookies,
		NewNavigation: func(lang i18n.Lang) *navigation.Controller {
			return navigation.NewController(
				navigation.WithLanguage(lang),
				navigation.WithHooks(m.NavigationHook()),
			)
		},
		NewForm: func(lang i18n.Lang) *contact.Form {
			return contact.NewForm(submitter,
				contact.WithContext(ctx),
				contact.WithLanguage(lang),
				contact.WithSource(string(navigation.RouteContacts)),
				contact.WithSubmitTimeout(cfg.SubmitTimeout),
				contact.WithDisplayWindow(cfg.SuccessWindow),
				contact.WithObserver(func(tr contact.Transition) {
					m.Submission(tr)

					if tr.Phase == contact.PhaseFailed {
						formLog.Error(tr.Err, "Contact request failed", "kind", tr.Failure)
					} else {
						formLog.V(1).Info("Contact form transition", "phase", tr.Phase)
					}
				}),
			)
		},
	})
	if err != nil {
		return fmt.Errorf("session store: %w", err)
	}

	go store.Run(ctx, cfg.SessionSweep)

	srv := web.NewServer(catalog, store, m, web.Options{
		RateLimit:     cfg.RateLimit,
		RateBurst:     cfg.RateBurst,
		SecureCookies: cfg.SecureCookies,
		Logger:        log.WithName("web"),
	})

	go srv.RunLimiterSweep(ctx, cfg.SessionSweep, cfg.SessionTTL)

	httpServer := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		log.Info("Starting server", "addr", cfg.ListenAddr, "intake", cfg.IntakeBackend())

		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}

		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	log.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return httpServer.Shutdown(shutdownCtx)
}

func intakeDeps(cfg config.Config, log logr.Logger) (intake.Deps, func(), error) {
	switch cfg.IntakeBackend() {
	case intake.BackendKubernetes:
		restConfig, err := ctrl.GetConfig()
		if err != nil {
			return intake.Deps{}, nil, fmt.Errorf("kubernetes config: %w", err)
		}

		c, err := client.New(restConfig, client.Options{Scheme: newScheme()})
		if err != nil {
			return intake.Deps{}, nil, fmt.Errorf("kubernetes client: %w", err)
		}

		return intake.Deps{Client: c}, func() {}, nil
	case intake.BackendNATS:
		conn, err := nats.Connect(cfg.NATSURL,
			nats.Name("studio-site"),
			nats.MaxReconnects(-1),
			nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
				if err != nil {
					log.Error(err, "NATS disconnected")
				}
			}),
			nats.ReconnectHandler(func(conn *nats.Conn) {
				log.Info("NATS reconnected", "url", conn.ConnectedUrl())
			}),
		)
		if err != nil {
			return intake.Deps{}, nil, fmt.Errorf("nats connect: %w", err)
		}

		return intake.Deps{NATS: conn}, func() { _ = conn.Drain() }, nil
	case intake.BackendSimulated:
	}

	return intake.Deps{}, func() {}, nil
}
