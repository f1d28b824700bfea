// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2025 Aleksei Sviridkin

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/healthz"
	metricsserver "sigs.k8s.io/controller-runtime/pkg/metrics/server"

	"github.com/lexfrei/studio-site/internal/config"
	"github.com/lexfrei/studio-site/internal/controller"
)

func controllerCmd(load func() (config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "controller",
		Short: "Run the ContactRequest controller",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}

			return runController(cfg)
		},
	}
}

func runController(cfg config.Config) error {
	log := ctrl.Log.WithName("setup")
	scheme := newScheme()

	mgr, err := ctrl.NewManager(ctrl.GetConfigOrDie(), ctrl.Options{
		Scheme:                 scheme,
		Metrics:                metricsserver.Options{BindAddress: cfg.ControllerMetrics},
		HealthProbeBindAddress: cfg.ControllerProbes,
		LeaderElection:         cfg.LeaderElection,
		LeaderElectionID:       cfg.LeaderElectionName,
	})
	if err != nil {
		return fmt.Errorf("create manager: %w", err)
	}

	reconciler := &controller.ContactRequestReconciler{
		Client:    mgr.GetClient(),
		Scheme:    mgr.GetScheme(),
		Retention: cfg.Retention,
	}

	if err := reconciler.SetupWithManager(mgr); err != nil {
		return fmt.Errorf("setup controller: %w", err)
	}

	if err := mgr.AddHealthzCheck("healthz", healthz.Ping); err != nil {
		return fmt.Errorf("add health check: %w", err)
	}

	if err := mgr.AddReadyzCheck("readyz", healthz.Ping); err != nil {
		return fmt.Errorf("add ready check: %w", err)
	}

	log.Info("Starting manager", "retention", cfg.Retention)

	if err := mgr.Start(ctrl.SetupSignalHandler()); err != nil {
		return fmt.Errorf("run manager: %w", err)
	}

	return nil
}
