// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2025 Aleksei Sviridkin

// Command studio runs the studio site and its contact request controller.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"k8s.io/apimachinery/pkg/runtime"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"

	sitev1alpha1 "github.com/lexfrei/studio-site/api/v1alpha1"
	"github.com/lexfrei/studio-site/internal/config"
	"github.com/lexfrei/studio-site/internal/content"
	"github.com/lexfrei/studio-site/internal/i18n"
)

// Set by the linker.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:           "studio",
		Short:         "Studio site server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Optional dotenv file with STUDIO_* variables")

	load := func() (config.Config, error) {
		cfg, err := config.Load(envFile)
		if err != nil {
			return config.Config{}, err
		}

		ctrl.SetLogger(zap.New(zap.UseDevMode(cfg.DevLogging)))

		return cfg, nil
	}

	cmd.AddCommand(
		serveCmd(load),
		controllerCmd(load),
		checkCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, _ []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "studio %s (%s)\n", version, commit)
			},
		},
	)

	return cmd
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-translations",
		Short: "Validate translation tables and site content",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := i18n.Validate(); err != nil {
				return fmt.Errorf("translations: %w", err)
			}

			if _, err := content.LoadEmbedded(); err != nil {
				return fmt.Errorf("content: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "ok")

			return nil
		},
	}
}

func newScheme() *runtime.Scheme {
	scheme := runtime.NewScheme()

	utilruntime.Must(clientgoscheme.AddToScheme(scheme))
	utilruntime.Must(sitev1alpha1.AddToScheme(scheme))

	return scheme
}
