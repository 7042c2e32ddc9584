package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/babanaplo/babanaplo/internal/api"
	"github.com/babanaplo/babanaplo/internal/config"
	"github.com/babanaplo/babanaplo/internal/services"
	"github.com/babanaplo/babanaplo/internal/store"
	"github.com/babanaplo/babanaplo/internal/token"
	"github.com/babanaplo/babanaplo/pkg/logger"
)

var (
	log          *logrus.Logger
	tokenStore   *token.Store
	svcs         *services.Services
	authStore    *store.AuthStore
	babyStore    *store.BabyStore
	routineStore *store.RoutineStore

	serveMetrics bool
)

var rootCmd = &cobra.Command{
	Use:   "babanaplo",
	Short: "Command line client for the babanaplo baby tracking backend",
	Long: `babanaplo talks to the baby tracking REST backend: log in, manage
babies and inspect daily routines. The bearer token is persisted locally, so
a session survives restarts.

Configuration comes from the environment (or a .env file):

  API_URL          backend base URL, e.g. http://localhost:55363/api (required)
  API_TIMEOUT      request timeout in seconds (default 15)
  LOG_LEVEL        logrus level (default info)
  TOKEN_DB_PATH    token database location (default: OS cache dir)
  PROMETHEUS_PORT  metrics listener port for --metrics (default 9090)`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		log = logger.New(cfg.LogLevel)

		tokenStore, err = token.Open(cfg.TokenDBPath)
		if err != nil {
			return err
		}

		client := api.NewClient(cfg.APIURL, cfg.APITimeout, tokenStore, log)
		svcs = services.New(client, tokenStore, log)

		authStore = store.NewAuthStore(svcs.Auth, svcs.Profile, tokenStore, log)
		babyStore = store.NewBabyStore(svcs.Babies, log)
		routineStore = store.NewRoutineStore(svcs.Routines, babyStore, log)

		if serveMetrics {
			go func() {
				mux := http.NewServeMux()
				mux.Handle("/metrics", promhttp.Handler())
				addr := ":" + cfg.PrometheusPort
				log.Infof("metrics listening on %s", addr)
				if err := http.ListenAndServe(addr, mux); err != nil {
					log.WithError(err).Warn("metrics server stopped")
				}
			}()
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if tokenStore != nil {
			return tokenStore.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&serveMetrics, "metrics", false, "expose prometheus metrics while the command runs")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(babiesCmd)
	rootCmd.AddCommand(routineCmd)
}
