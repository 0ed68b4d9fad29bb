// Package connection manages which backend the register talks to: a local
// LAN server or the online one.
package connection

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/samcodingcoach/toko2025/internal/api"
	"github.com/samcodingcoach/toko2025/internal/prefs"
)

// Service validates candidate server URLs and persists the selection.
type Service struct {
	prefs    *prefs.Store
	validate *validator.Validate
	log      logrus.FieldLogger
	timeout  time.Duration
}

// NewService builds the connection service. The timeout bounds the probe of
// a candidate server.
func NewService(store *prefs.Store, timeout time.Duration, log logrus.FieldLogger) *Service {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Service{prefs: store, validate: validator.New(), log: log, timeout: timeout}
}

// Probe checks that a base URL points at a live, protocol-speaking server.
func (s *Service) Probe(ctx context.Context, baseURL string) error {
	if err := s.validate.Var(baseURL, "required,url"); err != nil {
		return fmt.Errorf("invalid server url %q: %w", baseURL, err)
	}
	client := api.NewClient(baseURL, &http.Client{Timeout: s.timeout}, s.log)
	if err := client.Ping(ctx); err != nil {
		return fmt.Errorf("server %s not answering: %w", baseURL, err)
	}
	return nil
}

// Select probes the chosen URL and, only on success, saves the whole
// network configuration. A failed probe leaves the previous selection
// untouched.
func (s *Service) Select(ctx context.Context, cfg prefs.NetworkConfig) error {
	if err := s.Probe(ctx, cfg.SelectedURL); err != nil {
		return err
	}
	if err := s.prefs.SaveNetworkConfig(cfg); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{
		"server": cfg.SelectedURL,
		"type":   cfg.NetworkType,
	}).Info("server selection saved")
	return nil
}

// Current reports the saved configuration.
func (s *Service) Current() prefs.NetworkConfig {
	return s.prefs.NetworkConfig()
}
