// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// normalize trims whitespace and trailing slashes from the upstream base
// URLs so route templates can append paths directly.
func (cfg *StructuredConfig) normalize() {
	cfg.Upstream.APIBase = strings.TrimRight(strings.TrimSpace(cfg.Upstream.APIBase), "/")
	cfg.Upstream.SheetsBase = strings.TrimRight(strings.TrimSpace(cfg.Upstream.SheetsBase), "/")
	cfg.Upstream.APIKey = strings.TrimSpace(cfg.Upstream.APIKey)
}

// validate checks that the final merged [StructuredConfig] can serve
// traffic: both backend API settings are present and every upstream base is
// an absolute URL.
func (cfg *StructuredConfig) validate() error {
	if cfg.Upstream.APIBase == "" {
		return fmt.Errorf("%w: empty upstream API base URL", ErrInvalidUpstreamConfigs)
	}
	if cfg.Upstream.APIKey == "" {
		return fmt.Errorf("%w: empty upstream API key", ErrInvalidUpstreamConfigs)
	}
	if err := validateBaseURL(cfg.Upstream.APIBase); err != nil {
		return fmt.Errorf("%w: upstream API base: %w", ErrInvalidUpstreamConfigs, err)
	}
	if err := validateBaseURL(cfg.Upstream.SheetsBase); err != nil {
		return fmt.Errorf("%w: sheets base: %w", ErrInvalidUpstreamConfigs, err)
	}
	if cfg.Upstream.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidUpstreamConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("address %q must include scheme and host", raw)
	}
	return nil
}
