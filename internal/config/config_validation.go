// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validate checks the merged [StructuredConfig]. Source-level values may be
// partial; defaults are applied in the client view, so only the shape of
// values that are present is checked here.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}
	if cfg.Workers.RefreshInterval < 0 {
		return fmt.Errorf("%w: negative refresh interval", ErrInvalidWorkerConfigs)
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if strings.Contains(cfg.Storage.DSN, ":memory:") {
		return fmt.Errorf("%w: in-memory storage does not survive restarts", ErrInvalidStorageConfigs)
	}

	groups := []struct {
		value any
		err   error
	}{
		{cfg.App, ErrInvalidAppConfigs},
		{cfg.Adapter, ErrInvalidAdapterConfigs},
		{cfg.Storage, ErrInvalidStorageConfigs},
		{cfg.Captcha, ErrInvalidCaptchaConfigs},
		{cfg.Workers, ErrInvalidWorkerConfigs},
	}
	for _, g := range groups {
		if err := validate.Struct(g.value); err != nil {
			var ve validator.ValidationErrors
			if errors.As(err, &ve) {
				return fmt.Errorf("%w: %s", g.err, describe(ve))
			}
			return fmt.Errorf("%w: %v", g.err, err)
		}
	}

	return nil
}

func describe(ve validator.ValidationErrors) string {
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required", "required_without":
			msgs = append(msgs, field+" is required")
		case "gt":
			msgs = append(msgs, field+" must be positive")
		case "url":
			msgs = append(msgs, field+" must be a valid url")
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", field, fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed validation (%s)", field, fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}
