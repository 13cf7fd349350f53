// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"time"
)

// ParseFlags parses the client command-line flags from args (without the
// program name).
//
// Flags:
//
//	-a api address, URL or host:port
//	-request-timeout request timeout (e.g., "15s")
//	-d storage DSN (SQLite file path or redis:// URL)
//	-origin storage origin scope
//	-log-level minimum log level
//	-captcha-url anti-abuse token mint endpoint
//	-captcha-site-key site key sent to the mint endpoint
//	-captcha-token static anti-abuse token
//	-refresh-interval profile revalidation interval (e.g., "5m")
//	-metrics-file metrics textfile path
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("portal-client", flag.ContinueOnError)

	var (
		address         string
		requestTimeout  time.Duration
		dsn             string
		origin          string
		logLevel        string
		captchaURL      string
		captchaSiteKey  string
		captchaToken    string
		refreshInterval time.Duration
		metricsFile     string
		jsonConfigPath  string
	)

	fs.StringVar(&address, "a", "", "API address")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	fs.StringVar(&dsn, "d", "", "Storage DSN")
	fs.StringVar(&origin, "origin", "", "Storage origin scope")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&captchaURL, "captcha-url", "", "Anti-abuse token mint URL")
	fs.StringVar(&captchaSiteKey, "captcha-site-key", "", "Anti-abuse site key")
	fs.StringVar(&captchaToken, "captcha-token", "", "Static anti-abuse token")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Profile revalidation interval (e.g., 5m)")
	fs.StringVar(&metricsFile, "metrics-file", "", "Metrics textfile path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Origin:   origin,
			LogLevel: logLevel,
		},
		Adapter: Adapter{
			HTTPAddress:    address,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{DSN: dsn},
		Captcha: Captcha{
			MintURL:     captchaURL,
			SiteKey:     captchaSiteKey,
			StaticToken: captchaToken,
		},
		Workers:      Workers{RefreshInterval: refreshInterval},
		Metrics:      Metrics{TextfilePath: metricsFile},
		JSONFilePath: jsonConfigPath,
	}, nil
}
