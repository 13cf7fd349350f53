// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package apitest runs an in-memory portal API for tests. It speaks the
// same JSON as the real API: bcrypt password checks, HS256 bearer tokens,
// a fixed TOTP code per account and an anti-abuse token minting endpoint.
//
// Typical use:
//
//	api := apitest.New()
//	srv := httptest.NewServer(api.Handler())
//	defer srv.Close()
//	api.AddUser(models.User{Username: "alex"}, "secret", "")
package apitest
