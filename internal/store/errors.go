// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by the local storage layer. Callers should use
// [errors.Is] to match against these values. A missing key is never an
// error; it is reported through the ok flag of Get.
var (
	// ErrEmptyCredential is returned by Set when the credential carries no
	// token. Use Clear to drop a credential.
	ErrEmptyCredential = errors.New("credential has no token")

	// ErrUnsupportedDSN is returned when the storage DSN names a backend
	// the client cannot open.
	ErrUnsupportedDSN = errors.New("unsupported storage dsn")
)

// Low-level storage operation errors. These wrap the driver error.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when reading a value from a result row fails.
	ErrScanningRow = errors.New("failed to scan local storage row")

	// ErrRedisCommand is returned when a Redis command fails for any reason
	// other than a missing key.
	ErrRedisCommand = errors.New("redis command failed")
)
