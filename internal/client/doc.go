// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the local credential store, the API transport, the session
// services, the terminal UI and the background session refresh into a single
// process lifecycle.
package client
