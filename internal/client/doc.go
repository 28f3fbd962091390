// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal client process lifecycle.
//
// It runs the terminal UI under a context that is cancelled on SIGTERM,
// SIGINT or SIGQUIT.
package client
