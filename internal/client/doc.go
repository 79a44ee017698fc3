// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It runs the terminal UI on top of the client services and the background
// note refresh, and signs the user out when the process exits.
package client
