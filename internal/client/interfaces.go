// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client is a runnable note client.
type Client interface {
	// Run blocks until the user quits or the process is signalled.
	Run() error
}
