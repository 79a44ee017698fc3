// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Default values applied when no source sets a field.
const (
	DefaultHTTPAddress     = "localhost:8080"
	DefaultGRPCAddress     = "localhost:9090"
	DefaultServerURL       = "http://localhost:8080"
	DefaultTokenIssuer     = "go-note-keeper"
	DefaultTokenDuration   = 24 * time.Hour
	DefaultURLTTL          = 15 * time.Minute
	DefaultRequestTimeout  = 30 * time.Second
	DefaultRefreshInterval = 5 * time.Minute
	DefaultNoteLimit       = 10
	DefaultMaxUploadSize   = 10 << 20
	DefaultDSN             = "notes.db"
	DefaultBinaryDataDir   = "data"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			URLTTL:        DefaultURLTTL,
			MaxUploadSize: DefaultMaxUploadSize,
			NoteLimit:     DefaultNoteLimit,
		},
		Storage: Storage{
			DB:    DB{DSN: DefaultDSN},
			Files: Files{BinaryDataDir: DefaultBinaryDataDir},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			GRPCAddress:    DefaultGRPCAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultServerURL,
			RequestTimeout: DefaultRequestTimeout,
		},
		Workers: Workers{RefreshInterval: DefaultRefreshInterval},
	}
}
