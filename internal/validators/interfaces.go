// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for the note domain.
//
// Rules are declared as `validate` struct tags on the models and enforced
// with go-playground/validator. Custom tags:
//   - notblank: the string is not empty after trimming white space;
//   - objectkey: the string is a single path segment usable as an object key;
//   - mediapath: the string is a well-formed media/{identityId}/{key} path.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to the named struct fields.
	Validate(context.Context, any, ...string) error
}
