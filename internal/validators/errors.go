// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrValidation wraps every rule violation. The wrapped message names
	// the offending field.
	ErrValidation = errors.New("validation failed")
)
