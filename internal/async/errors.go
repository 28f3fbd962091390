// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package async

import "errors"

var (
	ErrPanicked = errors.New("deferred work panicked")
)
