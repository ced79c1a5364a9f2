// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoHandlerIsProvided = errors.New("no http handler is provided")
	errNoAddressIsProvided = errors.New("no http address is provided")
)
