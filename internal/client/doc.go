// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the link client application runtime.
//
// It wires the WebSocket connection client, the resilient HTTP adapter, the
// durable offline queue, and the background replay worker into a single
// process lifecycle.
package client
