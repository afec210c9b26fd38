// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the borrower search client runtime.
//
// It wires the search adapter, the client services and the terminal UI into
// a single process lifecycle.
package client
