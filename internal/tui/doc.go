// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal interface of the borrower search
// client with Bubble Tea.
//
// Each configured search variant is rendered by its own [SearchFormModel].
// [RootModel] routes messages to the visible form, switches between variants
// and shows the build information overlay. Network calls run inside tea.Cmd
// goroutines and report back with messages; the forms read everything they
// display from their variant's shared search state.
package tui
