// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client wires the terminal client's lifecycle: the login flow, the
// chat and logout around them. The screens themselves live in package tui.
package client
