// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the protontweaks command-line runtime.
//
// It dispatches the positional command to the catalog services, renders the
// result through the output printer and, for the watch command, runs the
// background catalog synchronisation workers until the context ends.
package client
