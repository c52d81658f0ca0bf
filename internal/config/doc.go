// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation for
// the feed server and the terminal client.
//
// Configuration is assembled from several sources; for every field the first
// source that sets a non-zero value wins:
//  1. Command-line flags
//  2. Environment variables
//  3. Config file (.json, .toml, .yaml or .yml), path taken from -c/-config or CONFIG
//  4. Built-in defaults
//
// The entry points are [GetClientConfig] and [GetServerConfig]; both project
// the merged [StructuredConfig] onto a role-specific view and validate it.
package config
