// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for termfolio.
//
// # Configuration Precedence
//
// Settings are resolved from (highest first):
//   - Command-line flags (applied by the cli package)
//   - Environment variables (TERMFOLIO_*), including those from ./.env
//   - ~/.termfolio/config.toml (or --config PATH)
//   - Built-in defaults
//
// # Usage
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.PromptString()) // mozammil@portfolio:~$
package config
