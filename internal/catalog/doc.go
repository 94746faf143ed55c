// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package catalog holds the portfolio content document.
//
// A Catalog is loaded once at startup and never mutated. The default
// document is embedded in the binary; an alternate YAML or JSON document can
// be supplied by path. List-valued fields keep their authored order, which is
// the order commands render them in.
//
// # Usage
//
//	cat, err := catalog.LoadFile(path) // or catalog.Default()
//	if err != nil {
//	    return err
//	}
//	if err := cat.Validate(); err != nil {
//	    // err is a catalog.ValidationErrors
//	}
package catalog
