// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging builds the application's structured logger.
//
// Logs are JSON lines written to a file. With no file configured every
// record is discarded, so the terminal display is never written to.
//
// # Usage
//
//	logger, closer, err := logging.New(logging.Options{File: path, Level: "debug"})
//	if err != nil {
//	    return err
//	}
//	defer closer.Close()
package logging
