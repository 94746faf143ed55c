// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package terminal is the Bubble Tea display surface: a window with a title
// bar, the quick command bar, the scrollback and the prompt line, driven by a
// commands.Interpreter. The model never renders output itself; it re-reads
// the interpreter's entries whenever a dispatch notice arrives.
package terminal
