// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session holds the state of one terminal session.
//
// A session is in-memory only and lives for the life of the process. It owns
// the scrollback (History), the list of submitted lines (RecallBuffer) with
// its navigation cursor, the current input line and the window display mode.
//
// # Key Types
//
//   - Entry: one scrollback record with a unique, increasing ID
//   - History: append-only scrollback that can be truncated by Clear
//   - RecallBuffer: submitted lines, navigated with RecallPrevious/RecallNext
//   - State: everything above plus session ID and display flags
//
// # Recall Navigation
//
// The cursor is -1 while not browsing. Cursor k maps to the k-th most recent
// line, so moving "up" increments it and moving "down" decrements it:
//
//	cursor, text, moved := session.RecallPrevious(cursor, buf)
package session
