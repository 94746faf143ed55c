// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared by the renderers and the CLI.
//
// String Utilities:
//   - StringWidth, PadRight, TruncateWidth: display-width aware layout
//   - TruncateRunes: UTF-8 safe truncation with ellipsis
//
// File Operations:
//   - AtomicWriteFile: crash-safe file writing with fsync
package util
