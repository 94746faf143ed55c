// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

// NotBrowsing is the cursor value when the user is not navigating recall.
const NotBrowsing = -1

// RecallBuffer is the ordered list of submitted non-empty lines, oldest first.
type RecallBuffer []string

// RecallPrevious moves the cursor one step toward the oldest line.
// At the oldest line it is a no-op and moved is false.
func RecallPrevious(cursor int, buf RecallBuffer) (newCursor int, text string, moved bool) {
	if cursor < NotBrowsing {
		cursor = NotBrowsing
	}
	if cursor >= len(buf)-1 {
		return cursor, "", false
	}
	newCursor = cursor + 1
	return newCursor, buf[len(buf)-1-newCursor], true
}

// RecallNext moves the cursor one step toward the newest line. Stepping past
// the newest line returns to NotBrowsing with empty text. When not browsing
// it is a no-op.
func RecallNext(cursor int, buf RecallBuffer) (newCursor int, text string, moved bool) {
	switch {
	case cursor > len(buf):
		return cursor, "", false
	case cursor > 0:
		newCursor = cursor - 1
		return newCursor, buf[len(buf)-1-newCursor], true
	case cursor == 0:
		return NotBrowsing, "", true
	default:
		return cursor, "", false
	}
}
