// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package tock

// Updater is the interface used by the owner of a long-running operation
// to report its progress.
type Updater interface {
	// UpdateCount supplies the current progress count. Counts are expected
	// to be nondecreasing, but this is not enforced.
	UpdateCount(int64)
}
