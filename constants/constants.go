// SPDX-License-Identifier: ISC
// Copyright (c) 2026 Coursemark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package constants

// the maximum number of courses a single account can own
const (
	MaxCourseOwned = 100
)
