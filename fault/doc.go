// SPDX-License-Identifier: ISC
// Copyright (c) 2026 Coursemark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches
//
// The error class determines how a caller should treat a failure:
// overflow and process errors are fatal to the call, while not-found,
// length and authorization errors are plain rejections that a caller
// may handle and retry with different arguments.
package fault
