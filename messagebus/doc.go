// SPDX-License-Identifier: ISC
// Copyright (c) 2026 Coursemark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - a fire-and-forget queue of catalogue events
//
// events are emitted only after the underlying transaction commits,
// so every event on the queue refers to durable state; the consumer
// may still miss events if it falls behind, dropped messages are
// merely counted
package messagebus
