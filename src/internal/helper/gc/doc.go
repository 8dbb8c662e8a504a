// Copyright (c) 2025 Doom4535 All rights reserved.
//
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// Package gc provides reusable byte buffer pooling to reduce garbage collection overhead.
// It abstracts the [bytebufferpool] library to provide a consistent interface for
// buffer management across the application, particularly for console log line
// assembly and scenario file loading where allocations would otherwise scale
// with message volume.
//
// [bytebufferpool]: https://github.com/valyala/bytebufferpool
package gc
