// Copyright (c) 2025 Doom4535 All rights reserved.
//
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

package gc

import (
	"io"

	"github.com/valyala/bytebufferpool"
)

// Buffer defines the interface for a reusable byte buffer.
// It abstracts the [bytebufferpool.ByteBuffer] type to avoid direct dependencies.
type Buffer interface {
	Write(p []byte) (int, error)
	WriteString(s string) (int, error)
	WriteByte(c byte) error
	WriteTo(w io.Writer) (int64, error)
	ReadFrom(r io.Reader) (int64, error)
	Bytes() []byte
	String() string
	Len() int
	Set(p []byte)
	SetString(s string)
	Reset()
}

// Pool defines the interface for buffer pooling.
// It abstracts the [bytebufferpool.Pool] type to avoid direct dependencies.
//
// Pool implementations must be safe for concurrent use by multiple goroutines.
type Pool interface {
	Get() Buffer
	Put(b Buffer)
}

// pool wraps [bytebufferpool.Pool] to implement Pool interface.
type pool struct{ p *bytebufferpool.Pool }

// Get returns a buffer from the pool.
func (p *pool) Get() Buffer { return p.p.Get() }

// Put returns a buffer to the pool.
func (p *pool) Put(b Buffer) {
	if buf, ok := b.(*bytebufferpool.ByteBuffer); ok {
		p.p.Put(buf)
	}
}

// Default is the default buffer pool used for efficient memory reuse in I/O operations.
//
// Example usage for assembling a console log line before a single Write:
//
//	// Get a buffer from the pool
//	buf := gc.Default.Get()
//
//	defer func() {
//		buf.Reset()         // Reset the buffer to prevent data leaks
//		gc.Default.Put(buf) // Return the buffer to the pool for reuse
//	}()
//
//	buf.WriteByte('[')
//	buf.WriteString(tag)
//	buf.WriteString("]: ")
//	fmt.Fprintf(buf, format, args...)
//	buf.WriteByte('\n')
//
//	// One Write per line keeps concurrent output from interleaving.
//	w.Write(buf.Bytes())
//
// Example usage for reading a scenario file without a throwaway intermediate slice:
//
//	// Get a buffer from the pool
//	buf := gc.Default.Get()
//
//	defer func() {
//		buf.Reset()         // Reset the buffer to prevent data leaks
//		gc.Default.Put(buf) // Return the buffer to the pool for reuse
//	}()
//
//	file, err := os.Open(path)
//	if err != nil {
//		return nil, fmt.Errorf("opening scenario: %w", err)
//	}
//	defer file.Close()
//
//	if _, err := buf.ReadFrom(file); err != nil {
//		return nil, fmt.Errorf("reading scenario: %w", err)
//	}
//
//	if err := yaml.Unmarshal(buf.Bytes(), &scenario); err != nil {
//		return nil, fmt.Errorf("parsing scenario: %w", err)
//	}
//
// Note: Both examples follow the same lifecycle. Get a buffer, defer the reset
// and return, and never touch the buffer after Put. Reuse matters most in
// high-rate logging, where a fresh allocation per line would dominate the
// garbage collector's workload.
var Default Pool = &pool{p: &bytebufferpool.Pool{}}
