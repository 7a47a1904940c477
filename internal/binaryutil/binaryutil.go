// Copyright (C) MongoDB, Inc. 2026-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package binaryutil

// Size is the number of bytes in an encoded int32.
const Size = 4

// AppendI32 appends an int32 to dst in little-endian byte order.
func AppendI32(dst []byte, x int32) []byte {
	return append(dst,
		byte(x),
		byte(x>>8),
		byte(x>>16),
		byte(x>>24),
	)
}

// AppendI32BE appends an int32 to dst in big-endian byte order.
func AppendI32BE(dst []byte, x int32) []byte {
	return append(dst,
		byte(x>>24),
		byte(x>>16),
		byte(x>>8),
		byte(x),
	)
}

// ReadI32 reads a 32-bit little-endian int32 from src returning the value,
// remaining bytes, and ok flag.
func ReadI32(src []byte) (int32, []byte, bool) {
	if len(src) < Size {
		return 0, src, false
	}

	_ = src[3] // bounds check hint to compiler

	value := int32(src[0]) |
		int32(src[1])<<8 |
		int32(src[2])<<16 |
		int32(src[3])<<24

	return value, src[4:], true
}

// ReadI32BE reads a 32-bit big-endian int32 from src returning the value,
// remaining bytes, and ok flag.
func ReadI32BE(src []byte) (int32, []byte, bool) {
	if len(src) < Size {
		return 0, src, false
	}

	_ = src[3] // bounds check hint to compiler

	value := int32(src[0])<<24 |
		int32(src[1])<<16 |
		int32(src[2])<<8 |
		int32(src[3])

	return value, src[4:], true
}

// PutI32 writes a little-endian int32 into dst starting at offset. Caller must
// ensure capacity.
func PutI32(dst []byte, offset int, value int32) {
	dst[offset] = byte(value)
	dst[offset+1] = byte(value >> 8)
	dst[offset+2] = byte(value >> 16)
	dst[offset+3] = byte(value >> 24)
}

// PutI32BE writes a big-endian int32 into dst starting at offset. Caller must
// ensure capacity.
func PutI32BE(dst []byte, offset int, value int32) {
	dst[offset] = byte(value >> 24)
	dst[offset+1] = byte(value >> 16)
	dst[offset+2] = byte(value >> 8)
	dst[offset+3] = byte(value)
}

// InBounds reports whether a Size-byte value starting at offset fits within a
// buffer of length n.
func InBounds(n, offset int) bool {
	return offset >= 0 && offset <= n-Size
}
