// Copyright (C) MongoDB, Inc. 2026-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package bytecodec contains stateless helpers for converting between bytes,
// hexadecimal strings and 32-bit integers.
//
// Hex encoding always produces uppercase digits, two per byte, high nibble
// first. There are three decoders:
//
//   - DecodeHex is strict and is the one new code should use. It rejects odd
//     length strings with ErrOddLength and non-hex characters with an
//     InvalidByteError.
//   - DecodeHexLenient pads odd length input with a leading '0' and never
//     validates characters.
//   - DecodeHexLegacy rejects odd length input with ErrInvalidLength but maps
//     non-hex characters to a nibble of -1 instead of failing.
//
// The lenient and legacy decoders reproduce the byte-for-byte output of older
// decoders, including for malformed input, so existing data decodes the same
// way it always has.
//
// Integer packing is always explicit about byte order:
//
//	b := bytecodec.IntToBytesBE(1)          // [0x00 0x00 0x00 0x01]
//	v, err := bytecodec.BytesToIntBE(b, 0)  // 1, nil
//
// The Fill* and BytesToInt* functions take an offset into a caller-owned
// buffer and return ErrOutOfBounds rather than panicking when the buffer is too
// short.
//
// Empty input to the hex functions yields the zero value together with the
// sentinel ErrEmptyInput.
//
// All functions are safe for concurrent use. The Fill* functions write only to
// the buffer they are given; callers writing overlapping regions from several
// goroutines must synchronize themselves.
package bytecodec
