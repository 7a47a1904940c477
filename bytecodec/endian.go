// Copyright (C) MongoDB, Inc. 2026-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bytecodec

import (
	"github.com/ikmak/iutil/internal/binaryutil"
	"github.com/pkg/errors"
)

// IntToBytesLE returns v as four bytes, least significant byte first.
func IntToBytesLE(v int32) []byte {
	return binaryutil.AppendI32(make([]byte, 0, binaryutil.Size), v)
}

// IntToBytesBE returns v as four bytes, most significant byte first.
func IntToBytesBE(v int32) []byte {
	return binaryutil.AppendI32BE(make([]byte, 0, binaryutil.Size), v)
}

// AppendIntLE appends v to dst in little-endian byte order and returns the
// extended buffer.
func AppendIntLE(dst []byte, v int32) []byte { return binaryutil.AppendI32(dst, v) }

// AppendIntBE appends v to dst in big-endian byte order and returns the
// extended buffer.
func AppendIntBE(dst []byte, v int32) []byte { return binaryutil.AppendI32BE(dst, v) }

// FillIntLE writes v into buf[offset:offset+4] in little-endian byte order. It
// returns ErrOutOfBounds, leaving buf untouched, when offset is negative or
// buf is too short.
func FillIntLE(v int32, buf []byte, offset int) error {
	if !binaryutil.InBounds(len(buf), offset) {
		return outOfBounds("FillIntLE", len(buf), offset)
	}
	binaryutil.PutI32(buf, offset, v)
	return nil
}

// FillIntBE writes v into buf[offset:offset+4] in big-endian byte order. It
// returns ErrOutOfBounds, leaving buf untouched, when offset is negative or
// buf is too short.
func FillIntBE(v int32, buf []byte, offset int) error {
	if !binaryutil.InBounds(len(buf), offset) {
		return outOfBounds("FillIntBE", len(buf), offset)
	}
	binaryutil.PutI32BE(buf, offset, v)
	return nil
}

// BytesToIntLE reads a little-endian int32 from buf starting at offset. It is
// the inverse of IntToBytesLE and FillIntLE.
func BytesToIntLE(buf []byte, offset int) (int32, error) {
	if !binaryutil.InBounds(len(buf), offset) {
		return 0, outOfBounds("BytesToIntLE", len(buf), offset)
	}
	v, _, _ := binaryutil.ReadI32(buf[offset:])
	return v, nil
}

// BytesToIntBE reads a big-endian int32 from buf starting at offset. It is the
// inverse of IntToBytesBE and FillIntBE.
func BytesToIntBE(buf []byte, offset int) (int32, error) {
	if !binaryutil.InBounds(len(buf), offset) {
		return 0, outOfBounds("BytesToIntBE", len(buf), offset)
	}
	v, _, _ := binaryutil.ReadI32BE(buf[offset:])
	return v, nil
}

func outOfBounds(op string, length, offset int) error {
	return errors.Wrapf(ErrOutOfBounds, "%s: need %d bytes at offset %d, buffer has %d",
		op, binaryutil.Size, offset, length)
}
