// Copyright (C) MongoDB, Inc. 2026-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bytecodec

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrEmptyInput is returned by the hex functions when the source is nil or has
// zero length. The accompanying value is always the zero value ("" or nil).
var ErrEmptyInput = errors.New("bytecodec: empty input")

// ErrInvalidLength indicates a hex string that does not consist of complete
// two-character groups.
var ErrInvalidLength = errors.New("bytecodec: invalid hex string length")

// ErrOddLength indicates a hex string with an odd number of characters. It
// matches ErrInvalidLength under errors.Is.
var ErrOddLength = &lengthError{msg: "bytecodec: odd length hex string"}

// ErrOutOfBounds indicates a buffer that does not hold four bytes at the
// requested offset.
var ErrOutOfBounds = errors.New("bytecodec: offset out of bounds")

type lengthError struct {
	msg string
}

func (e *lengthError) Error() string { return e.msg }

// Is makes the error match ErrInvalidLength.
func (e *lengthError) Is(target error) bool {
	return target == ErrInvalidLength
}

// InvalidByteError describes a character in a hex string that is not a
// hexadecimal digit. It is only returned by DecodeHex.
type InvalidByteError struct {
	Byte   byte
	Offset int
}

func (e InvalidByteError) Error() string {
	return fmt.Sprintf("bytecodec: invalid hex byte %#U at offset %d", rune(e.Byte), e.Offset)
}
