// Copyright (C) MongoDB, Inc. 2026-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bytecodec

import (
	"bytes"
	"testing"
	"unicode/utf16"
)

func FuzzHexRoundTrip(f *testing.F) {
	f.Add([]byte{0x00, 0xa8})
	f.Add([]byte{0xff})
	f.Add([]byte("hello, world"))

	f.Fuzz(func(t *testing.T, data []byte) {
		encoded, err := EncodeHex(data)
		if len(data) == 0 {
			if err != ErrEmptyInput {
				t.Fatalf("EncodeHex(empty) error = %v, want ErrEmptyInput", err)
			}
			return
		}
		if err != nil {
			t.Fatal("failed to encode", err)
		}
		if len(encoded) != 2*len(data) {
			t.Fatalf("len(EncodeHex(%x)) = %d, want %d", data, len(encoded), 2*len(data))
		}

		decoded, err := DecodeHex(encoded)
		if err != nil {
			t.Fatal("failed to decode", err)
		}
		if !bytes.Equal(data, decoded) {
			t.Fatalf("round-trip mismatch: got %x, want %x", decoded, data)
		}
	})
}

func FuzzDecodeHexLenient(f *testing.F) {
	f.Add("A")
	f.Add("00A8")
	f.Add("zz9")
	f.Add("1é")

	f.Fuzz(func(t *testing.T, s string) {
		got, err := DecodeHexLenient(s)
		if s == "" {
			if err != ErrEmptyInput {
				t.Fatalf("DecodeHexLenient(\"\") error = %v, want ErrEmptyInput", err)
			}
			return
		}
		if err != nil {
			t.Fatal("lenient decode failed", err)
		}
		if want := (len(utf16.Encode([]rune(s))) + 1) / 2; len(got) != want {
			t.Fatalf("len(DecodeHexLenient(%q)) = %d, want %d", s, len(got), want)
		}

		// Anything the strict decoder accepts decodes identically.
		if strict, err := DecodeHex(s); err == nil && !bytes.Equal(strict, got) {
			t.Fatalf("DecodeHex(%q) = %x, DecodeHexLenient = %x", s, strict, got)
		}
	})
}

func FuzzEndianRoundTrip(f *testing.F) {
	f.Add(int32(0))
	f.Add(int32(1))
	f.Add(int32(-1))

	f.Fuzz(func(t *testing.T, v int32) {
		le, err := BytesToIntLE(IntToBytesLE(v), 0)
		if err != nil || le != v {
			t.Fatalf("LE round-trip of %d: got %d, %v", v, le, err)
		}
		be, err := BytesToIntBE(IntToBytesBE(v), 0)
		if err != nil || be != v {
			t.Fatalf("BE round-trip of %d: got %d, %v", v, be, err)
		}
	})
}
