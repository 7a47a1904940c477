// Copyright (C) MongoDB, Inc. 2026-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bytecodec

// ByteToUnsignedInt returns b as an int in the range [0, 255].
func ByteToUnsignedInt(b byte) int { return int(b) }

// ByteToSignedInt returns b interpreted as a two's-complement signed byte, in
// the range [-128, 127].
func ByteToSignedInt(b byte) int { return int(int8(b)) }

// IntToByte returns the low 8 bits of v. Values outside [0, 255] are
// truncated, not rejected; callers that need range checking must do it
// themselves.
func IntToByte(v int) byte { return byte(v) }

// IsEmpty reports whether b is nil or has zero length.
func IsEmpty(b []byte) bool { return len(b) == 0 }
