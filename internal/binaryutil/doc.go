// Copyright (C) MongoDB, Inc. 2026-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package binaryutil provides functions for reading and writing 32-bit
// integers to and from byte slices in either byte order. It backs the
// endian operations of package bytecodec.
//
// The Read* functions return the value, the remaining bytes, and a boolean
// indicating whether there were enough bytes. A boolean is used instead of an
// error because any error would be the same: not enough bytes. Callers that
// need a descriptive error wrap the boolean themselves.
//
// The Put* functions do no bounds checking beyond what the runtime does. The
// caller must ensure dst has at least offset+4 bytes.
//
// Signed values are assembled with manual bit-shifting rather than
// encoding/binary so that no signed/unsigned conversion is needed. Every byte
// is widened from an unsigned byte before it is shifted, so storage of
// negative values never sign-extends into neighbouring bytes.
package binaryutil
