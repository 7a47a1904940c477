// Copyright (C) MongoDB, Inc. 2026-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bytecodec

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestConcurrentUse(t *testing.T) {
	const workers = 16
	const iterations = 1000

	// Each worker owns a disjoint 4-byte region of the shared buffer.
	shared := make([]byte, workers*4)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			for i := 0; i < iterations; i++ {
				v := int32(w<<24 | i)

				src := IntToBytesBE(v)
				encoded, err := EncodeHex(src)
				if err != nil {
					return err
				}
				decoded, err := DecodeHex(encoded)
				if err != nil {
					return err
				}
				if !bytes.Equal(src, decoded) {
					return fmt.Errorf("worker %d: hex round-trip of %x returned %x", w, src, decoded)
				}

				if err := FillIntLE(v, shared, w*4); err != nil {
					return err
				}
				got, err := BytesToIntLE(shared, w*4)
				if err != nil {
					return err
				}
				if got != v {
					return fmt.Errorf("worker %d: read back %d, want %d", w, got, v)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
