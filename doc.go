// Copyright ©2024 The GUDA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package convref is a reference model and comparator for a 2D
// convolution accelerator.
//
// Given the raw input matrix, the raw kernel and a dump of the
// accelerator's output memory, convref recomputes every sampled output
// with a software model of the accelerator and reports where the dump
// disagrees:
//
//   - Encoding decodes kernel bytes (raw, unsigned Q0.8, signed Q0.7,
//     N-bit two's complement)
//   - Evaluate and Expected compute the multiply-accumulate at one
//     coordinate under a border policy and rounding rule
//   - Comparator masks expected values to a byte, records mismatches and
//     aborts once the error cap is reached
//   - Check drives the row-major, strided scan
//
// The scan is sequential and deterministic. Only the low byte of each
// accumulated value is compared, matching the accelerator's 8-bit output.
package convref
