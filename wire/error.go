// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package wire

import (
	"errors"
	"fmt"
	"io"
)

const (
	errCodeOk errCode = iota
	// These match the errors in protowire.
	errCodeTruncated
	errCodeFieldNumber
	errCodeOverflow
	errCodeReserved
	errCodeEndGroup
	errCodeRecursionDepth

	errCodeTooLarge
)

type errCode int

var errs = [...]error{
	errCodeOk:             nil,
	errCodeTruncated:      io.ErrUnexpectedEOF,
	errCodeFieldNumber:    errors.New("invalid field number"),
	errCodeOverflow:       errors.New("variable length integer overflow"),
	errCodeReserved:       errors.New("cannot parse reserved wire type"),
	errCodeEndGroup:       errors.New("mismatching end group marker"),
	errCodeRecursionDepth: errors.New("exceeded maximum recursion depth"),
	errCodeTooLarge:       errors.New("buffer exceeds the 32-bit offset range"),
}

// DecodeError is an error produced while reading a wire-format buffer,
// stamped with the offset of the malformed bytes.
//
// Errors from [Scanner] and the Consume functions are always of this type.
// [DecodeError.Unwrap] exposes the underlying failure; truncated buffers
// unwrap to [io.ErrUnexpectedEOF].
type DecodeError struct {
	code   errCode
	offset int
}

// errParse converts a negative length returned by a protowire consume
// function into a [*DecodeError] at the given offset.
func errParse(n int, offset int) error {
	code := errCode(-n)
	if n >= 0 || int(code) >= len(errs) {
		code = errCodeTruncated
	}
	return &DecodeError{code: code, offset: offset}
}

// Offset returns the offset at which the error occurred.
func (e *DecodeError) Offset() int {
	return e.offset
}

// Unwrap implements error unwrapping viz [errors.Unwrap].
func (e *DecodeError) Unwrap() error {
	return errs[e.code]
}

// Error implements [error].
func (e *DecodeError) Error() string {
	return fmt.Sprintf("lazypb: decode error at offset %d/%#x: %v", e.offset, e.offset, e.Unwrap())
}
