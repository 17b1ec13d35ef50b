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
	"math"

	"google.golang.org/protobuf/encoding/protowire"

	"buf.build/go/lazypb/internal/debug"
)

// CheckSize reports whether offsets into b fit the uint32 occurrence
// records generated readers keep. Generated decoders call it once before
// scanning.
func CheckSize(b []byte) error {
	if uint64(len(b)) > math.MaxUint32 {
		return &DecodeError{code: errCodeTooLarge}
	}
	return nil
}

// Scanner is a cursor over a wire-format buffer, used by generated decoders
// to make a single linear pass recording where each field's bytes live.
//
// The scanner never interprets field payloads; [Scanner.Skip] advances past
// them. Decoders note [Scanner.Offset] before skipping and materialize the
// payload later from the recorded position.
type Scanner struct {
	buf []byte
	off int
}

// NewScanner returns a Scanner positioned at the start of buf.
//
// The scanner aliases buf rather than copying it.
func NewScanner(buf []byte) Scanner {
	return Scanner{buf: buf}
}

// Done reports whether the scanner has consumed the whole buffer.
func (s *Scanner) Done() bool {
	return s.off >= len(s.buf)
}

// Offset returns the scanner's position as a byte offset into the buffer.
func (s *Scanner) Offset() int {
	return s.off
}

// Tag consumes the next field tag and returns its field number and wire
// type. On return the scanner is positioned at the field's payload.
func (s *Scanner) Tag() (Number, Type, error) {
	num, typ, n := protowire.ConsumeTag(s.buf[s.off:])
	if n < 0 {
		return 0, 0, errParse(n, s.off)
	}
	debug.Log(nil, "tag", "%d:%v at %d", num, typ, s.off)
	s.off += n
	return num, typ, nil
}

// Skip consumes the payload of a field with the given number and wire type
// without interpreting it. Groups are skipped through their matching end
// marker.
func (s *Scanner) Skip(num Number, typ Type) error {
	n := protowire.ConsumeFieldValue(num, typ, s.buf[s.off:])
	if n < 0 {
		return errParse(n, s.off)
	}
	s.off += n
	return nil
}
