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

package lazypb

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// camelCase converts a Protobuf identifier to CamelCase, with the same
// treatment of underscores, dots and digits as protoc-gen-go, so that names
// derived here read like the rest of the Go Protobuf ecosystem.
func camelCase(s string) string {
	var b []byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '.' && i+1 < len(s) && isASCIILower(s[i+1]):
			// Skip over '.' in ".{{lowercase}}".
		case c == '.':
			b = append(b, '_')
		case c == '_' && (i == 0 || s[i-1] == '.'):
			// Convert initial '_' to ensure we start with a capital letter.
			b = append(b, 'X')
		case c == '_' && i+1 < len(s) && isASCIILower(s[i+1]):
			// Skip over '_' in "_{{lowercase}}".
		case isASCIIDigit(c):
			b = append(b, c)
		default:
			// Assume we have a letter; if not, the shift is harmless.
			if isASCIILower(c) {
				c -= 'a' - 'A'
			}
			b = append(b, c)
			// Accept lowercase sequence that follows.
			for ; i+1 < len(s) && isASCIILower(s[i+1]); i++ {
				b = append(b, s[i+1])
			}
		}
	}
	return string(b)
}

// lowerFirst lowers the first rune of s, turning an exported spelling into
// an unexported one.
func lowerFirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 || !unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToLower(r)) + s[n:]
}

// screamingSnake converts a CamelCase type name to the SCREAMING_SNAKE
// spelling Protobuf style guides use as an enum value prefix: "OrderKind"
// becomes "ORDER_KIND".
func screamingSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) && i > 0 {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// enumValueName derives the Go constant name for an enum value: the value
// name loses the conventional ENUM_NAME_ prefix if it carries one, the rest
// converts to CamelCase, and the enum's Go name is prepended. "LEVEL_BASIC"
// of enum Level becomes "LevelBasic".
func enumValueName(goEnum, protoEnum, value string) string {
	trimmed := strings.TrimPrefix(value, screamingSnake(protoEnum)+"_")
	return goEnum + camelCase(strings.ToLower(trimmed))
}

func isASCIILower(c byte) bool {
	return 'a' <= c && c <= 'z'
}

func isASCIIDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
