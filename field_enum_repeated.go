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
	"fmt"

	"buf.build/go/lazypb/internal/debug"
)

// enumRepeatedGen generates a repeated enum field.
//
// The writer side is a plain slice of the enum type, encoded by cardinality:
// nothing when empty, one unpacked varint record for a single element, one
// packed record otherwise. The reader side records each occurrence's byte
// offset and wire type during the decode scan and defers all value work to
// the accessor, which replays the recorded locations against the source
// buffer.
type enumRepeatedGen struct {
	field Field

	// protoType is the qualified Protobuf name of the element type, for
	// doc comments.
	protoType string
	// goType is the generated Go name of the element type; empty until
	// resolve runs.
	goType string
	// reader is the Go name of the reader type accessors hang off of.
	reader string

	// The derived identifiers, reserved at construction and mutually
	// distinct from then on.
	writerName string // writer struct field holding the values
	constShort string // member spelling of the field number constant
	constName  string // file-scope constant spelling actually emitted
	getterName string // accessor method
	readerBase string // stem the reader storage fields derive from
	offsName   string // recorded byte offsets field
	wiresName  string // recorded wire types field
}

// newEnumRepeatedGen derives and reserves the field's identifiers. The
// derivation order is fixed, so the "_" fallbacks a collision forces are
// deterministic across runs.
//
// readerBase itself never appears in emitted code; it is reserved so that
// the storage fields derived from it cannot collide with a later field's
// spellings, and it is the stem both of them extend.
func newEnumRepeatedGen(f Field, ctx *genContext) *enumRepeatedGen {
	g := &enumRepeatedGen{
		field:     f,
		protoType: qualify(ctx.pkg, f.Enum),
		reader:    ctx.goReader,
	}

	camel := camelCase(f.Name)
	g.writerName = ctx.members.Reserve(camel)
	g.constShort = ctx.members.Reserve(lowerFirst(camel) + "Wire")
	g.constName = ctx.names.Reserve(lowerFirst(ctx.goMsg) + camel + "Wire")
	g.getterName = ctx.members.Reserve("Get" + camel)
	g.readerBase = ctx.members.Reserve(lowerFirst(camel))
	g.offsName = ctx.members.Reserve(g.readerBase + "Offs")
	g.wiresName = ctx.members.Reserve(g.readerBase + "Wires")

	debug.Log([]any{"%s.%s", ctx.msg, f.Name}, "derive",
		"%s %s %s %s %s %s %s",
		g.writerName, g.constShort, g.constName, g.getterName,
		g.readerBase, g.offsName, g.wiresName)
	return g
}

func (g *enumRepeatedGen) resolve(goType string) {
	g.goType = goType
}

// elem returns the resolved element type name, enforcing the resolve-first
// contract.
func (g *enumRepeatedGen) elem() string {
	g.mustResolve()
	return g.goType
}

func (g *enumRepeatedGen) mustResolve() {
	if g.goType == "" {
		panic(fmt.Sprintf("lazypb: internal: field %s emitted before resolve", g.field.Name))
	}
}

func (g *enumRepeatedGen) wireConst() string {
	return fmt.Sprintf("%s = wire.Number(%d)", g.constName, g.field.Number)
}

func (g *enumRepeatedGen) writerField() []string {
	return []string{
		fmt.Sprintf("// %s holds the values of the repeated %s field %s.", g.writerName, g.protoType, g.field.Name),
		fmt.Sprintf("%s []%s", g.writerName, g.elem()),
	}
}

func (g *enumRepeatedGen) sizeStmt() string {
	g.mustResolve()
	return fmt.Sprintf("n += wire.SizeEnums(%s, w.%s)", g.constName, g.writerName)
}

func (g *enumRepeatedGen) encodeStmt() string {
	g.mustResolve()
	return fmt.Sprintf("b = wire.AppendEnums(b, %s, w.%s)", g.constName, g.writerName)
}

func (g *enumRepeatedGen) readerFields() []string {
	g.mustResolve()
	return []string{
		fmt.Sprintf("// Recorded occurrences of the repeated %s field %s, as", g.protoType, g.field.Name),
		"// parallel byte offsets and wire types, in scan order.",
		fmt.Sprintf("%s []uint32", g.offsName),
		fmt.Sprintf("%s []wire.Type", g.wiresName),
	}
}

func (g *enumRepeatedGen) decodeCase() []string {
	g.mustResolve()
	return []string{
		fmt.Sprintf("case %s:", g.constName),
		fmt.Sprintf("r.%s = append(r.%s, uint32(s.Offset()))", g.offsName, g.offsName),
		fmt.Sprintf("r.%s = append(r.%s, typ)", g.wiresName, g.wiresName),
		"if err := s.Skip(num, typ); err != nil {",
		"return err",
		"}",
	}
}

func (g *enumRepeatedGen) accessor() []string {
	return []string{
		fmt.Sprintf("// %s materializes the repeated %s field %s on a.", g.getterName, g.protoType, g.field.Name),
		"//",
		"// Values appear in wire order across packed and unpacked occurrences, and",
		"// enum numbers outside the declared values pass through unchanged. The",
		"// returned slice lives on a until it is freed.",
		fmt.Sprintf("func (r *%s) %s(a *mem.Arena) ([]%s, error) {", g.reader, g.getterName, g.elem()),
		fmt.Sprintf("if len(r.%s) == 0 {", g.offsName),
		"return nil, nil",
		"}",
		fmt.Sprintf("out := mem.MakeSlice[%s](a, 0, len(r.%s))", g.elem(), g.offsName),
		fmt.Sprintf("for i, off := range r.%s {", g.offsName),
		fmt.Sprintf("if r.%s[i] == wire.BytesType {", g.wiresName),
		"n, at, err := wire.ConsumeLen(r.src, int(off))",
		"if err != nil {",
		"return nil, err",
		"}",
		"end := at + n",
		"for at < end {",
		"v, next, err := wire.ConsumeInt32(r.src, at)",
		"if err != nil {",
		"return nil, err",
		"}",
		fmt.Sprintf("out = mem.Append(a, out, %s(v))", g.elem()),
		"at = next",
		"}",
		"} else {",
		"v, _, err := wire.ConsumeInt32(r.src, int(off))",
		"if err != nil {",
		"return nil, err",
		"}",
		fmt.Sprintf("out = mem.Append(a, out, %s(v))", g.elem()),
		"}",
		"}",
		"return out, nil",
		"}",
	}
}

func (g *enumRepeatedGen) resetStmt() string {
	g.mustResolve()
	return fmt.Sprintf("r.%s, r.%s = nil, nil", g.offsName, g.wiresName)
}

func (g *enumRepeatedGen) needsAlloc() bool {
	return true
}
