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
	"github.com/hashicorp/go-multierror"
)

// messageGen assembles one message's generated surface: the field number
// constants, the writer type with its Size, Encode and Marshal methods, the
// reader type with its decode entry points and Reset, and one accessor per
// field.
type messageGen struct {
	msg       *Message
	protoType string
	goName    string
	writer    string
	reader    string
	decodeFn  string
	members   *Scope
	fields    []fieldGen
	specs     []Field
}

// newMessageGen reserves the message's package-level names and constructs a
// generator per field. Field errors are collected so one bad message
// reports every unsupported field it declares, not just the first.
func newMessageGen(m *Message, pkg string, names *Scope) (*messageGen, error) {
	g := &messageGen{
		msg:       m,
		protoType: qualify(pkg, m.Name),
		members:   NewScope(),
	}
	g.goName = names.Reserve(camelCase(m.Name))
	g.writer = names.Reserve(g.goName + "Writer")
	g.reader = names.Reserve(g.goName + "Reader")
	g.decodeFn = names.Reserve("Decode" + g.goName)

	// Names every generated message carries. Reserved before any field
	// derivation so a field's spellings cannot take them.
	for _, fixed := range []string{"src", "Size", "Encode", "Marshal", "Decode", "Reset", "scan"} {
		g.members.Reserve(fixed)
	}

	var errs *multierror.Error
	for _, f := range m.Fields {
		fg, err := newFieldGen(f, &genContext{
			pkg:      pkg,
			msg:      m.Name,
			goMsg:    g.goName,
			goReader: g.reader,
			members:  g.members,
			names:    names,
		})
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		g.fields = append(g.fields, fg)
		g.specs = append(g.specs, f)
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return g, nil
}

// resolveFields binds every field generator to the Go name of its enum
// type, looked up by the enum's Protobuf name.
func (g *messageGen) resolveFields(enums map[string]string) error {
	for i, fg := range g.fields {
		goName, ok := enums[g.specs[i].Enum]
		if !ok {
			return &UnresolvedEnumError{Field: g.specs[i].Name, Enum: g.specs[i].Enum}
		}
		fg.resolve(goName)
	}
	return nil
}

// needsAlloc reports whether any field's accessor takes an arena.
func (g *messageGen) needsAlloc() bool {
	for _, f := range g.fields {
		if f.needsAlloc() {
			return true
		}
	}
	return false
}

// decl emits the message's whole generated surface, in fixed order.
func (g *messageGen) decl(p *printer) {
	if len(g.fields) > 0 {
		p.Pf("// Field numbers of %s.", g.protoType)
		p.P("const (")
		for _, f := range g.fields {
			p.P(f.wireConst())
		}
		p.P(")")
		p.Blank()
	}

	p.Pf("// %s builds the wire encoding of a %s message.", g.writer, g.protoType)
	p.P("//")
	p.P("// The zero value is an empty message. Fields are written in declaration")
	p.P("// order; writers with equal field values produce identical bytes.")
	p.Pf("type %s struct {", g.writer)
	for i, f := range g.fields {
		if i > 0 {
			p.Blank()
		}
		p.Lines(f.writerField())
	}
	p.P("}")
	p.Blank()

	p.P("// Size returns the exact number of bytes Encode appends.")
	p.Pf("func (w *%s) Size() int {", g.writer)
	p.P("var n int")
	for _, f := range g.fields {
		p.P(f.sizeStmt())
	}
	p.P("return n")
	p.P("}")
	p.Blank()

	p.P("// Encode appends the wire encoding of the message to b and returns the")
	p.P("// extended buffer. Encode appends exactly Size bytes.")
	p.Pf("func (w *%s) Encode(b []byte) []byte {", g.writer)
	for _, f := range g.fields {
		p.P(f.encodeStmt())
	}
	p.P("return b")
	p.P("}")
	p.Blank()

	p.P("// Marshal returns the wire encoding of the message in a buffer sized")
	p.P("// exactly by Size.")
	p.Pf("func (w *%s) Marshal() []byte {", g.writer)
	p.P("return w.Encode(make([]byte, 0, w.Size()))")
	p.P("}")
	p.Blank()

	p.Pf("// %s is a lazily decoded %s message.", g.reader, g.protoType)
	p.P("//")
	p.P("// Decode records where each field's bytes live in the source buffer;")
	p.P("// accessors materialize values on first use. The reader aliases the")
	p.P("// buffer it was given, which must not change while the reader is in use.")
	p.Pf("type %s struct {", g.reader)
	p.P("src []byte")
	for _, f := range g.fields {
		p.Blank()
		p.Lines(f.readerFields())
	}
	p.P("}")
	p.Blank()

	p.Pf("// %s scans src and returns a reader over it.", g.decodeFn)
	p.Pf("func %s(src []byte) (*%s, error) {", g.decodeFn, g.reader)
	p.Pf("r := new(%s)", g.reader)
	p.P("if err := r.Decode(src); err != nil {")
	p.P("return nil, err")
	p.P("}")
	p.P("return r, nil")
	p.P("}")
	p.Blank()

	p.P("// Decode resets the reader and scans src in one linear pass, recording")
	p.P("// the location of every known field and skipping unknown ones. No field")
	p.P("// values are interpreted. A failed Decode leaves the reader empty.")
	p.Pf("func (r *%s) Decode(src []byte) error {", g.reader)
	p.P("r.Reset()")
	p.P("if err := r.scan(src); err != nil {")
	p.P("r.Reset()")
	p.P("return err")
	p.P("}")
	p.P("return nil")
	p.P("}")
	p.Blank()

	p.Pf("func (r *%s) scan(src []byte) error {", g.reader)
	p.P("if err := wire.CheckSize(src); err != nil {")
	p.P("return err")
	p.P("}")
	p.P("r.src = src")
	p.P("s := wire.NewScanner(src)")
	p.P("for !s.Done() {")
	p.P("num, typ, err := s.Tag()")
	p.P("if err != nil {")
	p.P("return err")
	p.P("}")
	p.P("switch num {")
	for _, f := range g.fields {
		p.Lines(f.decodeCase())
	}
	p.P("default:")
	p.P("if err := s.Skip(num, typ); err != nil {")
	p.P("return err")
	p.P("}")
	p.P("}")
	p.P("}")
	p.P("return nil")
	p.P("}")
	p.Blank()

	p.P("// Reset releases the recorded field locations and drops the source")
	p.P("// buffer, leaving the reader ready for another Decode.")
	p.Pf("func (r *%s) Reset() {", g.reader)
	p.P("r.src = nil")
	for _, f := range g.fields {
		p.P(f.resetStmt())
	}
	p.P("}")

	for _, f := range g.fields {
		p.Blank()
		p.Lines(f.accessor())
	}
}
