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

// enumGen generates an enum type declaration: the int32-backed type, one
// constant per declared value, and a Stringer.
type enumGen struct {
	enum      *Enum
	protoType string
	goName    string
	values    []enumValue
}

type enumValue struct {
	goName string
	val    EnumValue
}

// newEnumGen reserves the enum's Go type name and one constant name per
// value in the file's package scope.
func newEnumGen(e *Enum, pkg string, names *Scope) *enumGen {
	g := &enumGen{
		enum:      e,
		protoType: qualify(pkg, e.Name),
	}
	g.goName = names.Reserve(camelCase(e.Name))
	for _, v := range e.Values {
		g.values = append(g.values, enumValue{
			goName: names.Reserve(enumValueName(g.goName, e.Name, v.Name)),
			val:    v,
		})
	}
	return g
}

// decl emits the type, its value constants and String.
func (g *enumGen) decl(p *printer) {
	p.Pf("// %s is the %s enum.", g.goName, g.protoType)
	p.Pf("type %s int32", g.goName)

	if len(g.values) > 0 {
		p.Blank()
		p.P("const (")
		for _, v := range g.values {
			p.Pf("%s %s = %d", v.goName, g.goName, v.val.Number)
		}
		p.P(")")
	}

	p.Blank()
	p.Pf("// String returns the declared name of v, or its number when v is outside")
	p.Pf("// the declared values.")
	p.Pf("func (v %s) String() string {", g.goName)
	p.P("switch v {")
	// Aliased numbers keep the first declared name; a duplicate case value
	// would not compile.
	seen := make(map[int32]bool)
	for _, v := range g.values {
		if seen[v.val.Number] {
			continue
		}
		seen[v.val.Number] = true
		p.Pf("case %s:", v.goName)
		p.Pf("return %q", v.val.Name)
	}
	p.P("default:")
	p.Pf("return fmt.Sprintf(%q, int32(v))", g.goName+"(%d)")
	p.P("}")
	p.P("}")
}
