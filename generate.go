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
	"bytes"
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/imports"

	"buf.build/go/lazypb/internal/debug"
)

// Generate emits one Go source file implementing f's schema: enum type
// declarations first, then each message's writer and reader, in declaration
// order. The output is gofmt-formatted.
//
// Generation is deterministic: the same File and options produce the same
// bytes on every run.
func Generate(f *File, opts ...Option) ([]byte, error) {
	o := newOptions(opts)

	gopkg := f.GoPackage
	if gopkg == "" {
		pkg := f.Package
		if i := strings.LastIndexByte(pkg, '.'); i >= 0 {
			pkg = pkg[i+1:]
		}
		gopkg = pkg
	}
	if gopkg == "" {
		return nil, fmt.Errorf("lazypb: file %q has no package to name the generated code after", f.Name)
	}

	names := NewScope()
	// The generated file's imports; a declaration must not take their
	// names, or every qualified reference below it would break.
	for _, imp := range []string{"fmt", "mem", "wire"} {
		names.Reserve(imp)
	}

	enums := make([]*enumGen, 0, len(f.Enums))
	byProto := make(map[string]string, len(f.Enums))
	for _, e := range f.Enums {
		g := newEnumGen(e, f.Package, names)
		enums = append(enums, g)
		byProto[e.Name] = g.goName
	}

	msgs := make([]*messageGen, 0, len(f.Messages))
	var errs *multierror.Error
	for _, m := range f.Messages {
		g, err := newMessageGen(m, f.Package, names)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		msgs = append(msgs, g)
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	for _, g := range msgs {
		if err := g.resolveFields(byProto); err != nil {
			return nil, err
		}
	}

	debug.Log([]any{"%s", f.Name}, "generate", "%d enums, %d messages", len(enums), len(msgs))

	p := new(printer)
	if o.header != "" {
		p.P(strings.TrimRight(o.header, "\n"))
		p.Blank()
	}
	p.P("// Code generated by lazypb. DO NOT EDIT.")
	if f.Name != "" {
		p.P("//")
		p.Pf("// Source: %s", f.Name)
	}
	p.Blank()
	p.Pf("package %s", gopkg)
	p.Blank()

	needFmt := len(enums) > 0
	needMem := false
	for _, g := range msgs {
		if g.needsAlloc() {
			needMem = true
		}
	}
	needWire := len(msgs) > 0
	if needFmt || needMem || needWire {
		p.P("import (")
		if needFmt {
			p.P(`"fmt"`)
		}
		if needFmt && (needMem || needWire) {
			p.Blank()
		}
		if needMem {
			p.P(`"buf.build/go/lazypb/mem"`)
		}
		if needWire {
			p.P(`"buf.build/go/lazypb/wire"`)
		}
		p.P(")")
		p.Blank()
	}

	first := true
	for _, g := range enums {
		if !first {
			p.Blank()
		}
		first = false
		g.decl(p)
	}
	for _, g := range msgs {
		if !first {
			p.Blank()
		}
		first = false
		g.decl(p)
	}

	// The printer emits everything at column zero; formatting owns all
	// indentation and alignment. The import block above is complete, so
	// this never resolves anything against the build environment.
	out, err := imports.Process(f.Name, p.buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("lazypb: internal: generated source for %q does not format: %w", f.Name, err)
	}
	return out, nil
}

// GenerateAll generates every file, fanning the work out across
// goroutines. Results are positionally aligned with files; a file that
// failed leaves a nil slot.
//
// Failures do not stop other files: the returned error aggregates every
// file's failure, each wrapped with its file name. Cancelling ctx abandons
// files that have not started.
func GenerateAll(ctx context.Context, files []*File, opts ...Option) ([][]byte, error) {
	o := newOptions(opts)
	limit := o.parallelism
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	out := make([][]byte, len(files))
	failures := make([]error, len(files))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(limit)
	for i, f := range files {
		i, f := i, f
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				failures[i] = err
				return nil
			}
			b, err := Generate(f, opts...)
			if err != nil {
				failures[i] = fmt.Errorf("%s: %w", f.Name, err)
				return nil
			}
			out[i] = b
			return nil
		})
	}
	// Goroutines never return errors; Wait only joins them.
	_ = eg.Wait()

	var errs *multierror.Error
	for _, err := range failures {
		if err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return out, errs.ErrorOrNil()
}

// printer accumulates generated source line by line. Lines go in at column
// zero; gofmt, run by [Generate] last, owns indentation.
type printer struct {
	buf bytes.Buffer
}

// P appends one line.
func (p *printer) P(line string) {
	p.buf.WriteString(line)
	p.buf.WriteByte('\n')
}

// Pf appends one formatted line.
func (p *printer) Pf(format string, args ...any) {
	fmt.Fprintf(&p.buf, format+"\n", args...)
}

// Lines appends each element as a line.
func (p *printer) Lines(lines []string) {
	for _, l := range lines {
		p.P(l)
	}
}

// Blank appends an empty line.
func (p *printer) Blank() {
	p.buf.WriteByte('\n')
}
