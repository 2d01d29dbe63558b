// Copyright 2025 go-rvv Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/imports"
)

// form is the vs1/rs1/imm operand shape of one entry point.
type form uint8

const (
	vv form = iota
	vx
	vi
)

// suffix returns the function name suffix, e.g. "VX".
func (f form) suffix() string {
	return [...]string{"VV", "VX", "VI"}[f]
}

// operand returns the name the doc comment uses for the third operand.
func (f form) operand() string {
	return [...]string{"vs1", "rs1", "imm"}[f]
}

// params returns the parameter list after vrf and c.
func (f form) params() string {
	return [...]string{"vd, vs2, vs1 int", "vd, vs2 int, rs1 []byte", "vd, vs2 int, imm uint8"}[f]
}

// source returns the expression building the third operand.
func (f form) source() string {
	return [...]string{"vsrc(vs1)", "xsrc(rs1)", "isrc(imm)"}[f]
}

// insn is one instruction family sharing an opcode.
type insn struct {
	name  string
	op    string
	forms []form
	sat   bool // takes a vxsat *bool
	doc   string
}

// table is the set of instructions emitted into one file.
type table struct {
	name  string
	doc   []string
	insns []insn
}

// Generator writes one source file per table.
type Generator struct {
	OutputDir  string
	PackageOut string
	Tables     []table
}

// Run emits every selected table.
func (g *Generator) Run() error {
	if err := os.MkdirAll(g.OutputDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	for _, t := range g.Tables {
		src, err := g.emit(t)
		if err != nil {
			return fmt.Errorf("table %s: %w", t.name, err)
		}
		filename := filepath.Join(g.OutputDir, fmt.Sprintf("insn_%s.gen.go", t.name))
		if err := os.WriteFile(filename, src, 0644); err != nil {
			return fmt.Errorf("write table %s: %w", t.name, err)
		}
	}
	return nil
}

// emit renders table t as gofmt-formatted Go source.
func (g *Generator) emit(t table) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by rvvgen. DO NOT EDIT.\n")
	fmt.Fprintf(&buf, "\npackage %s\n\n", g.PackageOut)
	for _, line := range t.doc {
		fmt.Fprintf(&buf, "// %s\n", line)
	}

	seen := make(map[string]bool)
	for _, in := range t.insns {
		if len(in.forms) == 0 {
			return nil, fmt.Errorf("%s has no forms", in.name)
		}
		if !strings.Contains(in.doc, "$src") {
			return nil, fmt.Errorf("%s doc does not name its operand", in.name)
		}
		for _, f := range in.forms {
			fn := in.name + f.suffix()
			if seen[fn] {
				return nil, fmt.Errorf("duplicate entry point %s", fn)
			}
			seen[fn] = true

			params, sat := f.params(), "nil"
			if in.sat {
				params += ", vxsat *bool"
				sat = "vxsat"
			}
			fmt.Fprintf(&buf, "\n// %s %s\n", fn, strings.ReplaceAll(in.doc, "$src", f.operand()))
			fmt.Fprintf(&buf, "func %s(vrf []byte, c Config, %s) Status {\n", fn, params)
			fmt.Fprintf(&buf, "\treturn execBinary(vrf, c, %s, vd, vs2, %s, %s)\n", in.op, f.source(), sat)
			fmt.Fprintf(&buf, "}\n")
		}
	}

	formatted, err := imports.Process(fmt.Sprintf("insn_%s.gen.go", t.name), buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("format: %w", err)
	}
	return formatted, nil
}
