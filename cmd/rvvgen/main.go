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

// Command rvvgen generates the table-driven instruction entry points of
// package rvv.
//
// Usage:
//
//	rvvgen -output . -tables alu,mul,fixed
//
// Or via go:generate:
//
//	//go:generate go run ../cmd/rvvgen -output . -tables all
//
// Each table produces insn_<name>.gen.go holding one exported function per
// instruction form, all of which forward to execBinary.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

var (
	outputDir  = flag.String("output", ".", "Output directory (default: current directory)")
	tableNames = flag.String("tables", "all", "Comma-separated tables ("+strings.Join(availableTables(), ",")+") or 'all'")
	packageOut = flag.String("pkg", "rvv", "Output package name")
)

func main() {
	flag.Parse()

	selected, err := parseTables(*tableNames)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}

	gen := &Generator{
		OutputDir:  *outputDir,
		PackageOut: *packageOut,
		Tables:     selected,
	}
	if err := gen.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	names := make([]string, len(selected))
	for i, t := range selected {
		names[i] = t.name
	}
	fmt.Printf("Successfully generated tables: %s\n", strings.Join(names, ", "))
}

func availableTables() []string {
	names := make([]string, len(tables))
	for i, t := range tables {
		names[i] = t.name
	}
	return names
}

// parseTables resolves a comma-separated list of table names.
func parseTables(s string) ([]table, error) {
	var result []table
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if p == "all" {
			return tables, nil
		}
		t, ok := lookupTable(p)
		if !ok {
			return nil, fmt.Errorf("unknown table %q", p)
		}
		result = append(result, t)
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("no tables specified")
	}
	return result, nil
}

func lookupTable(name string) (table, bool) {
	for _, t := range tables {
		if t.name == name {
			return t, true
		}
	}
	return table{}, false
}
