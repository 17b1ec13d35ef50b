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

// gen is a script for generating blocks of repeated enum values in
// Protoscope form, for authoring corpus entries by hand.
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/rivo/uniseg"
)

var (
	field  = flag.Int("field", 7, "the field number to emit")
	hi     = flag.Uint64("hi", 3, "upper bound (exclusive) on emitted values")
	n      = flag.Int("n", 64, "the number of elements to generate")
	row    = flag.Int("row", 16, "the number of elements to a row")
	packed = flag.Bool("packed", true, "emit one packed record instead of unpacked fields")
)

func main() {
	flag.Parse()

	var cells [][]string
	var widths [][]int
	for i := range *n {
		if i%*row == 0 {
			cells = append(cells, nil)
			widths = append(widths, nil)
		}

		var cell string
		if *packed {
			cell = fmt.Sprintf("%d", rand.Uint64N(*hi))
		} else {
			cell = fmt.Sprintf("%d: %d", *field, rand.Uint64N(*hi))
		}

		cells[len(cells)-1] = append(cells[len(cells)-1], cell)
		widths[len(widths)-1] = append(widths[len(widths)-1], uniseg.StringWidth(cell))
	}

	// Discover the widest cell in each column.
	var maxima []int
	for _, row := range widths {
		for col, width := range row {
			if len(maxima) <= col {
				maxima = append(maxima, 0)
			}

			maxima[col] = max(maxima[col], width)
		}
	}

	// Snap each maximum to an even number.
	for i, n := range maxima {
		maxima[i] = (n + 2) &^ 1
	}

	maxima[len(maxima)-1] = 0 // No need to pad the final cell.

	if *packed {
		fmt.Printf("%d: {\n", *field)
	}
	for i, row := range cells {
		if *packed {
			fmt.Print("  ")
		}
		for j, cell := range row {
			fmt.Print(cell)

			if pad := maxima[j] - widths[i][j]; pad > 0 {
				fmt.Print(strings.Repeat(" ", pad))
			}
		}
		fmt.Println()
	}
	if *packed {
		fmt.Println("}")
	}
}
