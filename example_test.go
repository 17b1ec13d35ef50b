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

package lazypb_test

import (
	"fmt"

	"buf.build/go/lazypb"
)

func ExampleGenerate() {
	// Describe the schema to generate code for. Schemas compiled from
	// real sources adapt into this shape with FromFile.
	f := &lazypb.File{
		Name:      "tags.proto",
		Package:   "demo.v1",
		GoPackage: "demopb",
		Enums: []*lazypb.Enum{{
			Name: "Tag",
			Values: []lazypb.EnumValue{
				{Name: "TAG_UNSPECIFIED", Number: 0},
				{Name: "TAG_FEATURED", Number: 1},
			},
		}},
	}

	out, err := lazypb.Generate(f)
	if err != nil {
		panic(err)
	}
	fmt.Print(string(out))

	// Output:
	// // Code generated by lazypb. DO NOT EDIT.
	// //
	// // Source: tags.proto
	//
	// package demopb
	//
	// import (
	// 	"fmt"
	// )
	//
	// // Tag is the demo.v1.Tag enum.
	// type Tag int32
	//
	// const (
	// 	TagUnspecified Tag = 0
	// 	TagFeatured    Tag = 1
	// )
	//
	// // String returns the declared name of v, or its number when v is outside
	// // the declared values.
	// func (v Tag) String() string {
	// 	switch v {
	// 	case TagUnspecified:
	// 		return "TAG_UNSPECIFIED"
	// 	case TagFeatured:
	// 		return "TAG_FEATURED"
	// 	default:
	// 		return fmt.Sprintf("Tag(%d)", int32(v))
	// 	}
	// }
}
