// Copyright 2025 Buf Technologies, Inc.
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

// Option is a configuration setting for [Generate] and [GenerateAll].
type Option struct{ apply func(*options) }

type options struct {
	header      string
	parallelism int
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt.apply != nil {
			opt.apply(&o)
		}
	}
	return o
}

// WithHeader prepends text to every generated file, verbatim, above the
// "Code generated" marker. Use it to carry a license header into generated
// code.
func WithHeader(text string) Option {
	return Option{func(o *options) { o.header = text }}
}

// WithParallelism caps how many files [GenerateAll] works on concurrently.
// Zero or a negative value means one worker per CPU.
func WithParallelism(n int) Option {
	return Option{func(o *options) { o.parallelism = n }}
}
