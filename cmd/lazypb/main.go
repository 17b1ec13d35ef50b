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

// lazypb compiles Protobuf schemas and generates Go code that encodes them
// eagerly and decodes them lazily.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bufbuild/protocompile"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"buf.build/go/lazypb"
	"buf.build/go/lazypb/internal/debug"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newCommand().ExecuteContext(ctx); err != nil {
		errorf("%v", err)
		os.Exit(1)
	}
}

// config is the merged view of flags, LAZYPB_* environment variables, and
// an optional .lazypb.yaml in the working directory, in that precedence.
type config struct {
	Out         string   `mapstructure:"out"`
	Header      string   `mapstructure:"header"`
	Include     []string `mapstructure:"include"`
	Parallelism int      `mapstructure:"parallelism"`
	NoColor     bool     `mapstructure:"no-color"`
}

func newCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lazypb [flags] file.proto...",
		Short: "generate lazy Protobuf accessors for Go",
		Long: "lazypb compiles the named Protobuf files and writes one " +
			"<file>.lazy.go per input, containing writer types that encode " +
			"messages field by field and reader types that defer all value " +
			"decoding to accessors.",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, args)
		},
	}

	flags := cmd.Flags()
	flags.StringP("out", "o", ".", "directory to write generated files into")
	flags.String("header", "", "file whose contents head every generated file")
	flags.StringSliceP("include", "I", nil, "directories to resolve imports against")
	flags.Int("parallelism", 0, "maximum files generated concurrently; 0 means one per CPU")
	flags.Bool("no-color", false, "disable colored diagnostics")
	return cmd
}

func loadConfig(flags *pflag.FlagSet) (*config, error) {
	v := viper.New()
	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}

	v.SetEnvPrefix("lazypb")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName(".lazypb")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	cfg := new(config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func run(ctx context.Context, cfg *config, protos []string) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("internal error: %v; this is a bug\n%s", p, debug.Stack(2))
		}
	}()

	color.NoColor = color.NoColor || cfg.NoColor || !term.IsTerminal(int(os.Stderr.Fd()))

	var header string
	if cfg.Header != "" {
		b, err := os.ReadFile(cfg.Header)
		if err != nil {
			return err
		}
		header = string(b)
	}

	compiler := protocompile.Compiler{
		Resolver: protocompile.WithStandardImports(&protocompile.SourceResolver{
			ImportPaths: append(slices.Clone(cfg.Include), "."),
		}),
	}
	fds, err := compiler.Compile(ctx, protos...)
	if err != nil {
		return err
	}

	files := make([]*lazypb.File, len(fds))
	for i, fd := range fds {
		f, err := lazypb.FromFile(fd)
		if err != nil {
			return err
		}
		files[i] = f
	}

	opts := []lazypb.Option{lazypb.WithParallelism(cfg.Parallelism)}
	if header != "" {
		opts = append(opts, lazypb.WithHeader(header))
	}
	outs, genErr := lazypb.GenerateAll(ctx, files, opts...)

	// Write whatever generated cleanly before reporting failures.
	for i, out := range outs {
		if out == nil {
			continue
		}
		path := filepath.Join(cfg.Out, outName(files[i].Name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, out, 0o644); err != nil {
			return err
		}
		infof("wrote %s", path)
	}
	return genErr
}

// outName maps a compiled file name to the generated file's name, keeping
// any directory structure the proto name carries.
func outName(proto string) string {
	return strings.TrimSuffix(proto, ".proto") + ".lazy.go"
}

func infof(format string, args ...any) {
	fmt.Fprintln(os.Stderr, color.BlueString("lazypb: "+fmt.Sprintf(format, args...)))
}

func errorf(format string, args ...any) {
	fmt.Fprintln(os.Stderr, color.RedString("lazypb: error: "+fmt.Sprintf(format, args...)))
}
