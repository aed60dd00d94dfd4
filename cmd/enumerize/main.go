// Copyright 2025 walteh LLC
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
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/walteh/enumerize/cmd/enumerize/opts"
	"github.com/walteh/enumerize/pkg/log"
	"github.com/walteh/enumerize/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr, &opts.RootOpts{})
	stop()
	os.Exit(code)
}

// execute runs the root command and reports its error once, returning the
// process exit code
func execute(ctx context.Context, args []string, stdout, stderr io.Writer, root *opts.RootOpts) int {
	cmd := newRootCmd(root)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	console := root.Console
	if console == nil {
		console = log.New(stderr, zerolog.Nop())
	}

	if errors.Is(err, operation.ErrCancelled) {
		console.Warning("Cancelled, document left unchanged")
		return 0
	}

	console.Error(err.Error())
	return 1
}
