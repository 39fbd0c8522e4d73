/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/carverauto/topology-backend/pkg/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	os.Exit(run(ctx))
}

func run(ctx context.Context) int {
	cfg, err := cli.ParseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) || (err == nil && cfg.Help) {
		cli.ShowHelp(os.Stdout)

		return 0
	}

	if err != nil {
		cli.PrintError(os.Stderr, err)
		cli.ShowHelp(os.Stderr)

		return 2
	}

	if err := cli.Run(ctx, cfg, cli.StdStreams()); err != nil {
		cli.PrintError(os.Stderr, err)

		return 1
	}

	return 0
}
