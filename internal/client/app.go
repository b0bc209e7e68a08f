// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/MKhiriev/go-wallet-keeper/internal/adapter"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
)

// ErrUnknownCommand is returned for a missing or unsupported sub-command.
var ErrUnknownCommand = errors.New("unknown command")

type command struct {
	usage string
	run   func(ctx context.Context, fs *flag.FlagSet, args []string) error

	// authorized commands load the stored token first
	authorized bool
}

type App struct {
	adapter adapter.ServerAdapter
	tokens  TokenStore
	out     io.Writer

	commands map[string]command

	logger *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, tokens TokenStore, out io.Writer, logger *logger.Logger) *App {
	a := &App{
		adapter: serverAdapter,
		tokens:  tokens,
		out:     out,
		logger:  logger,
	}
	a.commands = map[string]command{
		"register": {usage: "register -name N -first-name F -last-name L -password P", run: a.register},
		"login":    {usage: "login -name N -password P", run: a.login},
		"add":      {usage: "add -name N -amount A -type {-1|1} [-desc D] [-date RFC3339]", run: a.add, authorized: true},
		"list":     {usage: "list [-page N] [-limit N]", run: a.list, authorized: true},
		"get":      {usage: "get ID", run: a.get, authorized: true},
		"update":   {usage: "update ID [-name N] [-desc D] [-amount A] [-type T] [-date RFC3339]", run: a.update, authorized: true},
		"delete":   {usage: "delete ID", run: a.delete, authorized: true},
		"version":  {usage: "version", run: a.version},
	}
	return a
}

// Run executes the sub-command named by args[0].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printUsage()
		return ErrUnknownCommand
	}

	cmd, ok := a.commands[args[0]]
	if !ok {
		a.printUsage()
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}

	if cmd.authorized {
		token, err := a.tokens.Load()
		if err != nil {
			return err
		}
		a.adapter.SetToken(token)
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(a.out)
	fs.Usage = func() { fmt.Fprintf(a.out, "usage: walletctl %s\n", cmd.usage) }

	return cmd.run(ctx, fs, args[1:])
}

func (a *App) printUsage() {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(a.out, "usage: walletctl <command> [flags]")
	fmt.Fprintln(a.out, "commands:")
	for _, name := range names {
		fmt.Fprintf(a.out, "  %s\n", a.commands[name].usage)
	}
}

// print writes v as indented JSON.
func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// parseWithID parses flags that may follow a positional ID argument.
func parseWithID(fs *flag.FlagSet, args []string) (string, error) {
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		if err := fs.Parse(args[1:]); err != nil {
			return "", err
		}
		return args[0], nil
	}

	if err := fs.Parse(args); err != nil {
		return "", err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return "", errors.New("transaction id is required")
	}
	return fs.Arg(0), nil
}
