// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/MKhiriev/go-wallet-keeper/internal/adapter"
	"github.com/MKhiriev/go-wallet-keeper/models"
	"github.com/shopspring/decimal"
)

func (a *App) register(ctx context.Context, fs *flag.FlagSet, args []string) error {
	var req adapter.RegisterRequest
	fs.StringVar(&req.Name, "name", "", "unique user name")
	fs.StringVar(&req.FirstName, "first-name", "", "first name")
	fs.StringVar(&req.LastName, "last-name", "", "last name")
	fs.StringVar(&req.Password, "password", "", "password, at least 6 characters")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := a.adapter.Register(ctx, req)
	if err != nil {
		return err
	}
	return a.print(user)
}

func (a *App) login(ctx context.Context, fs *flag.FlagSet, args []string) error {
	var credentials models.Credentials
	fs.StringVar(&credentials.Name, "name", "", "user name")
	fs.StringVar(&credentials.Password, "password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	result, err := a.adapter.Login(ctx, credentials)
	if err != nil {
		return err
	}
	if err = a.tokens.Save(result.Access); err != nil {
		return err
	}

	a.logger.Debug().Str("user", result.Auth.UUID).Msg("token saved")
	return a.print(result.Auth)
}

func (a *App) add(ctx context.Context, fs *flag.FlagSet, args []string) error {
	var (
		req    adapter.TransactionRequest
		amount string
		txType int
		desc   string
		date   string
	)
	fs.StringVar(&req.Name, "name", "", "transaction name")
	fs.StringVar(&amount, "amount", "", "non-negative amount, e.g. 12.50")
	fs.IntVar(&txType, "type", int(models.Debit), "-1 for debit, 1 for credit")
	fs.StringVar(&desc, "desc", "", "optional description")
	fs.StringVar(&date, "date", "", "optional RFC 3339 date")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var err error
	if req.Amount, err = decimal.NewFromString(amount); err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	req.Type = models.TransactionType(txType)
	if desc != "" {
		req.Desc = &desc
	}
	if date != "" {
		parsed, err := time.Parse(time.RFC3339, date)
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", date, err)
		}
		req.Date = &parsed
	}

	tx, err := a.adapter.CreateTransaction(ctx, req)
	if err != nil {
		return err
	}
	return a.print(tx)
}

func (a *App) list(ctx context.Context, fs *flag.FlagSet, args []string) error {
	var page models.PageRequest
	fs.IntVar(&page.Page, "page", 0, "1-based page, server default when 0")
	fs.IntVar(&page.Limit, "limit", 0, "page size, server default when 0")
	if err := fs.Parse(args); err != nil {
		return err
	}

	list, meta, err := a.adapter.ListTransactions(ctx, page)
	if err != nil {
		return err
	}
	return a.print(struct {
		Transactions []models.Transaction `json:"transactions"`
		Meta         models.PageMeta      `json:"meta"`
	}{list, meta})
}

func (a *App) get(ctx context.Context, fs *flag.FlagSet, args []string) error {
	id, err := parseWithID(fs, args)
	if err != nil {
		return err
	}

	tx, err := a.adapter.GetTransaction(ctx, id)
	if err != nil {
		return err
	}
	return a.print(tx)
}

// update sends only the flags given on the command line.
func (a *App) update(ctx context.Context, fs *flag.FlagSet, args []string) error {
	fs.String("name", "", "new name")
	fs.String("desc", "", "new description")
	fs.String("amount", "", "new non-negative amount")
	fs.Int("type", 0, "new type, -1 or 1")
	fs.String("date", "", "new RFC 3339 date")

	id, err := parseWithID(fs, args)
	if err != nil {
		return err
	}

	fields := map[string]any{}
	var visitErr error
	fs.Visit(func(f *flag.Flag) {
		value := f.Value.(flag.Getter).Get()
		if f.Name == "amount" {
			amount, err := decimal.NewFromString(f.Value.String())
			if err != nil {
				visitErr = fmt.Errorf("invalid amount %q: %w", f.Value.String(), err)
				return
			}
			value = amount
		}
		fields[f.Name] = value
	})
	if visitErr != nil {
		return visitErr
	}

	update, err := a.adapter.UpdateTransaction(ctx, id, fields)
	if err != nil {
		return err
	}
	return a.print(update)
}

func (a *App) delete(ctx context.Context, fs *flag.FlagSet, args []string) error {
	id, err := parseWithID(fs, args)
	if err != nil {
		return err
	}

	if err = a.adapter.DeleteTransaction(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "transaction %s deleted\n", id)
	return nil
}

func (a *App) version(ctx context.Context, fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}

	version, err := a.adapter.Version(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, version)
	return nil
}
