// GeoDash - GEO Content Operations Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geodash

package dashboard

import (
	"context"
	"fmt"
	"net/url"

	"github.com/tomtom215/geodash/internal/models"
)

// Accounts manages publishing-platform accounts. Account objects are not
// modeled and pass through as models.Record.
type Accounts struct {
	c Caller
}

// List returns accounts matching query (platform, status, ...).
func (a *Accounts) List(ctx context.Context, query url.Values) ([]models.Record, error) {
	raw, err := a.c.Get(ctx, "/accounts", query)
	if err != nil {
		return nil, err
	}
	return ListOf[models.Record](raw)
}

// StartAuth starts a browser login flow and returns the task descriptor.
func (a *Accounts) StartAuth(ctx context.Context, req models.Record) (models.Record, error) {
	raw, err := a.c.Post(ctx, "/accounts/auth/start", req)
	if err != nil {
		return nil, err
	}
	return decodeRecord(raw)
}

// AuthStatus polls a browser login task.
func (a *Accounts) AuthStatus(ctx context.Context, taskID string) (models.Record, error) {
	raw, err := a.c.Get(ctx, "/accounts/auth/status/"+url.PathEscape(taskID), nil)
	if err != nil {
		return nil, err
	}
	return decodeRecord(raw)
}

// Update replaces mutable fields of account id.
func (a *Accounts) Update(ctx context.Context, id int, body models.Record) (models.Record, error) {
	raw, err := a.c.Put(ctx, fmt.Sprintf("/accounts/%d", id), body)
	if err != nil {
		return nil, err
	}
	return decodeRecord(raw)
}

// Delete removes account id. The caller reloads the list if it needs to.
func (a *Accounts) Delete(ctx context.Context, id int) error {
	_, err := a.c.Delete(ctx, fmt.Sprintf("/accounts/%d", id), nil)
	return err
}

func decodeRecord(raw []byte) (models.Record, error) {
	rec, err := decode[models.Record](raw)
	if err != nil {
		return nil, err
	}
	if *rec == nil {
		return models.Record{}, nil
	}
	return *rec, nil
}
