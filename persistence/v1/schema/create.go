package schema

import (
	"context"
	"errors"
	"github.com/ribgsilva/sticky-notes/sys"
)

// Create creates the kv_store table used by the mysql storage driver
func Create(ctx context.Context) error {
	db := sys.R.Database

	_, err := db.ExecContext(ctx, schema)
	if err != nil {
		return errors.New("create schema: " + err.Error())
	}

	return nil
}
