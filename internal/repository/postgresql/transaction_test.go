package postgresql

import (
	"context"
	"testing"

	"github.com/geoattend/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
)

type stubTx struct{ pgx.Tx }

func TestGetQuerier_PrefersContextTransaction(t *testing.T) {
	tx := stubTx{}
	ctx := withTx(context.Background(), tx)

	q := GetQuerier(ctx, nil)
	assert.Equal(t, tx, q)
}

func TestGetQuerier_FallsBackToPool(t *testing.T) {
	db := &database.DB{}

	q := GetQuerier(context.Background(), db)
	assert.IsType(t, (*pgxpool.Pool)(nil), q)
}
