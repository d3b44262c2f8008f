package sequence

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type SequenceRepository interface {
	NextTx(ctx context.Context, tx *sqlx.Tx, name string) (uint64, error)
}

func NewSequenceRepository(conn *sqlx.DB) SequenceRepository {
	return &SQL{conn: conn}
}

// The first call for a name stores 1; later calls increment in place. LAST_INSERT_ID
// carries the new value back on the same connection, so no read-back race exists.
const nextQuery = `INSERT INTO sequence_counters (name, value) VALUES (?, LAST_INSERT_ID(1)) ON DUPLICATE KEY UPDATE value = LAST_INSERT_ID(value + 1)`

// NextTx returns the next value of the named counter inside tx.
func (r *SQL) NextTx(ctx context.Context, tx *sqlx.Tx, name string) (uint64, error) {
	res, err := tx.ExecContext(ctx, nextQuery, name)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}
