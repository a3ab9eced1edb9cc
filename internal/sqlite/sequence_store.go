package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"paymulexport/internal/core"
)

type SequenceStore struct {
	db *sql.DB
	tx *sql.Tx
}

func NewSequenceStore(db *sql.DB) SequenceStore {
	return SequenceStore{
		db: db,
	}
}

// Register creates the sequence unless a sequence with the same code
// already exists; an existing counter is never reset.
func (s SequenceStore) Register(ctx context.Context, sequence core.Sequence) error {
	query := `
		INSERT INTO sequences (code, prefix, padding, next_number)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(code) DO NOTHING
	`

	nextNumber := sequence.NextNumber
	if nextNumber < 1 {
		nextNumber = 1
	}

	if _, err := s.db.ExecContext(ctx, query, sequence.Code, sequence.Prefix, sequence.Padding, nextNumber); err != nil {
		return fmt.Errorf("failed to register sequence: %w", err)
	}

	return nil
}

func (s SequenceStore) GetSequence(ctx context.Context, code string) (core.Sequence, error) {
	if s.tx == nil {
		return core.Sequence{}, errors.New("GetSequence must be called within Atomic transaction")
	}

	query := `
		SELECT id, code, prefix, padding, next_number
		FROM sequences
		WHERE code = ?
	`

	var sequence core.Sequence
	err := s.tx.QueryRowContext(ctx, query, code).Scan(
		&sequence.ID,
		&sequence.Code,
		&sequence.Prefix,
		&sequence.Padding,
		&sequence.NextNumber,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.Sequence{}, core.ErrSequenceNotFound
		}

		return core.Sequence{}, fmt.Errorf("failed to get sequence: %w", err)
	}

	return sequence, nil
}

func (s SequenceStore) UpdateSequence(ctx context.Context, sequence core.Sequence) error {
	if s.tx == nil {
		return errors.New("UpdateSequence must be called within Atomic transaction")
	}

	// The guard keeps the counter monotonic even if a stale value is written.
	query := `
		UPDATE sequences
		SET next_number = ?
		WHERE id = ? AND next_number < ?
	`

	result, err := s.tx.ExecContext(ctx, query, sequence.NextNumber, sequence.ID, sequence.NextNumber)
	if err != nil {
		return fmt.Errorf("failed to execute update: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("no rows updated for sequence ID %d", sequence.ID)
	}

	return nil
}

func (s SequenceStore) Atomic(ctx context.Context, cb func(core.SequenceRepository) error) error {
	// BEGIN IMMEDIATE (see _txlock in the DSN) takes the write lock up front,
	// so two exports can never read the same next_number.
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{
		Isolation: sql.LevelDefault,
	})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txStore := SequenceStore{
		tx: tx,
	}

	if err = cb(txStore); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction error: %w, rollback error: %w", err, rbErr)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
