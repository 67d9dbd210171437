package storage

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/amaumene/envrun/internal/domain"
	"github.com/timshannon/bolthold"
)

type runRepository struct {
	store *bolthold.Store
}

func NewRunRepository(store *bolthold.Store) domain.RunRepository {
	return &runRepository{store: store}
}

func (r *runRepository) Insert(ctx context.Context, run *domain.Run) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := r.store.Insert(run.ID, run)
	if errors.Is(err, bolthold.ErrKeyExists) {
		return domain.ErrDuplicateKey
	}
	if err != nil {
		return fmt.Errorf("inserting run: %w", err)
	}
	return nil
}

func (r *runRepository) Update(ctx context.Context, run *domain.Run) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := r.store.Update(run.ID, run); err != nil {
		return fmt.Errorf("updating run: %w", err)
	}
	return nil
}

func (r *runRepository) Get(ctx context.Context, id string) (*domain.Run, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var run domain.Run
	err := r.store.Get(id, &run)
	if errors.Is(err, bolthold.ErrNotFound) {
		return nil, domain.ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting run: %w", err)
	}
	return &run, nil
}

func (r *runRepository) List(ctx context.Context, limit int) ([]*domain.Run, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var runs []*domain.Run
	if err := r.store.Find(&runs, nil); err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].StartedAt.After(runs[j].StartedAt)
	})
	if limit > 0 && len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}
