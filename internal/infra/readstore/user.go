package readstore

import (
	"context"

	"lendit/internal/infra"
	"lendit/internal/usecase/commands"
	"lendit/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db infra.DB
}

func NewUserReadStore(db infra.DB) *UserReadStore {
	return &UserReadStore{db: db}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	query, args, err := qb.Select("id", "name", "email").
		From("users").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build user view query", err)
	}

	var v queries.UserView
	err = r.db.QueryRow(ctx, query, args...).Scan(&v.ID, &v.Name, &v.Email)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &v, nil
}

func (r *UserReadStore) Snapshot(ctx context.Context, id uuid.UUID) (*commands.UserSnapshot, error) {
	view, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &commands.UserSnapshot{ID: view.ID, Name: view.Name, Email: view.Email}, nil
}

func (r *UserReadStore) EmailExists(ctx context.Context, email string) (bool, error) {
	query, args, err := qb.Select("1").
		From("users").
		Where("email = ?", email).
		ToSql()
	if err != nil {
		return false, infra.WrapRepoErr("failed to build email lookup", err)
	}

	var one int
	err = r.db.QueryRow(ctx, query, args...).Scan(&one)
	if err != nil {
		if infra.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to check email", err)
	}
	return true, nil
}

type userReaderAdapter struct {
	store *UserReadStore
}

func NewUserReader(db infra.DB) commands.UserReader {
	return &userReaderAdapter{store: NewUserReadStore(db)}
}

func (a *userReaderAdapter) FindByID(ctx context.Context, id uuid.UUID) (*commands.UserSnapshot, error) {
	return a.store.Snapshot(ctx, id)
}

func (a *userReaderAdapter) EmailExists(ctx context.Context, email string) (bool, error) {
	return a.store.EmailExists(ctx, email)
}
