package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alcyxob/trainer-console/internal/domain"
	"alcyxob/trainer-console/internal/idgen"
	"alcyxob/trainer-console/internal/repository"
)

func TestStudentCRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewStudentRepository(idgen.NewSequence("s"))

	s := &domain.Student{Name: "Ana", Age: 28, Weight: 60, Height: 1.65, Gender: domain.GenderFemale, Phone: "11987654321"}
	id, err := repo.Create(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, "s-1", id)

	s.Weight = 58
	require.NoError(t, repo.Update(ctx, s))
	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 58.0, got.Weight)

	list, _ := repo.List(ctx)
	assert.Len(t, list, 1)

	require.NoError(t, repo.Delete(ctx, id))
	_, err = repo.GetByID(ctx, id)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, s), repository.ErrNotFound)
}

func TestUserRepositoryUniqueEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(idgen.NewSequence("u"))

	_, err := repo.Create(ctx, &domain.User{Name: "Coach", Email: "coach@example.com", PasswordHash: "h"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &domain.User{Name: "Other", Email: "COACH@example.com", PasswordHash: "h"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	u, err := repo.GetByEmail(ctx, "Coach@Example.com")
	require.NoError(t, err)
	assert.Equal(t, "Coach", u.Name)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
