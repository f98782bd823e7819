//go:build unit

package repository

import (
	"context"
	"testing"

	"pitch-booking/internal/infra"
	"pitch-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_FindByUsername(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name     string
		row      fakeRow
		wantErr  bool
		wantKind infra.RepositoryErrorKind
	}{
		{
			name: "success",
			row:  fakeRow{values: []any{id, "player_one", "player", true}},
		},
		{
			name:     "not found",
			row:      fakeRow{err: pgx.ErrNoRows},
			wantErr:  true,
			wantKind: infra.KindNotFound,
		},
		{
			name:     "database error",
			row:      fakeRow{err: assert.AnError},
			wantErr:  true,
			wantKind: infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dbtx := new(MockDBTX)
			dbtx.On("QueryRow", mock.Anything, selectUserByUsernameSQL, []any{"player_one"}).Return(tt.row)

			got, err := NewUserRepository().FindByUsername(context.Background(), dbtx, "player_one")

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
				return
			}
			require.NoError(t, err)
			want := builder.NewUserBuilder().With(func(b *builder.UserBuilder) { b.ID = id }).
				WithUsername("player_one").BuildSnapshot()
			assert.Equal(t, want, got)
		})
	}
}
