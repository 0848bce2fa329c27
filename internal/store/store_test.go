package store

import (
	"context"
	"math"
	"testing"

	"gameshelf/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newDryRunStore builds statements without a live database. Counts come back
// as zero and finds as empty.
func newDryRunStore(t *testing.T) *Store {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=gameshelf dbname=gameshelf sslmode=disable",
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)
	return New(db)
}

func TestListEntries_HugePageIsEmpty(t *testing.T) {
	s := newDryRunStore(t)

	for _, page := range []int{math.MaxInt, math.MaxInt/20 + 2} {
		var (
			entries []models.CollectionEntry
			total   int64
			err     error
		)
		require.NotPanics(t, func() {
			entries, total, err = s.ListEntries(context.Background(), 1, models.StatusPlaying, page, 20)
		})
		require.NoError(t, err)
		assert.Empty(t, entries)
		assert.NotNil(t, entries)
		assert.Zero(t, total)
	}
}

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate(nil))
	assert.ErrorIs(t, translate(gorm.ErrRecordNotFound), ErrNotFound)
	assert.ErrorIs(t, translate(gorm.ErrDuplicatedKey), ErrDuplicate)
}
