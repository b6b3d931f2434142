package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nikhilsahni7/medquery/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryAppend(t *testing.T) {
	repo := NewHistoryRepository(setupTestDB(t))
	ctx := context.Background()
	userID := uuid.New()

	before := time.Now().UTC()
	record, err := repo.Append(ctx, userID, "fever and cough", "Rest and fluids.", "en")
	require.NoError(t, err)

	assert.Equal(t, userID, record.UserID)
	assert.Equal(t, "fever and cough", record.Question)
	assert.Equal(t, "Rest and fluids.", record.Answer)
	assert.Equal(t, "en", record.Language)
	assert.False(t, record.Timestamp.Before(before))
}

func TestHistoryListNewestFirst(t *testing.T) {
	repo := NewHistoryRepository(setupTestDB(t))
	ctx := context.Background()
	userID := uuid.New()

	for _, q := range []string{"first", "second", "third"} {
		_, err := repo.Append(ctx, userID, q, "answer", "en")
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)
	}

	records, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "third", records[0].Question)
	assert.Equal(t, "second", records[1].Question)
	assert.Equal(t, "first", records[2].Question)

	for i := 1; i < len(records); i++ {
		assert.False(t, records[i-1].Timestamp.Before(records[i].Timestamp))
	}
}

func TestHistoryListOwnRecordsOnly(t *testing.T) {
	repo := NewHistoryRepository(setupTestDB(t))
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	_, err := repo.Append(ctx, alice, "alice question", "a", "en")
	require.NoError(t, err)
	_, err = repo.Append(ctx, bob, "bob question", "b", "en")
	require.NoError(t, err)

	records, err := repo.ListByUser(ctx, alice)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "alice question", records[0].Question)

	records, err = repo.ListByUser(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestHistoryListStableOnEqualTimestamps(t *testing.T) {
	db := setupTestDB(t)
	repo := NewHistoryRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	// Insert two records sharing one timestamp directly; the id tie-break
	// must keep the listing deterministic.
	ts := time.Now().UTC()
	for _, q := range []string{"tied-a", "tied-b"} {
		record := models.QueryRecord{
			UserID:    userID,
			Question:  q,
			Answer:    "answer",
			Language:  "en",
			Timestamp: ts,
		}
		require.NoError(t, db.Create(&record).Error)
	}

	first, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	second, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.Equal(t, first[1].ID, second[1].ID)
}
