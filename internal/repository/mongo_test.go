package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerpath/careerpath-go/internal/model"
)

// newTestMongo connects to MONGO_TEST_URL and returns a throwaway database.
func newTestMongo(t *testing.T) (*MongoUserRepository, *MongoProfileRepository, *MongoChatRepository) {
	t.Helper()
	uri := os.Getenv("MONGO_TEST_URL")
	if uri == "" {
		t.Skip("MONGO_TEST_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, db, err := NewMongo(ctx, uri, "careerpath_test_"+uuid.NewString()[:8])
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})
	require.NoError(t, EnsureIndexes(ctx, db))

	return NewMongoUserRepository(db), NewMongoProfileRepository(db), NewMongoChatRepository(db)
}

func TestMongoStores(t *testing.T) {
	users, profiles, chats := newTestMongo(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	user := &model.User{ID: uuid.NewString(), Email: "a@x.com", Name: "A", PasswordHash: "h", CreatedAt: now}
	require.NoError(t, users.Create(ctx, user))
	assert.ErrorIs(t, users.Create(ctx, &model.User{ID: uuid.NewString(), Email: "a@x.com"}), ErrDuplicateEmail)

	_, err := profiles.GetByUserID(ctx, user.ID)
	assert.ErrorIs(t, err, ErrProfileNotFound)

	require.NoError(t, profiles.Upsert(ctx, &model.Profile{UserID: user.ID, AcademicLevel: "high_school", Subjects: []string{"Physics"}, UpdatedAt: now}))
	require.NoError(t, profiles.Upsert(ctx, &model.Profile{UserID: user.ID, AcademicLevel: "undergraduate", Subjects: []string{"History"}, UpdatedAt: now}))

	p, err := profiles.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "undergraduate", p.AcademicLevel)
	assert.Equal(t, []string{"History"}, p.Subjects)

	got, err := users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, got.ProfileCompleted)

	for i := range 3 {
		require.NoError(t, chats.Append(ctx, &model.ChatMessage{
			ID: uuid.NewString(), UserID: user.ID, Message: "q", Response: "r",
			Timestamp: now.Add(time.Duration(i) * time.Second),
		}))
	}
	recent, err := chats.ListRecent(ctx, user.ID, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.True(t, recent[0].Timestamp.After(recent[1].Timestamp))
}
