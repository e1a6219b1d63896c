package activity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Decentr-net/socialdistribution/internal/entities"
)

func TestNewFollow(t *testing.T) {
	alice := &entities.Author{ID: uuid.MustParse("2c5c2b5e-8a3f-4a5b-9a55-1f7c0d2e9a01"), Host: "local", DisplayName: "alice"}
	bob := &entities.Author{ID: uuid.MustParse("7d1e6f3a-2b4c-4d5e-8f90-a1b2c3d4e5f6"), Host: "remote", DisplayName: "bob"}

	fr := &entities.FollowRequest{
		ID:          uuid.New(),
		Summary:     "bob wants to follow alice",
		FollowerID:  bob.ID,
		FollowingID: alice.ID,
	}

	b, err := json.Marshal(NewFollow(fr, map[uuid.UUID]*entities.Author{alice.ID: alice, bob.ID: bob}))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "Follow",
		"summary": "bob wants to follow alice",
		"actor": {
			"id": "7d1e6f3a-2b4c-4d5e-8f90-a1b2c3d4e5f6",
			"url": "",
			"host": "remote",
			"displayName": "bob",
			"github": "",
			"profileImage": ""
		},
		"object": {
			"id": "2c5c2b5e-8a3f-4a5b-9a55-1f7c0d2e9a01",
			"url": "",
			"host": "local",
			"displayName": "alice",
			"github": "",
			"profileImage": ""
		}
	}`, string(b))

	f := NewFollow(fr, map[uuid.UUID]*entities.Author{alice.ID: alice})
	assert.Nil(t, f.Actor)
	assert.Equal(t, "alice", f.Object.DisplayName)
}

func TestPost_ToPost(t *testing.T) {
	p := &entities.Post{
		ID:          uuid.New(),
		AuthorID:    uuid.New(),
		Title:       "title",
		ContentType: "text/plain",
		Content:     "content",
		Categories:  "a,b",
		Published:   time.Unix(100, 0).UTC(),
		Visibility:  entities.FriendsOnlyVisibility,
		Unlisted:    true,
	}

	v := FromPost(p)
	assert.Equal(t, PostType, v.Type)
	assert.Equal(t, p, v.ToPost())
}

func TestAuthor_ToAuthor(t *testing.T) {
	userID := uuid.New()
	a := &entities.Author{ID: uuid.New(), UserID: &userID, Host: "local", DisplayName: "alice", Bio: "bio"}

	got := FromAuthor(a).ToAuthor()
	assert.True(t, got.IsRemote())
	assert.Equal(t, a.ID, got.ID)
	assert.Empty(t, got.Bio)
}
