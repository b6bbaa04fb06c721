package threads

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rocketapi/pkg/api"
	"rocketapi/pkg/errors"
	"rocketapi/pkg/logger"
)

// recordedRequest captures one endpoint call seen by the fake service
type recordedRequest struct {
	Path    string
	Auth    string
	Payload map[string]interface{}
}

// newTestAPI starts a fake RocketAPI service that answers every call
// with the given body wrapped in a success envelope.
func newTestAPI(t *testing.T, body string) (*API, *[]recordedRequest) {
	t.Helper()

	var requests []recordedRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var p map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		requests = append(requests, recordedRequest{
			Path:    r.URL.Path,
			Auth:    r.Header.Get("Authorization"),
			Payload: p,
		})
		fmt.Fprintf(w, `{"status":"done","response":{"status_code":200,"content_type":"application/json","body":%s}}`, body)
	}))
	t.Cleanup(server.Close)

	client := api.NewClient("test-token", 5*time.Second, logger.NewTestLogger())
	client.SetBaseURL(server.URL)
	return NewWithClient(client), &requests
}

func TestGetUserInfo(t *testing.T) {
	th, requests := newTestAPI(t, `{
		"user": {"pk": 314216, "username": "zuck", "full_name": "Mark Zuckerberg",
			"is_verified": true, "follower_count": 2900000},
		"status": "ok"
	}`)

	info, err := th.GetUserInfo(context.Background(), 314216)
	require.NoError(t, err)

	assert.Equal(t, "zuck", info.User.Username)
	assert.True(t, info.User.IsVerified)

	req := (*requests)[0]
	assert.Equal(t, "/threads/user/get_info", req.Path)
	assert.Equal(t, "Token test-token", req.Auth)
	assert.Equal(t, float64(314216), req.Payload["id"])
}

func TestGetUserFeed(t *testing.T) {
	body := `{
		"threads": [
			{"id": "thread-1", "thread_items": [
				{"post": {"pk": 1, "code": "Cu1", "like_count": 42,
					"caption": {"text": "hello threads"},
					"user": {"pk": 314216, "username": "zuck"}}}
			]}
		],
		"next_max_id": "feedcursor",
		"status": "ok"
	}`

	t.Run("first page", func(t *testing.T) {
		th, requests := newTestAPI(t, body)

		feed, err := th.GetUserFeed(context.Background(), 314216, "")
		require.NoError(t, err)

		require.Len(t, feed.Threads, 1)
		require.Len(t, feed.Threads[0].ThreadItems, 1)
		post := feed.Threads[0].ThreadItems[0].Post
		assert.Equal(t, "hello threads", post.Caption.Text)
		assert.Equal(t, 42, post.LikeCount)
		assert.Equal(t, "feedcursor", feed.NextMaxID)

		req := (*requests)[0]
		assert.Equal(t, "/threads/user/get_feed", req.Path)
		assert.NotContains(t, req.Payload, "max_id")
	})

	t.Run("with cursor", func(t *testing.T) {
		th, requests := newTestAPI(t, body)

		_, err := th.GetUserFeed(context.Background(), 314216, "feedcursor")
		require.NoError(t, err)
		assert.Equal(t, "feedcursor", (*requests)[0].Payload["max_id"])
	})
}

func TestSearchUsers(t *testing.T) {
	th, requests := newTestAPI(t, `{
		"num_results": 1,
		"users": [{"pk": 314216, "username": "zuck"}],
		"rank_token": "rank-1",
		"page_token": "page-1",
		"has_more": true,
		"status": "ok"
	}`)

	t.Run("query only", func(t *testing.T) {
		result, err := th.SearchUsers(context.Background(), "zuck", "", "")
		require.NoError(t, err)

		assert.Equal(t, 1, result.NumResults)
		assert.True(t, result.HasMore)
		assert.Equal(t, "rank-1", result.RankToken)

		req := (*requests)[0]
		assert.Equal(t, "/threads/search_users", req.Path)
		assert.Equal(t, "zuck", req.Payload["query"])
		assert.NotContains(t, req.Payload, "rank_token")
		assert.NotContains(t, req.Payload, "page_token")
	})

	t.Run("pagination tokens forwarded", func(t *testing.T) {
		_, err := th.SearchUsers(context.Background(), "zuck", "rank-1", "page-1")
		require.NoError(t, err)

		req := (*requests)[1]
		assert.Equal(t, "rank-1", req.Payload["rank_token"])
		assert.Equal(t, "page-1", req.Payload["page_token"])
	})
}

func TestGetUserReplies(t *testing.T) {
	th, requests := newTestAPI(t, `{"threads":[],"status":"ok"}`)

	_, err := th.GetUserReplies(context.Background(), 314216, "rcursor")
	require.NoError(t, err)

	req := (*requests)[0]
	assert.Equal(t, "/threads/user/get_replies", req.Path)
	assert.Equal(t, "rcursor", req.Payload["max_id"])
}

func TestFollowersAndFollowing(t *testing.T) {
	body := `{"users":[{"pk":1,"username":"a"}],"next_max_id":"n1","status":"ok"}`

	t.Run("followers", func(t *testing.T) {
		th, requests := newTestAPI(t, body)

		list, err := th.GetUserFollowers(context.Background(), 314216, "")
		require.NoError(t, err)
		assert.Len(t, list.Users, 1)
		assert.Equal(t, "/threads/user/get_followers", (*requests)[0].Path)
	})

	t.Run("search following", func(t *testing.T) {
		th, requests := newTestAPI(t, body)

		_, err := th.SearchUserFollowing(context.Background(), 314216, "alice")
		require.NoError(t, err)

		req := (*requests)[0]
		assert.Equal(t, "/threads/user/get_following", req.Path)
		assert.Equal(t, "alice", req.Payload["query"])
	})
}

func TestGetThreadReplies(t *testing.T) {
	body := `{"containing_thread":{"id":"thread-1"},"reply_threads":[],"paging_tokens":{"downwards":"down-1"}}`
	th, requests := newTestAPI(t, body)

	raw, err := th.GetThreadReplies(context.Background(), 555, "down-0")
	require.NoError(t, err)
	assert.JSONEq(t, body, string(raw))

	req := (*requests)[0]
	assert.Equal(t, "/threads/thread/get_replies", req.Path)
	assert.Equal(t, float64(555), req.Payload["id"])
	assert.Equal(t, "down-0", req.Payload["max_id"])
}

func TestGetThreadLikes(t *testing.T) {
	th, requests := newTestAPI(t, `{"users":[{"pk":2,"username":"liker"}],"user_count":1,"status":"ok"}`)

	likes, err := th.GetThreadLikes(context.Background(), 555)
	require.NoError(t, err)
	assert.Equal(t, 1, likes.UserCount)
	assert.Equal(t, "liker", likes.Users[0].Username)
	assert.Equal(t, "/threads/thread/get_likes", (*requests)[0].Path)
}

func TestInnerErrorSurfacesKind(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":"done","response":{"status_code":404,"content_type":"application/json","body":null}}`)
	}))
	t.Cleanup(server.Close)

	client := api.NewClient("test-token", 5*time.Second, logger.NewTestLogger())
	client.SetBaseURL(server.URL)
	th := NewWithClient(client)

	info, err := th.GetUserInfo(context.Background(), 1)
	assert.Nil(t, info)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}
