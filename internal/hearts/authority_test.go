package hearts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oriolmontal/lingodrill/internal/challenge"
)

func TestHTTPAuthorityConsume(t *testing.T) {
	var gotBody consumeRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/hearts/consume", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(Response{HeartsRemaining: 2})
	}))
	defer srv.Close()

	a := NewHTTPAuthority(srv.URL)
	resp, err := a.Consume(context.Background(), "user-1", challenge.TypeMicroQuiz)
	require.NoError(t, err)

	assert.Equal(t, 2, resp.HeartsRemaining)
	assert.False(t, resp.OutOfHearts)
	assert.Equal(t, "user-1", gotBody.UserID)
	assert.Equal(t, string(challenge.TypeMicroQuiz), gotBody.ChallengeType)
}

func TestHTTPAuthorityConsume_OutOfHearts(t *testing.T) {
	next := time.Now().Add(30 * time.Minute).UTC().Truncate(time.Second)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(Response{
			HeartsRemaining: 0,
			OutOfHearts:     true,
			RefillInfo: &RefillInfo{
				NextRefillAt: next,
				WaitSeconds:  1800,
			},
		})
	}))
	defer srv.Close()

	a := NewHTTPAuthority(srv.URL)
	resp, err := a.Consume(context.Background(), "user-1", challenge.TypeSwipeFix)
	require.NoError(t, err)

	assert.True(t, resp.OutOfHearts)
	require.NotNil(t, resp.RefillInfo)
	assert.Equal(t, 1800, resp.RefillInfo.WaitSeconds)
	assert.True(t, resp.RefillInfo.NextRefillAt.Equal(next))
}

func TestHTTPAuthorityConsume_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := NewHTTPAuthority(srv.URL)
	_, err := a.Consume(context.Background(), "user-1", challenge.TypeMicroQuiz)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 500")
}

func TestHTTPAuthorityConsume_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(Response{HeartsRemaining: 4})
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := NewHTTPAuthority(srv.URL)
	_, err := a.Consume(ctx, "user-1", challenge.TypeMicroQuiz)
	require.Error(t, err)
}

func TestStubAuthority_DrainsToExhaustion(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Capacity = 2
	stub := NewStubAuthority(cfg)

	resp, err := stub.Consume(context.Background(), "user-1", challenge.TypeMicroQuiz)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.HeartsRemaining)
	assert.False(t, resp.OutOfHearts)

	resp, err = stub.Consume(context.Background(), "user-1", challenge.TypeMicroQuiz)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.HeartsRemaining)
	assert.True(t, resp.OutOfHearts)
	require.NotNil(t, resp.RefillInfo)
	assert.Equal(t, 2, stub.Calls)
}
