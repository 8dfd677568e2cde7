package bitbucket

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testCreds = Credentials{Username: "robert", AppPassword: "s3cret"}
	testRepo  = Repository{Workspace: "acme", Slug: "widgets"}
)

// recordedRequest captures what the fake API received
type recordedRequest struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
}

func newTestServer(t *testing.T, status int, body string) (*httptest.Server, *[]recordedRequest) {
	t.Helper()
	var got []recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		got = append(got, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Header: r.Header.Clone(),
			Body:   data,
		})
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &got
}

func TestNewClient(t *testing.T) {
	t.Run("defaults to the public API", func(t *testing.T) {
		c := NewClient("", "", nil, nil)
		assert.Equal(t, "https://api.bitbucket.org/2.0", c.baseURL)
	})

	t.Run("trims slashes", func(t *testing.T) {
		c := NewClient("http://localhost:8080/", "/2.0/", nil, nil)
		assert.Equal(t, "http://localhost:8080/2.0", c.baseURL)
	})
}

func TestCreateHook(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		srv, got := newTestServer(t, http.StatusCreated, `{"uuid":"{abc-123}","url":"https://hooks.example.com","active":true}`)
		c := NewClient(srv.URL, "2.0", srv.Client(), nil)

		resp, err := c.CreateHook(ctx, testCreds, testRepo, NewHook("https://hooks.example.com"))

		require.NoError(t, err)
		assert.Equal(t, "{abc-123}", resp.UUID)
		require.Len(t, *got, 1)

		req := (*got)[0]
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "/2.0/repositories/acme/widgets/hooks", req.Path)
		assert.Equal(t, "application/json", req.Header.Get("Accept"))
		assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
		assert.Equal(t, "Basic cm9iZXJ0OnMzY3JldA==", req.Header.Get("Authorization"))

		var sent Hook
		require.NoError(t, json.Unmarshal(req.Body, &sent))
		assert.Equal(t, "AWS webhook", sent.Description)
		assert.Equal(t, "https://hooks.example.com", sent.URL)
		assert.True(t, sent.Active)
		assert.Equal(t, []string{"repo:push", "pullrequest:created", "pullrequest:updated"}, sent.Events)
	})

	t.Run("error - bad request", func(t *testing.T) {
		srv, _ := newTestServer(t, http.StatusBadRequest, `{"type":"error"}`)
		c := NewClient(srv.URL, "2.0", srv.Client(), nil)

		_, err := c.CreateHook(ctx, testCreds, testRepo, NewHook("https://hooks.example.com"))

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidRequest)
		assert.Contains(t, err.Error(), "creating hook")
	})

	t.Run("error - network failure", func(t *testing.T) {
		srv, _ := newTestServer(t, http.StatusCreated, `{}`)
		c := NewClient(srv.URL, "2.0", srv.Client(), nil)
		srv.Close()

		_, err := c.CreateHook(ctx, testCreds, testRepo, NewHook("https://hooks.example.com"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "sending request")
		var statusErr *StatusError
		assert.False(t, errors.As(err, &statusErr))
	})
}

func TestUpdateHook(t *testing.T) {
	srv, got := newTestServer(t, http.StatusOK, `{"uuid":"{abc-123}"}`)
	c := NewClient(srv.URL, "2.0", srv.Client(), nil)

	_, err := c.UpdateHook(context.Background(), testCreds, testRepo, "{abc-123}", NewHook("https://new.example.com"))

	require.NoError(t, err)
	require.Len(t, *got, 1)
	assert.Equal(t, http.MethodPut, (*got)[0].Method)
	assert.Equal(t, "/2.0/repositories/acme/widgets/hooks/{abc-123}", (*got)[0].Path)

	var sent Hook
	require.NoError(t, json.Unmarshal((*got)[0].Body, &sent))
	assert.Equal(t, "https://new.example.com", sent.URL)
}

func TestDeleteHook(t *testing.T) {
	t.Run("success - empty body", func(t *testing.T) {
		srv, got := newTestServer(t, http.StatusNoContent, "")
		c := NewClient(srv.URL, "2.0", srv.Client(), nil)

		err := c.DeleteHook(context.Background(), testCreds, testRepo, "{abc-123}")

		require.NoError(t, err)
		require.Len(t, *got, 1)
		assert.Equal(t, http.MethodDelete, (*got)[0].Method)
		assert.Equal(t, "/2.0/repositories/acme/widgets/hooks/{abc-123}", (*got)[0].Path)
		assert.Empty(t, (*got)[0].Body)
	})

	t.Run("error - not found", func(t *testing.T) {
		srv, _ := newTestServer(t, http.StatusNotFound, "")
		c := NewClient(srv.URL, "2.0", srv.Client(), nil)

		err := c.DeleteHook(context.Background(), testCreds, testRepo, "{gone}")

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestGetHook(t *testing.T) {
	srv, got := newTestServer(t, http.StatusOK, `{"uuid":"{abc-123}","url":"https://remote.example.com"}`)
	c := NewClient(srv.URL, "2.0", srv.Client(), nil)

	hook, err := c.GetHook(context.Background(), testCreds, testRepo, "{abc-123}")

	require.NoError(t, err)
	assert.Equal(t, "https://remote.example.com", hook.URL)
	assert.Equal(t, http.MethodGet, (*got)[0].Method)
}
