package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ctasbihas/portfolio/internal/blog"
	"github.com/ctasbihas/portfolio/internal/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", time.Second)
}

func TestLogin(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		var rq LoginRq
		require.NoError(t, json.NewDecoder(r.Body).Decode(&rq))
		assert.Equal(t, "me@example.com", rq.Email)
		io.WriteString(w, `{"success":true,"data":{"token":"tok-123"}}`)
	})

	token, err := c.Login(context.Background(), LoginRq{Email: "me@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
}

func TestLoginFailureCarriesMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"success":false,"message":"Invalid credentials"}`)
	})

	_, err := c.Login(context.Background(), LoginRq{})
	require.Error(t, err)
	assert.True(t, IsAPIError(err))
	assert.True(t, IsUnauthorized(err))
	assert.Equal(t, "Invalid credentials", Message(err, "Login failed"))
}

func TestSuccessFalseWithOKStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"success":false,"error":"Email already used"}`)
	})

	err := c.Signup(context.Background(), SignupRq{Email: "a@b.c"})
	require.Error(t, err)
	assert.Equal(t, "Email already used", Message(err, "Signup failed"))
}

func TestInvalidBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `<html>oops</html>`)
	})

	projects, err := c.ListProjects(context.Background())
	require.Error(t, err)
	assert.True(t, IsAPIError(err))
	assert.NotNil(t, projects)
	assert.Empty(t, projects)
}

func TestTransportFailureIsNotAPIError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, time.Second).ListUsers(context.Background())
	require.Error(t, err)
	assert.False(t, IsAPIError(err))
	assert.Equal(t, "Network error", Message(err, "Network error"))
}

func TestListProjectsIgnoresPagination(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"success":true,"data":[{"_id":"p1","title":"ZipRide","status":"Completed","techStacks":["Go"]}],"pagination":{"page":1,"limit":10,"total":1,"totalPages":1}}`)
	})

	projects, err := c.ListProjects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "p1", projects[0].ID)
	assert.Equal(t, project.StatusCompleted, projects[0].Status)
}

func TestMutationsSendBearerToken(t *testing.T) {
	var calls []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		calls = append(calls, r.Method+" "+r.URL.Path)
		io.WriteString(w, `{"success":true,"data":{"id":"b1","title":"t"}}`)
	})
	ctx := context.Background()

	_, err := c.CreateBlog(ctx, "secret", blog.Input{Title: "t", Content: "c"})
	require.NoError(t, err)
	_, err = c.UpdateBlog(ctx, "secret", "b1", blog.Input{Title: "t", Content: "c"})
	require.NoError(t, err)
	require.NoError(t, c.DeleteBlog(ctx, "secret", "b1"))
	_, err = c.UpdateProject(ctx, "secret", "p 1", project.Input{Title: "x"})
	require.NoError(t, err)
	require.NoError(t, c.DeleteProject(ctx, "secret", "p1"))

	assert.Equal(t, []string{
		"POST /blogs",
		"PATCH /blogs/b1",
		"DELETE /blogs/b1",
		"PATCH /projects/p 1",
		"DELETE /projects/p1",
	}, calls)
}

func TestNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	err := c.DeleteProject(context.Background(), "t", "missing")
	assert.True(t, IsNotFound(err))
	assert.Equal(t, "Not Found", Message(err, ""))
}
