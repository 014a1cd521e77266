package backendclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/shared/authorization"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

func testActor() authorization.Actor {
	return authorization.Actor{UserID: 7, Role: authorization.RoleStaff}
}

func TestClient_ListTickets_SendsActorParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tickets", r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("user_id"))
		assert.Equal(t, "false", r.URL.Query().Get("is_admin"))
		assert.Equal(t, "true", r.URL.Query().Get("is_staff"))
		_ = json.NewEncoder(w).Encode([]Ticket{{ID: 1, Title: "printer on fire", Status: "open", CreatorID: 7}})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, logger.NewLogger())
	tickets, err := client.ListTickets(context.Background(), testActor())

	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, "printer on fire", tickets[0].Title)
}

func TestClient_GetTicket_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"type":"NOT_FOUND","message":"ticket not found"}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, logger.NewLogger())
	ticket, err := client.GetTicket(context.Background(), 404)

	require.Error(t, err)
	assert.Nil(t, ticket)
	assert.True(t, apperrors.IsNotFoundError(err))
	assert.Contains(t, err.Error(), "ticket not found")
}

func TestClient_Login_InvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"type":"UNAUTHORIZED","message":"invalid username or password"}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, logger.NewLogger())
	user, err := client.Login(context.Background(), "agent", "wrong")

	require.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, apperrors.IsUnauthorizedError(err))
}

func TestClient_AddReport_Multipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "attaching log", r.FormValue("comment"))
		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		assert.Equal(t, "crash.log", header.Filename)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, logger.NewLogger())
	err := client.AddReport(context.Background(), testActor(), 7, "attaching log", "crash.log", strings.NewReader("panic: oops"))

	require.NoError(t, err)
}

func TestClient_AddReport_NoFileOmitsPart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, _, err := r.FormFile("file")
		assert.Error(t, err)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, logger.NewLogger())
	err := client.AddReport(context.Background(), testActor(), 7, "just a comment", "", nil)

	require.NoError(t, err)
}

func TestClient_BackendDown(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", logger.NewLogger())
	_, err := client.ListTickets(context.Background(), testActor())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "backend unavailable")
}
