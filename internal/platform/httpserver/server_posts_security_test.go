package httpserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	posthttp "inkwell/contexts/publishing/post-service/transport/http"
)

func createPost(t *testing.T, server *Server, token string, body string) posthttp.PostDTO {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/posts", bytes.NewReader([]byte(body)))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}

	var dto posthttp.PostDTO
	if err := json.Unmarshal(rr.Body.Bytes(), &dto); err != nil {
		t.Fatalf("decode created post: %v", err)
	}
	return dto
}

func TestCreateThenFetchPost(t *testing.T) {
	server, _ := newTestServer()
	token := login(t, server, 42)

	created := createPost(t, server, token, `{"title":"first","content":"hello"}`)
	if created.ID == 0 {
		t.Fatal("expected a store-assigned id")
	}
	if created.Published {
		t.Fatal("expected new post to default to unpublished")
	}

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/posts/%d", created.ID), nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	var fetched posthttp.PostDTO
	if err := json.Unmarshal(rr.Body.Bytes(), &fetched); err != nil {
		t.Fatalf("decode fetched post: %v", err)
	}
	if fetched != created {
		t.Fatalf("fetched post %+v differs from created %+v", fetched, created)
	}
}

func TestCreateRejectsBlankTitle(t *testing.T) {
	server, _ := newTestServer()
	token := login(t, server, 42)

	req := httptest.NewRequest(http.MethodPost, "/posts", bytes.NewReader([]byte(`{"title":"   ","content":"hello"}`)))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestGetUnknownPostReturnsNotFound(t *testing.T) {
	server, _ := newTestServer()
	token := login(t, server, 42)

	req := httptest.NewRequest(http.MethodGet, "/posts/999", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}

	var resp posthttp.ErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if resp.Code != "post_not_found" {
		t.Fatalf("expected post_not_found code, got %q", resp.Code)
	}
}

func TestListFiltersByPublishedToken(t *testing.T) {
	server, _ := newTestServer()
	token := login(t, server, 42)

	createPost(t, server, token, `{"title":"draft","content":"a"}`)
	createPost(t, server, token, `{"title":"live","content":"b","published":true}`)

	req := httptest.NewRequest(http.MethodGet, "/posts?published=on&limit=10", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	var posts []posthttp.PostDTO
	if err := json.Unmarshal(rr.Body.Bytes(), &posts); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(posts) != 1 || posts[0].Title != "live" {
		t.Fatalf("expected only the published post, got %+v", posts)
	}

	req = httptest.NewRequest(http.MethodGet, "/posts?published=off&limit=10", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &posts); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(posts) != 1 || posts[0].Title != "draft" {
		t.Fatalf("expected only the draft post, got %+v", posts)
	}
}

func TestListRejectsUnknownPublishedToken(t *testing.T) {
	server, _ := newTestServer()
	token := login(t, server, 42)

	req := httptest.NewRequest(http.MethodGet, "/posts?published=sideways&limit=10", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestListRequiresPositiveLimit(t *testing.T) {
	server, _ := newTestServer()
	token := login(t, server, 42)

	for _, target := range []string{
		"/posts?published=on",
		"/posts?published=on&limit=0",
		"/posts?published=on&limit=-3",
		"/posts?published=on&limit=abc",
	} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		req.Header.Set("Authorization", "Bearer "+token)

		rr := httptest.NewRecorder()
		server.mux.ServeHTTP(rr, req)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %q, got %d body=%s", target, rr.Code, rr.Body.String())
		}
	}
}

func TestListPaginationWindow(t *testing.T) {
	server, _ := newTestServer()
	token := login(t, server, 42)

	for _, title := range []string{"one", "two", "three", "four"} {
		createPost(t, server, token, fmt.Sprintf(`{"title":%q,"content":"c"}`, title))
	}

	req := httptest.NewRequest(http.MethodGet, "/posts?published=off&limit=2&skip=1", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	var posts []posthttp.PostDTO
	if err := json.Unmarshal(rr.Body.Bytes(), &posts); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(posts) != 2 || posts[0].Title != "two" || posts[1].Title != "three" {
		t.Fatalf("expected window [two three], got %+v", posts)
	}
}

func TestPatchUpdatesOnlySuppliedFields(t *testing.T) {
	server, _ := newTestServer()
	token := login(t, server, 42)

	created := createPost(t, server, token, `{"title":"original","content":"body"}`)

	req := httptest.NewRequest(http.MethodPatch, fmt.Sprintf("/posts/%d", created.ID), bytes.NewReader([]byte(`{"title":"renamed"}`)))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	var updated posthttp.PostDTO
	if err := json.Unmarshal(rr.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode updated post: %v", err)
	}
	if updated.Title != "renamed" {
		t.Fatalf("expected renamed title, got %q", updated.Title)
	}
	if updated.Content != "body" {
		t.Fatalf("expected untouched content, got %q", updated.Content)
	}
}

func TestPatchUnknownPostReturnsNotFound(t *testing.T) {
	server, _ := newTestServer()
	token := login(t, server, 42)

	req := httptest.NewRequest(http.MethodPatch, "/posts/999", bytes.NewReader([]byte(`{"title":"renamed"}`)))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestDeleteThenFetchReturnsNotFound(t *testing.T) {
	server, _ := newTestServer()
	token := login(t, server, 42)

	created := createPost(t, server, token, `{"title":"gone","content":"c"}`)

	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/posts/%d", created.ID), nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d body=%s", rr.Code, rr.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, fmt.Sprintf("/posts/%d", created.ID), nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestDeleteUnknownPostReturnsNotFound(t *testing.T) {
	server, _ := newTestServer()
	token := login(t, server, 42)

	req := httptest.NewRequest(http.MethodDelete, "/posts/999", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestInvalidPostIDRejected(t *testing.T) {
	server, _ := newTestServer()
	token := login(t, server, 42)

	req := httptest.NewRequest(http.MethodGet, "/posts/not-a-number", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}
