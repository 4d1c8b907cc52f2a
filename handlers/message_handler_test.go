// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"fmt"
	"net/http"
	"testing"
)

func TestGetMessagesEmpty(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/messages", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var list MessageListResponse
	decodeJSON(t, rec, &list)
	if list.Total != 0 || len(list.Data) != 0 {
		t.Errorf("Expected empty result, got %+v", list)
	}
	if list.Limit != 50 || list.Offset != 0 {
		t.Errorf("Expected default limit=50 offset=0, got limit=%d offset=%d", list.Limit, list.Offset)
	}
}

func TestGetMessagesOrdering(t *testing.T) {
	e, _ := newTestServer(t)

	// Two messages share a ts; message_id breaks the tie.
	postSignedWebhook(t, e, map[string]any{"message_id": "b", "from": "+10000000001", "to": "+20000000001", "ts": "2025-01-15T10:00:00Z", "text": "b"})
	postSignedWebhook(t, e, map[string]any{"message_id": "a", "from": "+10000000002", "to": "+20000000002", "ts": "2025-01-15T10:00:00Z", "text": "a"})
	postSignedWebhook(t, e, map[string]any{"message_id": "z", "from": "+10000000003", "to": "+20000000003", "ts": "2025-01-15T09:00:00Z", "text": "z"})

	rec := doRequest(e, http.MethodGet, "/messages", nil, nil)
	var list MessageListResponse
	decodeJSON(t, rec, &list)

	wantOrder := []string{"z", "a", "b"}
	if len(list.Data) != len(wantOrder) {
		t.Fatalf("Expected %d messages, got %d", len(wantOrder), len(list.Data))
	}
	for i, want := range wantOrder {
		if list.Data[i].MessageID != want {
			t.Errorf("Position %d: expected %s, got %s", i, want, list.Data[i].MessageID)
		}
	}
}

func TestGetMessagesPagination(t *testing.T) {
	e, _ := newTestServer(t)

	for i := 0; i < 5; i++ {
		postSignedWebhook(t, e, map[string]any{
			"message_id": fmt.Sprintf("m%d", i),
			"from":       "+10000000001",
			"to":         "+20000000001",
			"ts":         fmt.Sprintf("2025-01-15T10:0%d:00Z", i),
			"text":       "msg",
		})
	}

	var seen []string
	for offset := 0; offset < 6; offset += 2 {
		rec := doRequest(e, http.MethodGet, fmt.Sprintf("/messages?limit=2&offset=%d", offset), nil, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("Expected 200 at offset %d, got %d", offset, rec.Code)
		}
		var list MessageListResponse
		decodeJSON(t, rec, &list)
		if list.Total != 5 {
			t.Errorf("Expected total invariant at 5, got %d at offset %d", list.Total, offset)
		}
		if list.Limit != 2 || list.Offset != offset {
			t.Errorf("Expected echo of limit=2 offset=%d, got limit=%d offset=%d", offset, list.Limit, list.Offset)
		}
		for _, m := range list.Data {
			seen = append(seen, m.MessageID)
		}
	}

	if len(seen) != 5 {
		t.Fatalf("Expected union of pages to be 5 messages, got %d: %v", len(seen), seen)
	}
	for i, id := range seen {
		if want := fmt.Sprintf("m%d", i); id != want {
			t.Errorf("Position %d: expected %s, got %s", i, want, id)
		}
	}
}

func TestGetMessagesParamBounds(t *testing.T) {
	e, _ := newTestServer(t)

	for _, target := range []string{
		"/messages?limit=0",
		"/messages?limit=101",
		"/messages?limit=abc",
		"/messages?offset=-1",
		"/messages?offset=abc",
		"/messages?since=not-a-timestamp",
	} {
		rec := doRequest(e, http.MethodGet, target, nil, nil)
		if rec.Code != http.StatusUnprocessableEntity {
			t.Errorf("Expected 422 for %s, got %d", target, rec.Code)
		}
	}

	// Boundary values are accepted.
	for _, target := range []string{
		"/messages?limit=1",
		"/messages?limit=100",
		"/messages?offset=0",
	} {
		rec := doRequest(e, http.MethodGet, target, nil, nil)
		if rec.Code != http.StatusOK {
			t.Errorf("Expected 200 for %s, got %d", target, rec.Code)
		}
	}
}

func TestGetMessagesFilterQueries(t *testing.T) {
	e, _ := newTestServer(t)

	postSignedWebhook(t, e, map[string]any{"message_id": "m1", "from": "+10000000001", "to": "+20000000001", "ts": "2025-01-15T09:00:00Z", "text": "Hello World"})
	postSignedWebhook(t, e, map[string]any{"message_id": "m2", "from": "+10000000002", "to": "+20000000001", "ts": "2025-01-15T10:00:00Z", "text": "goodbye world"})
	postSignedWebhook(t, e, map[string]any{"message_id": "m3", "from": "+10000000001", "to": "+20000000001", "ts": "2025-01-15T11:00:00Z", "text": "unrelated"})

	rec := doRequest(e, http.MethodGet, "/messages?from=%2B10000000001", nil, nil)
	var list MessageListResponse
	decodeJSON(t, rec, &list)
	if list.Total != 2 {
		t.Errorf("Expected 2 messages from sender, got %d", list.Total)
	}

	rec = doRequest(e, http.MethodGet, "/messages?since=2025-01-15T10:00:00Z", nil, nil)
	decodeJSON(t, rec, &list)
	if list.Total != 2 {
		t.Errorf("Expected 2 messages since 10:00 inclusive, got %d", list.Total)
	}

	rec = doRequest(e, http.MethodGet, "/messages?q=WORLD", nil, nil)
	decodeJSON(t, rec, &list)
	if list.Total != 2 {
		t.Errorf("Expected case-insensitive text search to match 2 messages, got %d", list.Total)
	}
}
