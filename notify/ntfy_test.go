package notify

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNtfySend(t *testing.T) {
	var got *http.Request
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := NewNtfy(srv.URL, "zao-alerts", WithNtfyClient(srv.Client()))
	ok := n.Send(context.Background(), "Room available", "Hinakura is open", "https://example.com/book", UrgencyHigh)
	if !ok {
		t.Fatalf("expected send to succeed")
	}

	if got.URL.Path != "/zao-alerts" {
		t.Fatalf("expected topic path /zao-alerts, got %s", got.URL.Path)
	}
	if got.Header.Get("Title") != "Room available" {
		t.Fatalf("unexpected title %q", got.Header.Get("Title"))
	}
	if got.Header.Get("Priority") != "high" {
		t.Fatalf("unexpected priority %q", got.Header.Get("Priority"))
	}
	if got.Header.Get("Click") != "https://example.com/book" {
		t.Fatalf("unexpected click link %q", got.Header.Get("Click"))
	}
	if gotBody != "Hinakura is open" {
		t.Fatalf("unexpected body %q", gotBody)
	}
}

func TestNtfySend_NoLinkOmitsClickHeader(t *testing.T) {
	var click []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		click = r.Header.Values("Click")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := NewNtfy(srv.URL, "topic", WithNtfyClient(srv.Client()))
	if !n.Send(context.Background(), "subject", "body", "", UrgencyNormal) {
		t.Fatalf("expected send to succeed")
	}
	if len(click) != 0 {
		t.Fatalf("expected no Click header, got %v", click)
	}
}

func TestNtfySend_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	n := NewNtfy(srv.URL, "topic", WithNtfyClient(srv.Client()))
	if n.Send(context.Background(), "subject", "body", "", UrgencyHigh) {
		t.Fatalf("non-200 response must report failure")
	}
}

func TestNtfySend_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	n := NewNtfy(srv.URL, "topic")
	if n.Send(context.Background(), "subject", "body", "", UrgencyHigh) {
		t.Fatalf("unreachable server must report failure")
	}
}

func TestNoop(t *testing.T) {
	n := Noop{}
	if !n.Send(context.Background(), "s", "b", "", UrgencyNormal) {
		t.Fatalf("noop notifier must always report success")
	}
}
