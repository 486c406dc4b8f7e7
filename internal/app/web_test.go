// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/relabs-tech/badge_l0dables/internal/env"
)

func newTestServer(t *testing.T) (*sampleHub, *httptest.Server) {
	t.Helper()
	hub := newSampleHub()
	mux := http.NewServeMux()
	hub.routes(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return hub, srv
}

func TestWebEnvBeforeData(t *testing.T) {
	_, srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/api/env")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestWebEnvAndReset(t *testing.T) {
	hub, srv := newTestServer(t)
	hub.publish(sample(150, 69964))
	hub.publish(sample(160, 69000))

	get := func() envSummary {
		resp, err := http.Get(srv.URL + "/api/env")
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()
		var s envSummary
		if err := json.NewDecoder(resp.Body).Decode(&s); err != nil {
			t.Fatal(err)
		}
		return s
	}
	s := get()
	if s.Sample.DeciCelsius != 160 || s.MaxDC != 160 || s.MinDC != 150 || s.MinPa != 69000 || s.MaxPa != 69964 {
		t.Fatalf("summary %+v", s)
	}

	resp, err := http.Post(srv.URL+"/api/reset?what=min", "", nil)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("reset status = %d", resp.StatusCode)
	}
	if s := get(); s.MinDC != 160 || s.MinPa != 69000 {
		t.Fatalf("after reset %+v", s)
	}

	resp, err = http.Post(srv.URL+"/api/reset?what=avg", "", nil)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad reset status = %d", resp.StatusCode)
	}
}

func TestWebSocketStream(t *testing.T) {
	hub, srv := newTestServer(t)
	hub.publish(sample(150, 69964))

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	var first env.Sample
	if err := conn.ReadJSON(&first); err != nil {
		t.Fatal(err)
	}
	if first.Pascal != 69964 {
		t.Fatalf("first = %+v", first)
	}

	// Wait until the handler registered the client.
	deadline := time.Now().Add(2 * time.Second)
	for {
		hub.mu.RLock()
		n := len(hub.clients)
		hub.mu.RUnlock()
		if n == 1 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}

	hub.publish(sample(151, 69950))
	var next env.Sample
	if err := conn.ReadJSON(&next); err != nil {
		t.Fatal(err)
	}
	if next.DeciCelsius != 151 || next.Pascal != 69950 {
		t.Fatalf("next = %+v", next)
	}
}
