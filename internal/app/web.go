// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/relabs-tech/badge_l0dables/internal/config"
	"github.com/relabs-tech/badge_l0dables/internal/env"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for local development
	},
}

const wsWriteTimeout = 2 * time.Second

// sampleHub keeps the latest sample and the extremes seen by the web
// server, and streams every new sample to the connected WebSocket clients.
type sampleHub struct {
	mu      sync.RWMutex
	last    env.Sample
	have    bool
	ext     *env.Extremes
	clients map[*websocket.Conn]struct{}
}

func newSampleHub() *sampleHub {
	return &sampleHub{clients: map[*websocket.Conn]struct{}{}}
}

// envSummary is the /api/env payload.
type envSummary struct {
	Sample env.Sample `json:"sample"`
	MaxDC  int32      `json:"max_temp_dc"`
	MinDC  int32      `json:"min_temp_dc"`
	MaxPa  int32      `json:"max_pressure_pa"`
	MinPa  int32      `json:"min_pressure_pa"`
}

func (h *sampleHub) publish(s env.Sample) {
	h.mu.Lock()
	h.last = s
	if !h.have {
		h.ext = env.NewExtremes(s)
	} else {
		h.ext.Observe(s)
	}
	h.have = true
	clients := make([]*websocket.Conn, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		c.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
		if err := c.WriteJSON(s); err != nil {
			log.Printf("web: websocket write error: %v", err)
			h.drop(c)
		}
	}
}

func (h *sampleHub) drop(c *websocket.Conn) {
	h.mu.Lock()
	_, ok := h.clients[c]
	delete(h.clients, c)
	h.mu.Unlock()
	if ok {
		c.Close()
	}
}

func (h *sampleHub) resetExtremes(upper bool) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.have {
		return false
	}
	if upper {
		h.ext.ResetMax()
	} else {
		h.ext.ResetMin()
	}
	return true
}

// handleEnv serves the latest sample with the running extremes.
func (h *sampleHub) handleEnv(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if !h.have {
		http.Error(w, "no data yet", http.StatusServiceUnavailable)
		return
	}
	summary := envSummary{
		Sample: h.last,
		MaxDC:  h.ext.MaxDeciCelsius,
		MinDC:  h.ext.MinDeciCelsius,
		MaxPa:  h.ext.MaxPascal,
		MinPa:  h.ext.MinPascal,
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(summary); err != nil {
		log.Printf("web: json encode error: %v", err)
	}
}

// handleReset resets the max (?what=max) or min (?what=min) extremes.
func (h *sampleHub) handleReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}
	var upper bool
	switch r.URL.Query().Get("what") {
	case "max":
		upper = true
	case "min":
	default:
		http.Error(w, "what must be max or min", http.StatusBadRequest)
		return
	}
	if !h.resetExtremes(upper) {
		http.Error(w, "no data yet", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleWS streams samples to the client until it goes away.
func (h *sampleHub) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("web: websocket upgrade error: %v", err)
		return
	}
	h.mu.RLock()
	last, have := h.last, h.have
	h.mu.RUnlock()
	if have {
		conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
		if err := conn.WriteJSON(last); err != nil {
			conn.Close()
			return
		}
	}
	// Registered only now so that publish is the single writer.
	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()

	// Reads only detect the close; clients do not send anything.
	for {
		if _, _, err := conn.NextReader(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("web: websocket error: %v", err)
			}
			h.drop(conn)
			return
		}
	}
}

func (h *sampleHub) routes(mux *http.ServeMux) {
	mux.HandleFunc("/api/env", h.handleEnv)
	mux.HandleFunc("/api/reset", h.handleReset)
	mux.HandleFunc("/ws", h.handleWS)
}

// RunWeb serves the latest logger samples over HTTP and WebSocket.
func RunWeb() error {
	cfg := config.Get()
	if cfg.MQTTBroker == "" {
		return fmt.Errorf("MQTT_BROKER is required for the web server")
	}
	client, err := connectMQTT(cfg.MQTTBroker, cfg.MQTTClientIDWeb)
	if err != nil {
		return err
	}
	defer client.Disconnect(250)

	hub := newSampleHub()
	if err := subscribeSamples(client, cfg.TopicBMP, "web", hub.publish); err != nil {
		return err
	}

	mux := http.NewServeMux()
	hub.routes(mux)
	// Static files from ./web as the root
	mux.Handle("/", http.FileServer(http.Dir("web")))

	addr := fmt.Sprintf(":%d", cfg.WebServerPort)
	log.Printf("web: listening on %s", addr)
	return http.ListenAndServe(addr, mux)
}
