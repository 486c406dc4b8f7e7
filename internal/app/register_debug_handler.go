// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"

	"github.com/relabs-tech/badge_l0dables/internal/bmp085"
	"github.com/relabs-tech/badge_l0dables/internal/sensors"
)

// RegisterDevice is the part of the BMP085 driver the debugger uses.
type RegisterDevice interface {
	ReadRegisters(reg byte, n int) ([]byte, error)
	WriteControl(cmd byte) error
	ReadRawTemperature() (int16, error)
	ReadRawPressure() (int32, error)
	Calibration() bmp085.Calibration
	Oversampling() bmp085.Oversampling
}

// RegisterDebugger serves a WebSocket for inspecting BMP085 registers.
type RegisterDebugger struct {
	dev RegisterDevice
}

// NewRegisterDebugger returns a debugger for dev.
func NewRegisterDebugger(dev RegisterDevice) *RegisterDebugger {
	return &RegisterDebugger{dev: dev}
}

// Commands, all sent as {"action": ...}
type registerCmd struct {
	Action  string `json:"action"` // "get_map", "read", "read_all", "write", "calibration", "measure"
	Address string `json:"addr,omitempty"`
	Value   string `json:"value,omitempty"`
}

// RegisterResponse is every message sent back to the client.
type RegisterResponse struct {
	Type        string                 `json:"type"` // "register_map", "register_data", "calibration", "measurement", "status", "error"
	Address     string                 `json:"addr,omitempty"`
	Value       string                 `json:"value,omitempty"`
	Registers   map[string]string      `json:"registers,omitempty"`
	RegisterMap []sensors.RegisterInfo `json:"register_map,omitempty"`
	Calibration *bmp085.Calibration    `json:"calibration,omitempty"`
	Measurement *rawMeasurement        `json:"measurement,omitempty"`
	Timestamp   string                 `json:"timestamp,omitempty"`
	Message     string                 `json:"message,omitempty"`
}

type rawMeasurement struct {
	UT           int16  `json:"ut"`
	UP           int32  `json:"up"`
	Oversampling string `json:"oss"`
	DeciCelsius  int32  `json:"temp_dc"`
	Pascal       int32  `json:"pressure_pa"`
}

// HandleWS handles one debugger connection.
func (d *RegisterDebugger) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("register_debug: websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	// Send register map on connection
	if err := conn.WriteJSON(d.registerMap()); err != nil {
		log.Printf("register_debug: error sending register map: %v", err)
		return
	}

	for {
		var cmd registerCmd
		if err := conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("register_debug: websocket error: %v", err)
			}
			return
		}
		if err := conn.WriteJSON(d.handle(cmd)); err != nil {
			log.Printf("register_debug: write error: %v", err)
			return
		}
	}
}

func (d *RegisterDebugger) handle(cmd registerCmd) RegisterResponse {
	switch cmd.Action {
	case "get_map":
		return d.registerMap()
	case "read":
		return d.read(cmd.Address)
	case "read_all":
		return d.readAll()
	case "write":
		return d.write(cmd.Address, cmd.Value)
	case "calibration":
		cal := d.dev.Calibration()
		return RegisterResponse{Type: "calibration", Calibration: &cal, Timestamp: now()}
	case "measure":
		return d.measure()
	case "":
		return errorResponse("missing or invalid action field")
	default:
		return errorResponse(fmt.Sprintf("unknown action: %s", cmd.Action))
	}
}

func (d *RegisterDebugger) registerMap() RegisterResponse {
	return RegisterResponse{Type: "register_map", RegisterMap: sensors.BMP085RegisterMap()}
}

func (d *RegisterDebugger) read(addr string) RegisterResponse {
	reg, err := parseHexByte(addr)
	if err != nil {
		return errorResponse(fmt.Sprintf("invalid address format: %s", addr))
	}
	width := 1
	for _, info := range sensors.BMP085RegisterMap() {
		if a, err := parseHexByte(info.Address); err == nil && a == reg {
			width = info.Width
			break
		}
	}
	b, err := d.dev.ReadRegisters(reg, width)
	if err != nil {
		return errorResponse(fmt.Sprintf("read error: %v", err))
	}
	return RegisterResponse{Type: "register_data", Address: addr, Value: hexBytes(b), Timestamp: now()}
}

func (d *RegisterDebugger) readAll() RegisterResponse {
	regs := make(map[string]string)
	for _, info := range sensors.BMP085RegisterMap() {
		reg, err := parseHexByte(info.Address)
		if err != nil {
			return errorResponse(fmt.Sprintf("bad register map entry %s", info.Address))
		}
		b, err := d.dev.ReadRegisters(reg, info.Width)
		if err != nil {
			return errorResponse(fmt.Sprintf("read all error at %s: %v", info.Address, err))
		}
		regs[info.Address] = hexBytes(b)
	}
	return RegisterResponse{Type: "register_data", Registers: regs, Timestamp: now()}
}

func (d *RegisterDebugger) write(addr, value string) RegisterResponse {
	reg, err := parseHexByte(addr)
	if err != nil {
		return errorResponse(fmt.Sprintf("invalid address format: %s", addr))
	}
	if reg != 0xF4 {
		return errorResponse(fmt.Sprintf("register %s is read-only, only 0xF4 can be written", addr))
	}
	v, err := parseHexByte(value)
	if err != nil {
		return errorResponse(fmt.Sprintf("invalid value format: %s", value))
	}
	if err := d.dev.WriteControl(v); err != nil {
		return errorResponse(fmt.Sprintf("write error: %v", err))
	}
	return RegisterResponse{Type: "status", Address: addr, Value: fmt.Sprintf("0x%02X", v), Message: "written", Timestamp: now()}
}

func (d *RegisterDebugger) measure() RegisterResponse {
	ut, err := d.dev.ReadRawTemperature()
	if err != nil {
		return errorResponse(fmt.Sprintf("temperature read error: %v", err))
	}
	up, err := d.dev.ReadRawPressure()
	if err != nil {
		return errorResponse(fmt.Sprintf("pressure read error: %v", err))
	}
	oss := d.dev.Oversampling()
	m := &rawMeasurement{UT: ut, UP: up, Oversampling: oss.String()}
	s, err := bmp085.Compensate(bmp085.Raw{UT: ut, UP: up}, d.dev.Calibration(), oss)
	if err != nil {
		return RegisterResponse{Type: "error", Measurement: m, Message: fmt.Sprintf("compensation error: %v", err)}
	}
	m.DeciCelsius, m.Pascal = s.DeciCelsius, s.Pascal
	return RegisterResponse{Type: "measurement", Measurement: m, Timestamp: now()}
}

func errorResponse(msg string) RegisterResponse {
	return RegisterResponse{Type: "error", Message: msg}
}

func parseHexByte(s string) (byte, error) {
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, err
	}
	return byte(v), nil
}

func hexBytes(b []byte) string {
	s := "0x"
	for _, v := range b {
		s += fmt.Sprintf("%02X", v)
	}
	return s
}

func now() string {
	return time.Now().Format(time.RFC3339)
}

// RunRegisterDebug serves the debugger page and WebSocket on port.
func RunRegisterDebug(dev RegisterDevice, port int) error {
	dbg := NewRegisterDebugger(dev)
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", dbg.HandleWS)
	mux.HandleFunc("/api/calibration", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(dev.Calibration()); err != nil {
			log.Printf("register_debug: json encode error: %v", err)
		}
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "web/register_debug.html")
	})

	addr := fmt.Sprintf(":%d", port)
	log.Printf("register_debug: listening on %s", addr)
	return http.ListenAndServe(addr, mux)
}
