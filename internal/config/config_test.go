package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "badge_config.txt")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "# nothing but a comment\n\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BMPI2CAddr != 0x77 || cfg.BMPOversampling != 0 || cfg.BMPRefreshInterval != 68 {
		t.Errorf("BMP defaults = addr 0x%X oss %d interval %d", cfg.BMPI2CAddr, cfg.BMPOversampling, cfg.BMPRefreshInterval)
	}
	if cfg.LogEnabled || cfg.LogFile != "BMP085.log" {
		t.Errorf("log defaults = %v %q", cfg.LogEnabled, cfg.LogFile)
	}
}

func TestLoadValues(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
MQTT_BROKER = tcp://localhost:1883
TOPIC_BMP=badge/bmp085/left
BMP_I2C_BUS=1
BMP_I2C_ADDR=0x77
BMP_OVERSAMPLING=3
BMP_REFRESH_INTERVAL=100
LOG_ENABLED=true
LOG_FILE=/tmp/bmp.log
DISPLAY_RIGHT_I2C_ADDR=0x3D
INPUT_SERIAL_PORT=/dev/ttyUSB0
SPEAKER_PIN=GPIO12
`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MQTTBroker != "tcp://localhost:1883" || cfg.TopicBMP != "badge/bmp085/left" {
		t.Errorf("mqtt = %q %q", cfg.MQTTBroker, cfg.TopicBMP)
	}
	if cfg.BMPI2CBus != "1" || cfg.BMPOversampling != 3 || cfg.BMPRefreshInterval != 100 {
		t.Errorf("bmp = %q %d %d", cfg.BMPI2CBus, cfg.BMPOversampling, cfg.BMPRefreshInterval)
	}
	if !cfg.LogEnabled || cfg.LogFile != "/tmp/bmp.log" {
		t.Errorf("log = %v %q", cfg.LogEnabled, cfg.LogFile)
	}
	if cfg.DisplayRightI2CAddr != 0x3D || cfg.InputSerialPort != "/dev/ttyUSB0" || cfg.SpeakerPin != "GPIO12" {
		t.Errorf("peripherals = 0x%X %q %q", cfg.DisplayRightI2CAddr, cfg.InputSerialPort, cfg.SpeakerPin)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		body string
		want string
	}{
		{"BMP_OVERSAMPLING=4\n", "must be 0-3"},
		{"BMP_OVERSAMPLING=x\n", "invalid BMP_OVERSAMPLING"},
		{"NOT_A_KEY=1\n", "unknown config key"},
		{"just garbage\n", "invalid config line 1"},
		{"BMP_I2C_ADDR=0xEE\n", "7-bit address"},
		{"BMP_REFRESH_INTERVAL=0\n", "must be positive"},
		{"LOG_ENABLED=1\nLOG_FILE=\n", "LOG_FILE is required"},
	}
	for _, tt := range tests {
		_, err := Load(writeConfig(t, tt.body))
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("Load(%q) err = %v, want %q", tt.body, err, tt.want)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
