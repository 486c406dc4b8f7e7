package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

// Config holds all application configuration values.
type Config struct {
	// MQTT (optional: empty broker disables publishing)
	MQTTBroker          string
	MQTTClientIDLogger  string
	MQTTClientIDConsole string
	MQTTClientIDWeb     string

	// Topics
	TopicBMP string

	// BMP085 Hardware
	BMPI2CBus  string // "" selects the first bus
	BMPI2CAddr uint16
	// Oversampling: 0=ultra low power, 1=standard, 2=high res, 3=ultra high res
	BMPOversampling byte
	UseMockSensor   bool

	// Timing
	BMPRefreshInterval int // milliseconds

	// Logging to file
	LogEnabled bool
	LogFile    string

	// Display
	DisplayI2CBus       string
	DisplayLeftI2CAddr  uint16 // temperature screen
	DisplayRightI2CAddr uint16 // pressure screen; 0 = single display, RIGHT flips pages

	// Buttons (GPIO names, active low)
	ButtonUpPin    string
	ButtonDownPin  string
	ButtonLeftPin  string
	ButtonRightPin string
	ButtonEnterPin string

	// Serial keypad (replaces the buttons when set)
	InputSerialPort string
	InputSerialBaud int

	// Jukebox
	SpeakerPin string

	// Web Server
	WebServerPort int
}

// Package-level unexported variables for singleton pattern:
//   - globalConfig: only reachable through InitGlobal() and Get().
//   - configOnce: ensures InitGlobal() only runs once.
//   - configMu: write lock for initialization, read lock for Get().
var (
	globalConfig *Config
	configOnce   sync.Once
	configMu     sync.RWMutex
)

// Default returns the configuration used for keys absent from the file.
// The values match the badge firmware: OSS 0, ~10 samples/s, no log.
func Default() *Config {
	return &Config{
		MQTTClientIDLogger:  "badge-bmp085-logger",
		MQTTClientIDConsole: "badge-console-subscriber",
		MQTTClientIDWeb:     "badge-web-subscriber",
		TopicBMP:            "badge/bmp085",

		BMPI2CAddr:         0x77,
		BMPRefreshInterval: 68,

		LogFile: "BMP085.log",

		DisplayLeftI2CAddr: 0x3C,

		ButtonUpPin:    "GPIO5",
		ButtonDownPin:  "GPIO6",
		ButtonLeftPin:  "GPIO13",
		ButtonRightPin: "GPIO19",
		ButtonEnterPin: "GPIO26",

		InputSerialBaud: 115200,

		SpeakerPin: "GPIO18",

		WebServerPort: 8080,
	}
}

// Load reads the configuration file and returns a Config struct.
func Load(configPath string) (*Config, error) {
	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	cfg := Default()
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Parse KEY=VALUE
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid config line %d: %q", lineNum, line)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		if err := cfg.setValue(key, value); err != nil {
			return nil, fmt.Errorf("config line %d: %w", lineNum, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setValue sets a config value based on the key.
func (c *Config) setValue(key, value string) error {
	switch key {
	// MQTT
	case "MQTT_BROKER":
		c.MQTTBroker = value
	case "MQTT_CLIENT_ID_LOGGER":
		c.MQTTClientIDLogger = value
	case "MQTT_CLIENT_ID_CONSOLE":
		c.MQTTClientIDConsole = value
	case "MQTT_CLIENT_ID_WEB":
		c.MQTTClientIDWeb = value

	// Topics
	case "TOPIC_BMP":
		c.TopicBMP = value

	// BMP085 Hardware
	case "BMP_I2C_BUS":
		c.BMPI2CBus = value
	case "BMP_I2C_ADDR":
		addr, err := parseI2CAddr(key, value)
		if err != nil {
			return err
		}
		c.BMPI2CAddr = addr
	case "BMP_OVERSAMPLING":
		val, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid BMP_OVERSAMPLING %q: %w", value, err)
		}
		if val < 0 || val > 3 {
			return fmt.Errorf("BMP_OVERSAMPLING must be 0-3 (0=ultra low power, 3=ultra high resolution), got %d", val)
		}
		c.BMPOversampling = byte(val)
	case "USE_MOCK_SENSOR":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid USE_MOCK_SENSOR %q: %w", value, err)
		}
		c.UseMockSensor = b

	// Timing
	case "BMP_REFRESH_INTERVAL":
		interval, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid BMP_REFRESH_INTERVAL %q: %w", value, err)
		}
		c.BMPRefreshInterval = interval

	// Logging to file
	case "LOG_ENABLED":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid LOG_ENABLED %q: %w", value, err)
		}
		c.LogEnabled = b
	case "LOG_FILE":
		c.LogFile = value

	// Display
	case "DISPLAY_I2C_BUS":
		c.DisplayI2CBus = value
	case "DISPLAY_LEFT_I2C_ADDR":
		addr, err := parseI2CAddr(key, value)
		if err != nil {
			return err
		}
		c.DisplayLeftI2CAddr = addr
	case "DISPLAY_RIGHT_I2C_ADDR":
		addr, err := parseI2CAddr(key, value)
		if err != nil {
			return err
		}
		c.DisplayRightI2CAddr = addr

	// Buttons
	case "BUTTON_UP_PIN":
		c.ButtonUpPin = value
	case "BUTTON_DOWN_PIN":
		c.ButtonDownPin = value
	case "BUTTON_LEFT_PIN":
		c.ButtonLeftPin = value
	case "BUTTON_RIGHT_PIN":
		c.ButtonRightPin = value
	case "BUTTON_ENTER_PIN":
		c.ButtonEnterPin = value

	// Serial keypad
	case "INPUT_SERIAL_PORT":
		c.InputSerialPort = value
	case "INPUT_SERIAL_BAUD":
		rate, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid INPUT_SERIAL_BAUD %q: %w", value, err)
		}
		c.InputSerialBaud = rate

	// Jukebox
	case "SPEAKER_PIN":
		c.SpeakerPin = value

	// Web Server
	case "WEB_SERVER_PORT":
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid WEB_SERVER_PORT %q: %w", value, err)
		}
		c.WebServerPort = port

	default:
		return fmt.Errorf("unknown config key: %q", key)
	}

	return nil
}

func parseI2CAddr(key, value string) (uint16, error) {
	addr, err := strconv.ParseUint(value, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	if addr > 0x7F {
		return 0, fmt.Errorf("%s must be a 7-bit address, got 0x%X", key, addr)
	}
	return uint16(addr), nil
}

// validate checks that all required fields are set.
func (c *Config) validate() error {
	if c.BMPRefreshInterval <= 0 {
		return fmt.Errorf("BMP_REFRESH_INTERVAL must be positive")
	}
	if c.LogEnabled && c.LogFile == "" {
		return fmt.Errorf("LOG_FILE is required when LOG_ENABLED is set")
	}
	if c.MQTTBroker != "" && c.TopicBMP == "" {
		return fmt.Errorf("TOPIC_BMP is required when MQTT_BROKER is set")
	}
	if c.InputSerialPort != "" && c.InputSerialBaud <= 0 {
		return fmt.Errorf("INPUT_SERIAL_BAUD must be positive")
	}
	if c.WebServerPort <= 0 || c.WebServerPort > 65535 {
		return fmt.Errorf("WEB_SERVER_PORT must be 1-65535, got %d", c.WebServerPort)
	}
	return nil
}

// InitGlobal initializes the global configuration from file.
// Uses sync.Once to ensure this only runs once, even if called multiple times.
func InitGlobal(configPath string) error {
	var err error
	configOnce.Do(func() {
		configMu.Lock()
		defer configMu.Unlock()
		globalConfig, err = Load(configPath)
	})
	return err
}

// Get returns the global configuration instance.
// InitGlobal must be called first, or this will return nil.
func Get() *Config {
	configMu.RLock()
	defer configMu.RUnlock()
	return globalConfig
}
