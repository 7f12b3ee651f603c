package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Config holds CLI configuration
type Config struct {
	ServerURL  string
	Device     string
	DeviceFile string
	AdminKey   string
	Output     string
	Verbose    bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL:  getEnvOrDefault("KEFMC_SERVER", "http://localhost:8080"),
		Device:     os.Getenv("KEFMC_DEVICE"),
		DeviceFile: getEnvOrDefault("KEFMC_DEVICE_FILE", defaultDeviceFile()),
		AdminKey:   os.Getenv("KEFMC_ADMIN_KEY"),
		Output:     "text",
		Verbose:    false,
	}
}

// LoadDevice resolves the device id. Without one on the flag or in the
// environment, the id stored in the device file is used, and a fresh id is
// written there on first use so the CLI keeps its session between runs.
func (c *Config) LoadDevice() error {
	if c.Device != "" {
		return nil
	}

	data, err := os.ReadFile(c.DeviceFile)
	if err == nil {
		if id := strings.TrimSpace(string(data)); id != "" {
			c.Device = id
			return nil
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	return c.SaveDevice(uuid.NewString())
}

// SaveDevice stores the device id in the device file
func (c *Config) SaveDevice(id string) error {
	c.Device = id

	dir := filepath.Dir(c.DeviceFile)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	return os.WriteFile(c.DeviceFile, []byte(id), 0600)
}

func defaultDeviceFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".kefmc/device"
	}
	return filepath.Join(home, ".kefmc", "device")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
