// Package config loads settings shared by the feed server and the clients.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Config holds the application's configuration values.
type Config struct {
	Port         string        // Port the feed server listens on
	FeedURL      string        // Websocket URL clients read updates from
	MazeWidth    int           // Width of generated mazes
	MazeHeight   int           // Height of generated mazes
	Bots         int           // Number of walking bots on the feed
	Tick         time.Duration // Interval between player broadcasts
	Step         time.Duration // Time a bot takes to cross one cell
	LayoutFile   string        // Optional ASCII maze pinned instead of generated mazes
	LabelSize    float64       // Player label font size in points
	WindowWidth  int           // Initial client window width
	WindowHeight int           // Initial client window height
	Retry        time.Duration // Delay before a client reconnects to the feed
	LogLevel     log.Level     // Minimum level logged
}

// Load reads a .env file when present, then the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debugf(".env file not found or could not be loaded: %v", err)
	}

	var c Config
	var err error
	c.Port = getEnvWithDefault("PORT", "8080")
	c.FeedURL = getEnvWithDefault("FEED_URL", "ws://localhost:8080/play")
	c.LayoutFile = getEnvWithDefault("LAYOUT_FILE", "")
	if c.MazeWidth, err = getEnvAsInt("MAZE_WIDTH", 16); err != nil {
		return c, err
	}
	if c.MazeHeight, err = getEnvAsInt("MAZE_HEIGHT", 12); err != nil {
		return c, err
	}
	if c.Bots, err = getEnvAsInt("BOTS", 3); err != nil {
		return c, err
	}
	if c.WindowWidth, err = getEnvAsInt("WINDOW_WIDTH", 800); err != nil {
		return c, err
	}
	if c.WindowHeight, err = getEnvAsInt("WINDOW_HEIGHT", 600); err != nil {
		return c, err
	}
	if c.Tick, err = getEnvAsDuration("TICK", 50*time.Millisecond); err != nil {
		return c, err
	}
	if c.Step, err = getEnvAsDuration("STEP", 400*time.Millisecond); err != nil {
		return c, err
	}
	if c.Retry, err = getEnvAsDuration("RETRY", 2*time.Second); err != nil {
		return c, err
	}
	if c.LabelSize, err = getEnvAsFloat("LABEL_SIZE", 16); err != nil {
		return c, err
	}
	if c.LogLevel, err = log.ParseLevel(getEnvWithDefault("LOG_LEVEL", "info")); err != nil {
		return c, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	if c.MazeWidth <= 0 || c.MazeHeight <= 0 {
		return c, fmt.Errorf("maze size %dx%d must be positive", c.MazeWidth, c.MazeHeight)
	}
	if c.Tick <= 0 || c.Step <= 0 {
		return c, fmt.Errorf("TICK and STEP must be positive")
	}
	if c.Retry <= 0 {
		return c, fmt.Errorf("RETRY %s must be positive", c.Retry)
	}
	if c.LabelSize <= 0 {
		return c, fmt.Errorf("LABEL_SIZE %g must be positive", c.LabelSize)
	}
	return c, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return n, nil
}

func getEnvAsFloat(key string, defaultValue float64) (float64, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be a number: %w", key, err)
	}
	return f, nil
}

func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be a duration: %w", key, err)
	}
	return d, nil
}

// Apply configures the standard logger.
func (c Config) Apply() {
	log.SetLevel(c.LogLevel)
}
