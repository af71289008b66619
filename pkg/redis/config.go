package redis

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"
)

// Config describes the cache server and how long each named cache keeps its entries
type Config struct {
	Host     string
	Port     int
	Password string
	Database int

	// PoolSize caps open connections, 0 keeps the driver default
	PoolSize int
	// DialTimeout also bounds the startup ping
	DialTimeout time.Duration
	// CommandTimeout bounds reads and writes of a single command
	CommandTimeout time.Duration

	// CacheTTLs holds per cache name expirations, names without an entry use DefaultCacheTTL
	CacheTTLs       map[string]time.Duration
	DefaultCacheTTL time.Duration
}

// NewRedisConfig returns a local server config with a 10 minute default TTL
func NewRedisConfig() *Config {
	return &Config{
		Host:            "localhost",
		Port:            6379,
		DialTimeout:     5 * time.Second,
		CommandTimeout:  3 * time.Second,
		CacheTTLs:       make(map[string]time.Duration),
		DefaultCacheTTL: 10 * time.Minute,
	}
}

func (c *Config) WithHost(host string) *Config {
	c.Host = host
	return c
}

func (c *Config) WithPort(port int) *Config {
	c.Port = port
	return c
}

func (c *Config) WithPassword(password string) *Config {
	c.Password = password
	return c
}

func (c *Config) WithDatabase(database int) *Config {
	c.Database = database
	return c
}

func (c *Config) WithPoolSize(size int) *Config {
	c.PoolSize = size
	return c
}

// WithCacheTTL sets the expiration of one named cache
func (c *Config) WithCacheTTL(cacheName string, ttl time.Duration) *Config {
	if c.CacheTTLs == nil {
		c.CacheTTLs = make(map[string]time.Duration)
	}
	c.CacheTTLs[cacheName] = ttl
	return c
}

func (c *Config) WithDefaultCacheTTL(defaultTTL time.Duration) *Config {
	c.DefaultCacheTTL = defaultTTL
	return c
}

// Addr is the host:port dial address
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// TTLFor resolves the expiration of a named cache
func (c *Config) TTLFor(cacheName string) time.Duration {
	if ttl, ok := c.CacheTTLs[cacheName]; ok {
		return ttl
	}
	return c.DefaultCacheTTL
}

// Validate reports every invalid setting at once
func (c *Config) Validate() error {
	var errs []error
	if c.Host == "" {
		errs = append(errs, errors.New("host cannot be empty"))
	}
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid port %d", c.Port))
	}
	if c.Database < 0 || c.Database > 15 {
		errs = append(errs, fmt.Errorf("invalid database %d", c.Database))
	}
	if c.PoolSize < 0 || c.DialTimeout < 0 || c.CommandTimeout < 0 {
		errs = append(errs, errors.New("pool size and timeouts must be non-negative"))
	}
	if c.DefaultCacheTTL < 0 {
		errs = append(errs, fmt.Errorf("invalid default cache TTL %v", c.DefaultCacheTTL))
	}
	for name, ttl := range c.CacheTTLs {
		if ttl < 0 {
			errs = append(errs, fmt.Errorf("invalid TTL %v for cache %s", ttl, name))
		}
	}
	return errors.Join(errs...)
}

// DefaultConfig returns NewRedisConfig
func DefaultConfig() *Config {
	return NewRedisConfig()
}
