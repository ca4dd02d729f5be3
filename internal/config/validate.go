package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks configuration invariants that tags cannot express.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port out of range: %d", c.Server.Port))
	}
	if c.Database.MaxConns < c.Database.MinConns {
		errs = append(errs, fmt.Errorf("database.max_conns (%d) < database.min_conns (%d)",
			c.Database.MaxConns, c.Database.MinConns))
	}
	if c.ShortLink.MaxAllocAttempts < 1 {
		errs = append(errs, fmt.Errorf("shortlink.max_alloc_attempts must be positive: %d",
			c.ShortLink.MaxAllocAttempts))
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log.format must be json or text: %q", c.Log.Format))
	}

	return errors.Join(errs...)
}
