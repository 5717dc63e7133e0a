package depot

import "github.com/rs/zerolog"

// Config holds global configuration for worlds and their storages
var Config config = config{
	logger: zerolog.Nop(),
}

type config struct {
	logger          zerolog.Logger
	initialCapacity int
}

// SetLogger configures the logger used for storage lifecycle and guard violations
func (c *config) SetLogger(logger zerolog.Logger) {
	c.logger = logger
}

// SetInitialCapacity configures how many slots a new storage preallocates
func (c *config) SetInitialCapacity(n int) {
	c.initialCapacity = max(n, 0)
}
