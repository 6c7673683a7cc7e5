package gocmdtester

// runConfig holds the configuration for Run invocations.
type runConfig struct {
	env        map[string]string
	workingDir string
}

// Option configures how a CmdTester runs the binary.
type Option func(*runConfig)

// WithEnv sets an environment variable for command execution. Later calls
// with the same key win.
func WithEnv(key, value string) Option {
	return func(c *runConfig) {
		if c.env == nil {
			c.env = make(map[string]string)
		}

		c.env[key] = value
	}
}

// WithWorkingDir sets the working directory for command execution.
func WithWorkingDir(path string) Option {
	return func(c *runConfig) {
		c.workingDir = path
	}
}
