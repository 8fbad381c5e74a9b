package config

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port           int      `yaml:"port" validate:"omitempty,gt=0"`
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

// SourcesConfig points at the five mock JSON collections. Each entry is
// either an http(s) URL or a local file path.
type SourcesConfig struct {
	Routes    string `yaml:"routes" validate:"required"`
	Vehicles  string `yaml:"vehicles" validate:"required"`
	Schedules string `yaml:"schedules" validate:"required"`
	Logs      string `yaml:"logs" validate:"required"`
	Analytics string `yaml:"analytics" validate:"required"`
	TimeoutMS int    `yaml:"timeoutMS" validate:"gte=0"`
}

// Credential is one demo login. Passwords are plain text: the login flow
// is a mock and holds no real accounts.
type Credential struct {
	Email    string `yaml:"email" validate:"required,email"`
	Password string `yaml:"password" validate:"required"`
	Role     string `yaml:"role" validate:"required,oneof=admin operator passenger"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server      ServerConfig  `yaml:"server" validate:"required"`
	Sources     SourcesConfig `yaml:"sources" validate:"required"`
	Credentials []Credential  `yaml:"credentials"`
}
