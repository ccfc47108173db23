// Package environment names the deployment environments the fieldcheck host
// distinguishes (development, staging, production).
//
// Parse normalizes names and their short aliases, and Environment implements
// encoding.TextUnmarshaler so configuration structs can declare an
// Environment field directly:
//
//	type Config struct {
//		Env environment.Environment `env:"APP_ENV" envDefault:"development"`
//	}
package environment
