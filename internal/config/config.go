package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	// City is the only city vacancies are searched in.
	City = "Москва"

	// SuperJobKeyEnv names the environment variable holding the SuperJob API key.
	SuperJobKeyEnv = "SUPERJOB_KEY"

	// DefaultEnvFile is loaded when no other file is given.
	DefaultEnvFile = ".env"
)

var languages = [...]string{
	"JavaScript",
	"Python",
	"Java",
	"TypeScript",
	"C#",
	"PHP",
	"C++",
	"C",
	"Ruby",
}

// HeadHunter accepts only numeric area IDs, see https://api.hh.ru/areas/
var areas = map[string]int{
	"Москва":          1,
	"Санкт-Петербург": 2,
}

// Config holds values read from the environment.
type Config struct {
	SuperJobKey string
	// EnvFileLoaded is false when the env file did not exist.
	EnvFileLoaded bool
}

// Languages returns the language catalog in report order.
func Languages() []string {
	out := make([]string, len(languages))
	copy(out, languages[:])
	return out
}

// AreaID maps a city name to its HeadHunter area ID.
func AreaID(city string) (int, bool) {
	id, ok := areas[city]
	return id, ok
}

// Load reads envFile into the process environment when it exists and then
// collects the settings. The SuperJob key is not validated here.
func Load(envFile string) (*Config, error) {
	if envFile == "" {
		envFile = DefaultEnvFile
	}

	cfg := &Config{}
	err := godotenv.Load(envFile)
	switch {
	case err == nil:
		cfg.EnvFileLoaded = true
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, errors.Wrapf(err, "failed to load env file %s", envFile)
	}

	cfg.SuperJobKey = os.Getenv(SuperJobKeyEnv)
	return cfg, nil
}
