package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/akarpov87/accountd/internal/flagx"
	"github.com/akarpov87/accountd/internal/timex"
)

// JsonConfig is the intermediate DTO for reading JSON configuration files.
// Interval fields use timex.Duration, which accepts both duration strings
// such as "30m" and integer nanoseconds. After unmarshalling, values are
// copied into the runtime Config.
type JsonConfig struct {
	EndpointAddr                string         `json:"endpoint_addr"`
	DatabaseDSN                 string         `json:"database_dsn"`
	RedisURL                    string         `json:"redis_url"`
	SecretKey                   string         `json:"secret_key"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration"`
	SessionTTL                  timex.Duration `json:"session_ttl"`
	BcryptCost                  int            `json:"bcrypt_cost"`
}

// parseJson loads configuration values from the JSON file named by the -c or
// -config flags into the provided Config. When neither flag is set, nothing
// is loaded. An unreadable file or invalid JSON panics; config problems
// should stop startup immediately.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	config.EndpointAddr = c.EndpointAddr
	config.DatabaseDSN = c.DatabaseDSN
	config.RedisURL = c.RedisURL
	config.SecretKey = c.SecretKey
	config.AccessTokenValidityDuration = time.Duration(c.AccessTokenValidityDuration.Duration)
	config.SessionTTL = time.Duration(c.SessionTTL.Duration)
	config.BcryptCost = c.BcryptCost
}
