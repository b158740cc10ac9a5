package config

import (
	"flag"
	"os"
	"time"

	"github.com/akarpov87/accountd/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN
//	-r string   Redis URL for the session store
//	-s string   JWT HMAC secret key
//	-t int      access token validity, minutes
//	-l int      session TTL, minutes (0 = sessions live until logout)
//	-b int      bcrypt cost
//
// os.Args is first filtered to the flags handled here via flagx.FilterArgs,
// so flags owned by other components are left alone. Duration flags are
// accepted as integer minutes.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-r", "-s", "-t", "-l", "-b"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.RedisURL, "r", config.RedisURL, "redis URL for the session store")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access_token_validity_duration (in minutes)")
	sessionTTL := fs.Int("l", int(config.SessionTTL.Minutes()), "session_ttl (in minutes, 0 keeps sessions until logout)")

	fs.IntVar(&config.BcryptCost, "b", config.BcryptCost, "bcrypt cost")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
	config.SessionTTL = time.Duration(*sessionTTL) * time.Minute
}
