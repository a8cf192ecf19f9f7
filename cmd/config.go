package cmd

import (
	"fmt"
	"strings"
	"time"

	"quickcart/internal/core/domain/model/user"
)

const (
	ModeConsole = "console"
	ModeHTTP    = "http"
)

type Config struct {
	AppMode                string
	HTTPPort               string
	LogLevel               string
	LogFormat              string
	SnapshotDriver         string
	SnapshotPath           string
	SnapshotSchedule       string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	JWTSecret              string
	JWTTTL                 time.Duration
	KafkaBrokers           []string
	KafkaOrderChangedTopic string
	SeedUsers              []SeedUser
}

// SeedUser is a user registered at start-up.
type SeedUser struct {
	Role     user.Role
	Name     string
	Password string
	Email    string
}

// DefaultSeedUsers is the directory a fresh process starts with.
const DefaultSeedUsers = "admin:adminKorede:admin123:admin@quickcart.com," +
	"customer:customer1:customer123:customer1@quickcart.com," +
	"rider:rider1:rider123:rider1@quickcart.com"

// ParseSeedUsers reads a comma separated list of role:name:password:email.
func ParseSeedUsers(raw string) ([]SeedUser, error) {
	var users []SeedUser
	for _, entry := range CSV(raw) {
		parts := strings.SplitN(entry, ":", 4)
		if len(parts) != 4 {
			return nil, fmt.Errorf("seed user %q: want role:name:password:email", entry)
		}

		role, err := user.ParseRole(parts[0])
		if err != nil {
			return nil, fmt.Errorf("seed user %q: %w", entry, err)
		}
		users = append(users, SeedUser{
			Role:     role,
			Name:     parts[1],
			Password: parts[2],
			Email:    parts[3],
		})
	}
	return users, nil
}

// CSV splits v on commas, dropping blanks.
func CSV(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
