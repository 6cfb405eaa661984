package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_USER", "DB_PASS", "DB_HOST", "DB_PORT", "DB_NAME", "INSTANCE_CONNECTION_NAME"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "treechat", cfg.DBName)
	assert.Empty(t, cfg.InstanceConnectionName)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DB_USER", "chat")
	t.Setenv("DB_PASS", "secret")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_NAME", "chatdb")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "chat", cfg.DBUser)
	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "5433", cfg.DBPort)
	assert.Equal(t, "chatdb", cfg.DBName)
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBUser: "chat",
		DBPass: "secret",
		DBHost: "db.internal",
		DBPort: "5432",
		DBName: "chatdb",
	}

	assert.Equal(t,
		"host=db.internal port=5432 user=chat password=secret dbname=chatdb sslmode=disable",
		cfg.DSN(),
	)
}

func TestDSNCloudSQL(t *testing.T) {
	cfg := &Config{
		DBUser:                 "chat",
		DBPass:                 "secret",
		DBName:                 "chatdb",
		InstanceConnectionName: "project:region:instance",
	}

	assert.Equal(t,
		"host=/cloudsql/project:region:instance user=chat password=secret dbname=chatdb sslmode=disable",
		cfg.DSN(),
	)
}
