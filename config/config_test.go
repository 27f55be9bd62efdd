package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CURRENCY_CODE", "")
	t.Setenv("GRAPHQL_PATH", "")
	t.Setenv("AWS_S3_BUCKET", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, currency.USD, cfg.GraphQL.Currency)
	assert.Equal(t, "/api/graphql", cfg.GraphQL.Path)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.False(t, cfg.S3.Enabled())
}

func TestLoad_CurrencyOverride(t *testing.T) {
	t.Setenv("CURRENCY_CODE", "EUR")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, currency.EUR, cfg.GraphQL.Currency)
}

func TestLoad_InvalidCurrency(t *testing.T) {
	t.Setenv("CURRENCY_CODE", "NOPE")

	_, err := Load()
	assert.Error(t, err)
}

func TestParseSlice(t *testing.T) {
	assert.Equal(t, []string{"http://a", "http://b"}, parseSlice("http://a, http://b,"))
	assert.Equal(t, []string{}, parseSlice(""))
}

func TestDSN(t *testing.T) {
	c := DatabaseConfig{Host: "h", Port: "1", User: "u", Password: "p", DBName: "d", SSLMode: "disable"}
	assert.Equal(t, "host=h port=1 user=u password=p dbname=d sslmode=disable", c.DSN())
}
