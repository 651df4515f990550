package cmd_test

import (
	"testing"

	"orders/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_DSN(t *testing.T) {
	t.Run("should build from parts", func(t *testing.T) {
		dsn, err := cmd.Config{
			DBHost:     "localhost",
			DBPort:     "5432",
			DBUser:     "orders",
			DBPassword: "secret",
			DBName:     "orders",
			DBSslMode:  "disable",
		}.DSN()

		require.NoError(t, err)
		assert.Equal(t, "host=localhost port=5432 user=orders password=secret dbname=orders sslmode=disable", dsn)
	})

	t.Run("should prefer the url", func(t *testing.T) {
		dsn, err := cmd.Config{
			DBHost:      "ignored",
			DatabaseURL: "postgres://orders:secret@db:5433/shop?sslmode=require",
		}.DSN()

		require.NoError(t, err)
		assert.Equal(t, "dbname='shop' host='db' password='secret' port='5433' sslmode='require' user='orders'", dsn)
		assert.NotContains(t, dsn, "ignored")
	})

	t.Run("should reject a non postgres url", func(t *testing.T) {
		_, err := cmd.Config{DatabaseURL: "mysql://db/shop"}.DSN()

		require.Error(t, err)
	})
}
