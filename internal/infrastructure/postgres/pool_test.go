package postgres_test

import (
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Estanteria-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Estanteria-api/pkg/config"
)

func TestPoolConfig_TamañoYHooks(t *testing.T) {
	cfg := config.DBConfig{
		Host: "db", Port: 5432, User: "app", Password: "secreto", DBName: "estanteria", SSLMode: "disable",
		MaxConns: 10, MinConns: 3,
	}
	pc, err := postgres.PoolConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, int32(10), pc.MaxConns)
	assert.Equal(t, int32(3), pc.MinConns)
	assert.Equal(t, "db", pc.ConnConfig.Host)
	assert.Equal(t, "estanteria", pc.ConnConfig.Database)
	assert.NotNil(t, pc.ConnConfig.DialFunc)
	assert.NotNil(t, pc.AfterConnect, "cada conexión registra los tipos")
}

func TestPoolConfig_MinMayorQueMaxSeIgnora(t *testing.T) {
	pc, err := postgres.PoolConfig(config.DBConfig{DatabaseURL: "postgres://app@db:5432/estanteria", MaxConns: 2, MinConns: 5})
	require.NoError(t, err)
	assert.Equal(t, int32(2), pc.MaxConns)
	assert.Zero(t, pc.MinConns)
}

func TestPoolConfig_DSNInvalido(t *testing.T) {
	_, err := postgres.PoolConfig(config.DBConfig{DatabaseURL: "postgres://%zz"})
	assert.Error(t, err)
}

// La ocupación llega como NUMERIC; con los tipos registrados se decodifica en decimal.Decimal.
func TestRegisterTypes_NumericADecimal(t *testing.T) {
	m := pgtype.NewMap()
	postgres.RegisterTypes(m)

	var got decimal.Decimal
	require.NoError(t, m.Scan(pgtype.NumericOID, pgtype.TextFormatCode, []byte("21"), &got))
	assert.True(t, decimal.NewFromInt(21).Equal(got))

	require.NoError(t, m.Scan(pgtype.NumericOID, pgtype.TextFormatCode, []byte("12.50"), &got))
	assert.True(t, decimal.RequireFromString("12.5").Equal(got))
}
