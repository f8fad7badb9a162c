package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Estanteria-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"L1", "L2", "L3", "L4", "L5", "L6"}, cfg.Warehouse.Columns)
	assert.Equal(t, 2, cfg.Warehouse.Floors)
	assert.Equal(t, 10, cfg.Warehouse.ProductionDefaultQty)
	assert.Equal(t, config.DriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, 480, cfg.JWT.Expiration)
	assert.Equal(t, 25, cfg.DB.MaxConns)
	assert.Equal(t, 2, cfg.DB.MinConns)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Empty(t, cfg.Bootstrap.AdminEmail)
}

func TestLoad_DesdeEntorno(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto")
	t.Setenv("WAREHOUSE_COLUMNS", " A1, A2 ,,A3")
	t.Setenv("WAREHOUSE_FLOORS", "3")
	t.Setenv("STORAGE_DRIVER", "MEMORY")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("BOOTSTRAP_ADMIN_EMAIL", "admin@estanteria.local")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"A1", "A2", "A3"}, cfg.Warehouse.Columns)
	assert.Equal(t, 3, cfg.Warehouse.Floors)
	assert.Equal(t, config.DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "admin@estanteria.local", cfg.Bootstrap.AdminEmail)
}

func TestLoad_Invalida(t *testing.T) {
	cases := map[string]map[string]string{
		"driver desconocido": {"JWT_SECRET": "s", "STORAGE_DRIVER": "mongo"},
		"sin pisos":          {"JWT_SECRET": "s", "WAREHOUSE_FLOORS": "0"},
		"sin secreto":        {"JWT_SECRET": ""},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}

func TestDBConfig_ConnectionString(t *testing.T) {
	db := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss", DBName: "estanteria", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss@db:5432/estanteria?sslmode=disable", db.ConnectionString())

	db.DatabaseURL = "postgresql://otro"
	assert.Equal(t, "postgresql://otro", db.ConnectionString())
}
