package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("加载配置失败: %v", err)
	}

	if cfg.App.Name != "jiwei" {
		t.Errorf("App.Name = %s, expected jiwei", cfg.App.Name)
	}
	if cfg.App.Port != 7018 {
		t.Errorf("App.Port = %d, expected 7018", cfg.App.Port)
	}
	if cfg.Database.Enabled {
		t.Error("数据库默认应关闭")
	}
	if cfg.Solver.DefaultTimeout != 30*time.Second {
		t.Errorf("Solver.DefaultTimeout = %v, expected 30s", cfg.Solver.DefaultTimeout)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Path != "/metrics" {
		t.Errorf("Metrics 配置错误: %+v", cfg.Metrics)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("DB_ENABLED", "true")
	t.Setenv("SOLVER_TIMEOUT", "5s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("加载配置失败: %v", err)
	}

	if cfg.App.Port != 8080 {
		t.Errorf("App.Port = %d, expected 8080", cfg.App.Port)
	}
	if !cfg.Database.Enabled {
		t.Error("DB_ENABLED=true 应启用数据库")
	}
	if cfg.Solver.DefaultTimeout != 5*time.Second {
		t.Errorf("Solver.DefaultTimeout = %v, expected 5s", cfg.Solver.DefaultTimeout)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("APP_PORT", "not-a-number")
	t.Setenv("SOLVER_TIMEOUT", "forever")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("加载配置失败: %v", err)
	}

	if cfg.App.Port != 7018 {
		t.Errorf("非法端口应回退默认值: %d", cfg.App.Port)
	}
	if cfg.Solver.DefaultTimeout != 30*time.Second {
		t.Errorf("非法超时应回退默认值: %v", cfg.Solver.DefaultTimeout)
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.local",
		Port:     5432,
		Name:     "jiwei",
		User:     "jiwei",
		Password: "secret",
		SSLMode:  "disable",
	}

	dsn := cfg.DSN()
	expected := "host=db.local port=5432 user=jiwei password=secret dbname=jiwei sslmode=disable"
	if dsn != expected {
		t.Errorf("DSN() = %s", dsn)
	}
}

func TestConfig_EnvHelpers(t *testing.T) {
	cfg := &Config{App: AppConfig{Env: "development"}}
	if !cfg.IsDevelopment() || cfg.IsProduction() {
		t.Error("development 环境判定错误")
	}

	cfg.App.Env = "production"
	if cfg.IsDevelopment() || !cfg.IsProduction() {
		t.Error("production 环境判定错误")
	}
}
