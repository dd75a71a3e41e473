package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Estrategias soportadas para resolver la imagen de un producto.
const (
	ImageStrategyReference = "reference"
	ImageStrategyInline    = "inline"
)

// Config agrupa la configuración necesaria para correr la aplicación.
// Se carga una sola vez al arrancar y no se muta después.
type Config struct {
	Port string

	// Credenciales del backend Odoo. Todas obligatorias.
	OdooURL  string
	OdooDB   string
	OdooUser string
	OdooPass string

	// ImageStrategy define cómo se resuelve la imagen de cada producto:
	// "reference" (default) arma una URL al backend, "inline" embebe base64.
	ImageStrategy string
}

// Load lee variables de entorno vía viper y valida lo mínimo indispensable.
// Falla rápido: si falta una credencial no se sirve ningún request.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	// AutomaticEnv solo resuelve claves conocidas; las registramos explícitamente.
	for _, key := range []string{"port", "odoo_url", "odoo_db", "odoo_user", "odoo_pass", "image_strategy"} {
		if err := v.BindEnv(key); err != nil {
			return Config{}, fmt.Errorf("bind env %s: %w", key, err)
		}
	}
	v.SetDefault("port", "8080")
	v.SetDefault("image_strategy", ImageStrategyReference)

	cfg := Config{
		Port:          strings.TrimPrefix(strings.TrimSpace(v.GetString("port")), ":"),
		OdooURL:       strings.TrimRight(strings.TrimSpace(v.GetString("odoo_url")), "/"),
		OdooDB:        strings.TrimSpace(v.GetString("odoo_db")),
		OdooUser:      strings.TrimSpace(v.GetString("odoo_user")),
		OdooPass:      strings.TrimSpace(v.GetString("odoo_pass")),
		ImageStrategy: strings.TrimSpace(v.GetString("image_strategy")),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	// Misma semántica que el chequeo de env vars del deploy original:
	// cualquier credencial ausente es un error de configuración, no un 401.
	var missing []string
	for _, required := range []struct {
		name  string
		value string
	}{
		{"ODOO_URL", cfg.OdooURL},
		{"ODOO_DB", cfg.OdooDB},
		{"ODOO_USER", cfg.OdooUser},
		{"ODOO_PASS", cfg.OdooPass},
	} {
		if required.value == "" {
			missing = append(missing, required.name)
		}
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing required env vars: %s", strings.Join(missing, ", "))
	}

	if cfg.ImageStrategy != ImageStrategyReference && cfg.ImageStrategy != ImageStrategyInline {
		return Config{}, fmt.Errorf("invalid IMAGE_STRATEGY %q (expected %q or %q)",
			cfg.ImageStrategy, ImageStrategyReference, ImageStrategyInline)
	}

	return cfg, nil
}
