// internal/platform/config/config.go
package config

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"docsweep/internal/platform/validator"
)

// DefaultKnownIDs son identificadores de documentos públicos conocidos,
// útiles como semillas de prueba y para el análisis de estructura.
var DefaultKnownIDs = []string{
	"11ql80LUVCpuk-tyW0oZ0Pf-v0NmEbXuC5115fSAX-io",
	"1ctvfdHRoRxdH87W7GlfKqQWOn0PbtrMjToHvD0x7DQc",
	"1kWuNeZzDg01f6nWDmFvpUdT646HZJxrSIJ7F8pwf0po",
}

type Config struct {
	// App
	BaseID       string
	Strategies   string // lista separada por comas
	Prober       string
	PrintVersion bool

	// Batch
	Batch Batch

	// Probe
	Probe Probe

	// Cache
	Cache Cache

	// IO
	OutputDir  string
	JSONOnly   bool
	ConfigFile string

	// Modos alternativos de ejecución
	ProbeOnly bool // probar solo el identificador base, sin mutaciones
	Analyze   bool // analizar la estructura del identificador y salir
	ShowKnown bool // probar los identificadores conocidos y salir

	// KnownIDs identificadores conocidos (solo via fichero YAML)
	KnownIDs []string
}

type Batch struct {
	MaxIncrements        int           // candidatos por estrategia
	MaxIncrementsCeiling int           // techo duro para MaxIncrements
	Delay                time.Duration // espaciado mínimo entre probes
	Concurrency          int           // probes en vuelo simultáneos
	MaxRetries           int           // reintentos por candidato ante fallo transitorio
	BackoffCeiling       time.Duration // backoff máximo tras fallos transitorios
}

type Probe struct {
	TimeoutS int // timeout por petición en segundos
}

type Cache struct {
	Enabled bool
	TTL     time.Duration
	Size    int
}

// DefaultConfig retorna una configuración por defecto.
func DefaultConfig() Config {
	return Config{
		BaseID:     "",
		Strategies: "last_char",
		Prober:     "gdocs",

		Batch: Batch{
			MaxIncrements:        10,
			MaxIncrementsCeiling: 1000,
			Delay:                1 * time.Second,
			Concurrency:          1,
			MaxRetries:           2,
			BackoffCeiling:       30 * time.Second,
		},

		Probe: Probe{
			TimeoutS: 30,
		},

		Cache: Cache{
			Enabled: true,
			TTL:     5 * time.Minute,
			Size:    1000,
		},

		OutputDir: "docsweep_out",
		KnownIDs:  append([]string{}, DefaultKnownIDs...),
	}
}

// Load inicializa la configuración: defaults -> fichero YAML -> ENV -> FLAGS
// (los flags tienen la máxima prioridad).
func Load(args []string) (Config, error) {
	cfg := DefaultConfig()

	// El fichero hay que conocerlo antes de aplicar el resto de capas
	if path := configFileFrom(args); path != "" {
		cfg.ConfigFile = path
		if err := loadFromFile(&cfg, path); err != nil {
			return cfg, err
		}
	}

	loadFromEnv(&cfg)

	if err := loadFromFlags(&cfg, args); err != nil {
		return cfg, err
	}

	normalize(&cfg)
	return cfg, nil
}

// configFileFrom extrae el valor de -config de los args sin parsear el resto.
func configFileFrom(args []string) string {
	fs := pflag.NewFlagSet("docsweep-pre", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.Usage = func() {}
	fs.SetOutput(nullWriter{})
	path := fs.String("config", "", "")
	_ = fs.Parse(args)
	return *path
}

type nullWriter struct{}

func (nullWriter) Write(p []byte) (int, error) { return len(p), nil }

// fileConfig es la forma YAML del fichero de configuración. Los punteros
// distinguen "ausente" de "valor cero".
type fileConfig struct {
	BaseID     *string `yaml:"base_id"`
	Strategies *string `yaml:"strategies"`
	Prober     *string `yaml:"prober"`

	Batch *struct {
		MaxIncrements  *int           `yaml:"max_increments"`
		Ceiling        *int           `yaml:"max_increments_ceiling"`
		Delay          *time.Duration `yaml:"delay"`
		Concurrency    *int           `yaml:"concurrency"`
		MaxRetries     *int           `yaml:"max_retries"`
		BackoffCeiling *time.Duration `yaml:"backoff_ceiling"`
	} `yaml:"batch"`

	Probe *struct {
		TimeoutS *int `yaml:"timeout_seconds"`
	} `yaml:"probe"`

	Cache *struct {
		Enabled *bool          `yaml:"enabled"`
		TTL     *time.Duration `yaml:"ttl"`
		Size    *int           `yaml:"size"`
	} `yaml:"cache"`

	OutputDir *string  `yaml:"output_dir"`
	JSONOnly  *bool    `yaml:"json_only"`
	KnownIDs  []string `yaml:"known_ids"`
}

// loadFromFile aplica el fichero YAML sobre los defaults.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return err
	}

	setStr := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setStr(&cfg.BaseID, fc.BaseID)
	setStr(&cfg.Strategies, fc.Strategies)
	setStr(&cfg.Prober, fc.Prober)
	setStr(&cfg.OutputDir, fc.OutputDir)

	if fc.JSONOnly != nil {
		cfg.JSONOnly = *fc.JSONOnly
	}
	if len(fc.KnownIDs) > 0 {
		cfg.KnownIDs = fc.KnownIDs
	}

	if fc.Batch != nil {
		if fc.Batch.MaxIncrements != nil {
			cfg.Batch.MaxIncrements = *fc.Batch.MaxIncrements
		}
		if fc.Batch.Ceiling != nil {
			cfg.Batch.MaxIncrementsCeiling = *fc.Batch.Ceiling
		}
		if fc.Batch.Delay != nil {
			cfg.Batch.Delay = *fc.Batch.Delay
		}
		if fc.Batch.Concurrency != nil {
			cfg.Batch.Concurrency = *fc.Batch.Concurrency
		}
		if fc.Batch.MaxRetries != nil {
			cfg.Batch.MaxRetries = *fc.Batch.MaxRetries
		}
		if fc.Batch.BackoffCeiling != nil {
			cfg.Batch.BackoffCeiling = *fc.Batch.BackoffCeiling
		}
	}

	if fc.Probe != nil && fc.Probe.TimeoutS != nil {
		cfg.Probe.TimeoutS = *fc.Probe.TimeoutS
	}

	if fc.Cache != nil {
		if fc.Cache.Enabled != nil {
			cfg.Cache.Enabled = *fc.Cache.Enabled
		}
		if fc.Cache.TTL != nil {
			cfg.Cache.TTL = *fc.Cache.TTL
		}
		if fc.Cache.Size != nil {
			cfg.Cache.Size = *fc.Cache.Size
		}
	}

	return nil
}

// loadFromEnv carga configuración desde variables de entorno.
func loadFromEnv(cfg *Config) {
	if v := getenv("DOCSWEEP_BASE_ID", ""); v != "" {
		cfg.BaseID = v
	}
	if v := getenv("DOCSWEEP_STRATEGIES", ""); v != "" {
		cfg.Strategies = v
	}
	if v := getenv("DOCSWEEP_PROBER", ""); v != "" {
		cfg.Prober = v
	}
	if v := getenv("DOCSWEEP_MAX_INCREMENTS", ""); v != "" {
		cfg.Batch.MaxIncrements = parseInt(v, cfg.Batch.MaxIncrements)
	}
	if v := getenv("DOCSWEEP_DELAY", ""); v != "" {
		cfg.Batch.Delay = parseDuration(v, cfg.Batch.Delay)
	}
	if v := getenv("DOCSWEEP_CONCURRENCY", ""); v != "" {
		cfg.Batch.Concurrency = parseInt(v, cfg.Batch.Concurrency)
	}
	if v := getenv("DOCSWEEP_MAX_RETRIES", ""); v != "" {
		cfg.Batch.MaxRetries = parseInt(v, cfg.Batch.MaxRetries)
	}
	if v := getenv("DOCSWEEP_BACKOFF_CEILING", ""); v != "" {
		cfg.Batch.BackoffCeiling = parseDuration(v, cfg.Batch.BackoffCeiling)
	}
	if v := getenv("DOCSWEEP_TIMEOUT", ""); v != "" {
		cfg.Probe.TimeoutS = parseInt(v, cfg.Probe.TimeoutS)
	}
	if v := getenv("DOCSWEEP_OUTPUT_DIR", ""); v != "" {
		cfg.OutputDir = v
	}
	if v := getenv("DOCSWEEP_JSON_ONLY", ""); v != "" {
		cfg.JSONOnly = parseBool(v)
	}
	if v := getenv("DOCSWEEP_CACHE_ENABLED", ""); v != "" {
		cfg.Cache.Enabled = parseBool(v)
	}
}

// loadFromFlags parsea flags de CLI (overrides ENV y fichero).
func loadFromFlags(cfg *Config, args []string) error {
	fs := pflag.NewFlagSet("docsweep", pflag.ContinueOnError)

	fs.StringVar(&cfg.BaseID, "base", cfg.BaseID, "Identificador base a mutar")
	fs.StringVar(&cfg.Strategies, "strategies", cfg.Strategies,
		"Estrategias de mutación separadas por comas (last_char, last_digit, last_letter, all_positions)")
	fs.StringVar(&cfg.Prober, "prober", cfg.Prober, "Prober a utilizar")

	fs.IntVar(&cfg.Batch.MaxIncrements, "max-increments", cfg.Batch.MaxIncrements,
		"Candidatos generados por estrategia")
	fs.DurationVar(&cfg.Batch.Delay, "delay", cfg.Batch.Delay,
		"Espaciado mínimo entre inicios de probes")
	fs.IntVar(&cfg.Batch.Concurrency, "concurrency", cfg.Batch.Concurrency,
		"Probes en vuelo simultáneos")
	fs.IntVar(&cfg.Batch.MaxRetries, "max-retries", cfg.Batch.MaxRetries,
		"Reintentos por candidato ante fallos transitorios")
	fs.DurationVar(&cfg.Batch.BackoffCeiling, "backoff-ceiling", cfg.Batch.BackoffCeiling,
		"Backoff máximo tras fallos transitorios consecutivos")

	fs.IntVar(&cfg.Probe.TimeoutS, "timeout", cfg.Probe.TimeoutS,
		"Timeout por petición en segundos")

	fs.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "Directorio de salida")
	fs.BoolVar(&cfg.JSONOnly, "json-only", cfg.JSONOnly,
		"Desactivar la tabla en terminal (el JSON siempre se genera)")
	fs.StringVar(&cfg.ConfigFile, "config", cfg.ConfigFile, "Fichero de configuración YAML")

	fs.BoolVar(&cfg.ProbeOnly, "probe", cfg.ProbeOnly,
		"Probar solo el identificador base, sin mutaciones")
	fs.BoolVar(&cfg.Analyze, "analyze", cfg.Analyze,
		"Analizar la estructura del identificador base y salir")
	fs.BoolVar(&cfg.ShowKnown, "known", cfg.ShowKnown,
		"Probar los identificadores conocidos y salir")

	fs.BoolVar(&cfg.PrintVersion, "version", false, "Imprimir versión y salir")

	return fs.Parse(args)
}

func normalize(c *Config) {
	c.BaseID = validator.NormalizeIdentifier(c.BaseID)
	c.Strategies = strings.TrimSpace(c.Strategies)
	c.Prober = strings.ToLower(strings.TrimSpace(c.Prober))

	if c.Batch.Concurrency < 1 {
		c.Batch.Concurrency = 1
	}
	if c.Batch.MaxRetries < 0 {
		c.Batch.MaxRetries = 0
	}
	if c.Batch.BackoffCeiling <= 0 {
		c.Batch.BackoffCeiling = 30 * time.Second
	}
	if c.Batch.MaxIncrementsCeiling < 1 {
		c.Batch.MaxIncrementsCeiling = 1000
	}
	if c.Probe.TimeoutS < 0 {
		c.Probe.TimeoutS = 0
	}
	if c.Cache.Size < 1 {
		c.Cache.Size = 1000
	}
	if c.OutputDir == "" {
		c.OutputDir = "docsweep_out"
	}
}

// ToJSON serializa la configuración a JSON (útil para debugging).
func (c Config) ToJSON() (string, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ProbeTimeout devuelve el timeout por petición como time.Duration.
func (c Config) ProbeTimeout() time.Duration {
	if c.Probe.TimeoutS <= 0 {
		return 0
	}
	return time.Duration(c.Probe.TimeoutS) * time.Second
}

// Helpers

func getenv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok {
		return v
	}
	return def
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "t", "true", "y", "yes", "on":
		return true
	default:
		return false
	}
}

func parseInt(v string, def int) int {
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return i
}

func parseDuration(v string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return d
}
