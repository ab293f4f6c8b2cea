package logger

type Config struct {
	Level      string   `yaml:"level"`
	Targets    []string `yaml:"targets"`
	Filename   string   `yaml:"filename"`
	MaxSize    int      `yaml:"max_size_mb"`
	MaxBackups int      `yaml:"max_backups"`
	MaxAge     int      `yaml:"max_age_days"`
	Compress   bool     `yaml:"compress"`
}
