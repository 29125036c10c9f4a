package repo

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	gitconfig "gopkg.in/src-d/go-git.v4/plumbing/format/config"
)

// Config stores repository-local settings from .git/config.
type Config struct {
	Core CoreConfig `toml:"core"`
}

// CoreConfig is the [core] section.
type CoreConfig struct {
	RepositoryFormatVersion int  `toml:"repositoryformatversion"`
	FileMode                bool `toml:"filemode"`
	Bare                    bool `toml:"bare"`
}

// DefaultConfig is the configuration written by Init.
func DefaultConfig() *Config {
	return &Config{
		Core: CoreConfig{
			RepositoryFormatVersion: 0,
			FileMode:                false,
			Bare:                    false,
		},
	}
}

func (r *Repository) configPath() string {
	return r.Path("config")
}

// ReadConfig reads .git/config. The file is parsed with git's own config
// syntax, so subsections and keys written by other tools are accepted; only
// the [core] keys below are interpreted and missing keys keep their zero value.
func (r *Repository) ReadConfig() (*Config, error) {
	f, err := os.Open(r.configPath())
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	defer f.Close()

	raw := gitconfig.New()
	if err := gitconfig.NewDecoder(f).Decode(raw); err != nil {
		return nil, fmt.Errorf("read config %s: decode: %w", r.configPath(), err)
	}

	core := raw.Section("core")
	var cfg Config
	if v := core.Option("repositoryformatversion"); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("read config %s: core.repositoryformatversion %q: %w", r.configPath(), v, err)
		}
		cfg.Core.RepositoryFormatVersion = n
	}
	if cfg.Core.FileMode, err = parseBool(core, "filemode"); err != nil {
		return nil, fmt.Errorf("read config %s: %w", r.configPath(), err)
	}
	if cfg.Core.Bare, err = parseBool(core, "bare"); err != nil {
		return nil, fmt.Errorf("read config %s: %w", r.configPath(), err)
	}
	return &cfg, nil
}

// parseBool reads a boolean [core] key using git's spellings.
func parseBool(s *gitconfig.Section, key string) (bool, error) {
	v := strings.ToLower(strings.TrimSpace(s.Option(key)))
	switch v {
	case "", "false", "no", "off", "0":
		return false, nil
	case "true", "yes", "on", "1":
		return true, nil
	}
	return false, fmt.Errorf("core.%s: invalid boolean %q", key, v)
}

// ReloadConfig re-reads .git/config into r.Config.
func (r *Repository) ReloadConfig() error {
	cfg, err := r.ReadConfig()
	if err != nil {
		return err
	}
	r.Config = cfg
	return nil
}

// WriteConfig atomically writes .git/config and updates r.Config. The
// tab-indented [core] table the encoder produces is valid git config.
func (r *Repository) WriteConfig(cfg *Config) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.Indent = "\t"
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("write config: encode: %w", err)
	}
	if err := writeFileAtomic(r.GitDir, r.configPath(), buf.Bytes()); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	r.Config = cfg
	return nil
}

// writeFileAtomic writes data to a temp file in dir and renames it to path.
func writeFileAtomic(dir, path string, data []byte) error {
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("tmpfile: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
