package campaign

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// CategoryOther is the catch-all topic every campaign must declare; the
// classifier resolves to it when nothing else matches.
const CategoryOther = "Otros"

// Config describes one campaign: ordered topic categories plus metadata.
// Loaded once at startup and shared by reference, never mutated.
type Config struct {
	CampaignName string   `yaml:"campaign_name"`
	Product      string   `yaml:"product"`
	Version      string   `yaml:"version"`
	LastUpdated  string   `yaml:"last_updated"`
	Categories   []string `yaml:"categories"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("[Campaign] failed to read campaign config %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("[Campaign] failed to parse campaign config %q: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	slog.Info("[Campaign] Loaded campaign config",
		slog.String("campaign", cfg.CampaignName),
		slog.String("version", cfg.Version),
		slog.Int("categories", len(cfg.Categories)))

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.CampaignName == "" {
		return fmt.Errorf("[Campaign] campaign_name is required")
	}
	if len(c.Categories) == 0 {
		return fmt.Errorf("[Campaign] at least one category is required")
	}
	if !c.HasCategory(CategoryOther) {
		return fmt.Errorf("[Campaign] category list must include the %q catch-all", CategoryOther)
	}
	return nil
}

func (c *Config) HasCategory(name string) bool {
	for _, cat := range c.Categories {
		if cat == name {
			return true
		}
	}
	return false
}
