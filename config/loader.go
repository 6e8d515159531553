package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// File is the on-disk shape of the YAML config. Every section is optional;
// omitted fields keep their defaults.
type File struct {
	Window  *Config        `yaml:"window"`
	Physics *PhysicsConfig `yaml:"physics"`
	Player  *SoldierConfig `yaml:"player"`
	Enemy   *SoldierConfig `yaml:"enemy"`
	Bullet  *BulletConfig  `yaml:"bullet"`
	Fade    *FadeConfig    `yaml:"fade"`
	Debug   *DebugConfig   `yaml:"debug"`
}

// Load overlays the globals with a YAML config file and returns the path
// that was used ("" when only defaults apply).
// Search order: customPath -> ~/.shooter/config.yaml -> ./configs/shooter.yaml -> defaults
func Load(customPath string) (string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := Apply(data); err != nil {
			return "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return customPath, nil
	}

	for _, path := range []string{userConfigPath("config.yaml"), filepath.Join("configs", "shooter.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := Apply(data); err != nil {
			return "", fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return path, nil
	}

	return "", nil
}

// Apply decodes data onto the current globals.
func Apply(data []byte) error {
	f := File{
		Window:  C,
		Physics: &Physics,
		Player:  &Player,
		Enemy:   &Enemy,
		Bullet:  &Bullet,
		Fade:    &Fade,
		Debug:   &Debug,
	}
	return yaml.Unmarshal(data, &f)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".shooter", filename)
}
