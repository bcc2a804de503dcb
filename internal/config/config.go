package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultK      = 1.0
	DefaultSteps  = 500
	DefaultSims   = 50
	DefaultTail   = 100
	DefaultBurnIn = 500
	DefaultIters  = 2000
)

type Config struct {
	K     float64     `yaml:"k"`
	Steps int         `yaml:"steps"`
	Sims  int         `yaml:"sims"`
	Seed  int64       `yaml:"seed"`
	Tail  int         `yaml:"tail"`
	Sweep SweepConfig `yaml:"sweep"`
	Out   OutConfig   `yaml:"out"`
}

type SweepConfig struct {
	KMin   float64 `yaml:"k_min"`
	KMax   float64 `yaml:"k_max"`
	KSteps int     `yaml:"k_steps"`
	Iters  int     `yaml:"iters"`
	BurnIn int     `yaml:"burn_in"`
	I0     float64 `yaml:"i0"`
	Theta0 float64 `yaml:"theta0"`
}

type OutConfig struct {
	Dir     string `yaml:"dir"`
	CSVDir  string `yaml:"csv_dir"`
	PlotDir string `yaml:"plot_dir"`
}

func DefaultConfig() *Config {
	return &Config{
		K:     DefaultK,
		Steps: DefaultSteps,
		Sims:  DefaultSims,
		Tail:  DefaultTail,
		Sweep: SweepConfig{
			KMin:   0.0,
			KMax:   4.0,
			KSteps: 400,
			Iters:  DefaultIters,
			BurnIn: DefaultBurnIn,
			I0:     1.0,
			Theta0: 2.0,
		},
		Out: OutConfig{
			Dir:     ".stdmap",
			CSVDir:  "results/csvs",
			PlotDir: "results/plots",
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
