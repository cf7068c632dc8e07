package types

import (
	"errors"
	"fmt"
	"gdtools.org/lemmatizer/logger"
	"gopkg.in/yaml.v3"
	"os"
	"path"
	"strings"
	"sync"
)

const (
	// pipeline type
	TreebankPipeline = "treebank"

	// features
	GOCFeature    = "goc"
	LemmaFeature  = "lemma"
	FeatsFeature  = "feats"
	SubcatFeature = "subcat"
)

var ErrPipelineType = errors.New("wrong pipeline type")

type ParamsConfig struct {
	// OverwriteLemma replaces lemmas already present in the input.
	OverwriteLemma bool `yaml:"overwrite_lemma" json:"overwrite_lemma"`
}

type Configuration struct {
	Name     string       `json:"name"`
	FilePath string       `json:"file_path"`
	Params   ParamsConfig `yaml:"params" json:"params"`
	Pipeline string       `yaml:"pipeline" json:"pipeline"`
	Features []string     `yaml:"features" json:"features"`
}

func (cfg Configuration) CheckFeature(featureName string) bool {
	for _, feat := range cfg.Features {
		if feat == featureName {
			return true
		}
	}

	return false
}

func LoadConfiguration(filePath string) (Configuration, error) {
	_, fileName := path.Split(filePath)
	cfg := Configuration{
		Name:     strings.TrimSuffix(fileName, ".yaml"),
		FilePath: filePath,
	}
	buf, err := os.ReadFile(filePath)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", fileName, err)
	}
	if cfg.Pipeline != TreebankPipeline {
		return cfg, fmt.Errorf("%s: %w %q", fileName, ErrPipelineType, cfg.Pipeline)
	}
	return cfg, nil
}

// LoadConfigurations reads every .yaml file of dirPath. Files that fail to
// parse are logged and skipped.
func LoadConfigurations(dirPath string) ([]Configuration, error) {
	cfgLogger := logger.NewLogger("LoadConfigurations")

	files, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, err
	}

	var wg sync.WaitGroup
	configChan := make(chan Configuration, len(files))
	for _, f := range files {
		// Skip dirs and non-yaml files
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".yaml") {
			continue
		}

		wg.Add(1)
		go func(filePath string) {
			defer wg.Done()
			cfg, err := LoadConfiguration(filePath)
			if err != nil {
				cfgLogger.Err(err).Str("file_path", filePath).Msg("Skipping configuration")
				return
			}
			configChan <- cfg
		}(path.Join(dirPath, f.Name()))
	}

	go func() {
		wg.Wait()
		close(configChan)
	}()

	configs := make([]Configuration, 0, len(configChan))
	for cfg := range configChan {
		configs = append(configs, cfg)
	}
	return configs, nil
}
