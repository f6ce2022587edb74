package detection

import (
	"fmt"

	"github.com/bananabit-dev/neonmachines/internal/extension"
	"github.com/spf13/viper"
	"github.com/zricethezav/gitleaks/v8/config"
	"github.com/zricethezav/gitleaks/v8/detect"
)

type Engine struct {
	detector *detect.Detector
}

type Result struct {
	Description string
}

// NewEngine creates a detection engine with gitleaks initialized from the
// rules file at rulesPath (TOML, gitleaks format).
func NewEngine(rulesPath string) (*Engine, error) {
	// Setup viper to read the rules file
	v := viper.New()
	v.SetConfigType("toml")
	v.SetConfigFile(rulesPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read rules: %w", err)
	}

	// Parse into gitleaks config format
	var vc config.ViperConfig
	if err := v.Unmarshal(&vc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal rules: %w", err)
	}

	// Translate to gitleaks config
	cfg, err := vc.Translate()
	if err != nil {
		return nil, fmt.Errorf("failed to translate rules: %w", err)
	}

	detector := detect.NewDetector(cfg)

	return &Engine{detector: detector}, nil
}

// Detect scans the free-text fields of a request for embedded secrets.
// A non-empty result means the gateway should refuse to execute the
// request.
func (e *Engine) Detect(req extension.Request) []Result {
	var results []Result

	for _, field := range req.StringFields() {
		for _, finding := range e.detector.DetectString(field) {
			results = append(results, Result{Description: finding.Description})
		}
	}
	return results
}
