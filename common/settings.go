package common

import (
	"os"
	"path/filepath"

	"github.com/greencure/greencure-cli/logger"
	"gopkg.in/yaml.v3"
)

const (
	ProfilePractical = "practical"
	ProfileAgronomic = "agronomic"
)

type Report struct {
	Title string `yaml:"title"`
}

type Settings struct {
	Language string `yaml:"language"`
	Tone     string `yaml:"tone_instructions"`
	Region   string `yaml:"region_focus"`
	Profile  string `yaml:"profile"`
	Report   Report `yaml:"report"`
}

func WithDefaultSettings() Settings {
	return Settings{
		Language: "en-US",
		Region:   "India",
		Profile:  ProfilePractical,
		Report: Report{
			Title: "GreenCure Farm Report",
		},
	}
}

func WithYamlFile() Settings {
	settings := WithDefaultSettings()

	var filePath string
	filenames := []string{"greencure.yml", "greencure.yaml"}

	for _, name := range filenames {
		if _, err := os.Stat(name); err == nil {
			filePath = name
			break
		}
	}

	if filePath == "" {
		filepath.Walk(".", func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if filePath != "" {
				return filepath.SkipDir
			}
			for _, name := range filenames {
				if !info.IsDir() && info.Name() == name {
					filePath = path
					return filepath.SkipDir
				}
			}
			return nil
		})
	}

	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err == nil {
			if err := yaml.Unmarshal(data, &settings); err != nil {
				logger.Infof("Failed to parse YAML file %s: %v", filePath, err)
			} else {
				logger.Infof("Using settings from YAML file: %s", filePath)
			}
		}
	} else {
		logger.Infof("No YAML file found in the current directory or subdirectories. Using default settings.")
	}
	return settings
}
