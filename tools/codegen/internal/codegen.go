// Copyright (c) 2025 Doom4535 All rights reserved.
//
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

package codegen

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"runtime"
	"text/template"
)

// Config holds the loaded level configuration
type Config struct {
	Levels []LevelDefinition `json:"levels"`
}

// LevelDefinition represents a severity level to be generated
type LevelDefinition struct {
	ConstName string `json:"constName"`
	Name      string `json:"name"`
	Comment   string `json:"comment"`
	Stream    string `json:"stream"` // stdout or stderr
}

// ErrStream reports whether the level routes to the error stream.
func (l LevelDefinition) ErrStream() bool {
	return l.Stream == "stderr"
}

// getCodegenDir returns the absolute path to the codegen directory
func getCodegenDir() string {
	_, currentFile, _, _ := runtime.Caller(0)
	return filepath.Dir(filepath.Dir(currentFile)) // Go up from internal/ to codegen/
}

// getTemplatePath returns the path to a template file
func getTemplatePath(templateName string) string {
	return filepath.Join(getCodegenDir(), "templates", templateName)
}

// getOutputPath returns the path to an output file
func getOutputPath(outputName string) string {
	return filepath.Join(getCodegenDir(), "..", "..", "src", "logger", outputName)
}

// loadJSON reads a JSON file from the config directory into target
func loadJSON(filename string, target any) error {
	path := filepath.Join(getCodegenDir(), "config", filename)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config from %s: %w", path, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("parsing %s: %w", filename, err)
	}
	return nil
}

// loadConfig loads the level configuration from the JSON file
func loadConfig() (*Config, error) {
	config := &Config{}

	if err := loadJSON("levels.json", config); err != nil {
		return nil, err
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return config, nil
}

// validateConfig validates the loaded configuration
func validateConfig(config *Config) error {
	return validateLevels(config.Levels)
}

// validateLevels validates level definitions
func validateLevels(levels []LevelDefinition) error {
	if len(levels) == 0 {
		return fmt.Errorf("at least one level is required")
	}

	constNames := make(map[string]bool)
	names := make(map[string]bool)
	for i, level := range levels {
		if level.ConstName == "" {
			return fmt.Errorf("level %d: ConstName is required", i)
		}
		if level.Name == "" {
			return fmt.Errorf("level %d: Name is required", i)
		}
		if level.Comment == "" {
			return fmt.Errorf("level %d: Comment is required", i)
		}
		if level.Stream != "stdout" && level.Stream != "stderr" {
			return fmt.Errorf("level %d: invalid stream '%s', must be stdout or stderr", i, level.Stream)
		}
		if constNames[level.ConstName] {
			return fmt.Errorf("level %d: duplicate const name '%s'", i, level.ConstName)
		}
		if names[level.Name] {
			return fmt.Errorf("level %d: duplicate name '%s'", i, level.Name)
		}
		constNames[level.ConstName] = true
		names[level.Name] = true
	}
	return nil
}

// GenerateLevels generates the levels.go file for the logger package
func GenerateLevels() error {
	config, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	templatePath := getTemplatePath("levels.go.tmpl")
	outputPath := getOutputPath("levels.go")

	return generateFile(templatePath, outputPath, config)
}

// generateFile generates a file using a template
func generateFile(templatePath, outputPath string, config *Config) error {
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return fmt.Errorf("parsing template from %s: %w", templatePath, err)
	}

	var code bytes.Buffer

	// Header
	writeHeader(&code)

	// Package and imports
	code.WriteString("package logger\n\n")
	code.WriteString("import (\n")
	code.WriteString("\t\"fmt\"\n")
	code.WriteString(")\n\n")

	// Execute template
	if err := tmpl.Execute(&code, config); err != nil {
		return fmt.Errorf("executing template: %w", err)
	}

	return writeGeneratedFile(outputPath, code.Bytes())
}

func writeHeader(code *bytes.Buffer) {
	code.WriteString("// Copyright (c) 2025 Doom4535 All rights reserved.\n")
	code.WriteString("//\n")
	code.WriteString("// Use of this source code is governed by a BSD 3-Clause\n")
	code.WriteString("// license that can be found in the LICENSE file.\n\n")
	code.WriteString("// Code generated by go generate; DO NOT EDIT.\n")
	code.WriteString("// This file is generated from tools/codegen/internal/codegen.go\n\n")
}

func writeGeneratedFile(filename string, content []byte) error {
	// Format the generated code
	formatted, err := format.Source(content)
	if err != nil {
		return fmt.Errorf("formatting code: %w", err)
	}

	// Write to the generated file
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	_, err = writer.Write(formatted)
	if err != nil {
		return fmt.Errorf("writing to file: %w", err)
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flushing file: %w", err)
	}

	fmt.Printf("Generated %s successfully\n", filename)
	return nil
}
