// SPDX-License-Identifier: MIT

// Package config loads lvdens job files: a set of evaluation points laid out
// as a matrix plus log-normal parameters, each either shared or per point.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// LoadJob reads and maps the job file at path.
func LoadJob(path string) (Job, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Job{}, &OpError{
			Op:   "config.load_job",
			Kind: KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	return ParseJob(path, b)
}

// ParseJob decodes a job document. path is used only in error messages.
func ParseJob(path string, b []byte) (Job, error) {
	var dto YAMLJob
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return Job{}, &OpError{
			Op:   "config.load_job",
			Kind: KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapJob(path, dto)
}
