// Copyright 2025 go-qsort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"io/fs"
	"strconv"

	"github.com/ajroetker/go-qsort/qsort"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Environment variables read at startup. Flags take precedence.
const (
	envAlgorithm = "QSORT_ALGORITHM"
	envLogLevel  = "QSORT_LOG_LEVEL"
	envWorkers   = "QSORT_WORKERS"
)

// config holds the settings shared by every command.
type config struct {
	Algorithm qsort.Algorithm
	LogLevel  logrus.Level
	Workers   int // 0 means GOMAXPROCS
}

func defaultConfig() config {
	return config{
		Algorithm: qsort.Lomuto,
		LogLevel:  logrus.InfoLevel,
	}
}

type lookupFunc func(key string) (string, bool)

// withEnvFile returns a lookup that consults base first and then the
// variables defined in envFile. A missing envFile is not an error, and the
// process environment is never modified.
func withEnvFile(base lookupFunc, envFile string) (lookupFunc, error) {
	fileEnv := map[string]string{}
	if envFile != "" {
		m, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			fileEnv = m
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, errors.Wrapf(err, "read env file %s", envFile)
		}
	}

	return func(key string) (string, bool) {
		if v, ok := base(key); ok {
			return v, true
		}
		v, ok := fileEnv[key]
		return v, ok
	}, nil
}

// configFromEnv overlays the environment on the defaults. Empty values are
// treated as unset.
func configFromEnv(lookup lookupFunc) (config, error) {
	cfg := defaultConfig()

	if v, ok := lookup(envAlgorithm); ok && v != "" {
		alg, err := qsort.ParseAlgorithm(v)
		if err != nil {
			return cfg, errors.Wrap(err, envAlgorithm)
		}
		cfg.Algorithm = alg
	}

	if v, ok := lookup(envLogLevel); ok && v != "" {
		level, err := logrus.ParseLevel(v)
		if err != nil {
			return cfg, errors.Wrap(err, envLogLevel)
		}
		cfg.LogLevel = level
	}

	if v, ok := lookup(envWorkers); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return cfg, errors.Errorf("%s: want a non-negative integer, got %q", envWorkers, v)
		}
		cfg.Workers = n
	}

	return cfg, nil
}
