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
	"time"

	"github.com/ajroetker/go-qsort/contrib/numio"
	"github.com/ajroetker/go-qsort/qsort"
	"github.com/sirupsen/logrus"
)

// sortFile reads the numbers in input, sorts the full range with the
// configured algorithm and writes them to output. input and output may name
// the same file.
func (a *app) sortFile(input, output string) error {
	log := a.log.WithFields(logrus.Fields{
		"algorithm": a.cfg.Algorithm,
		"input":     input,
		"output":    output,
	})

	values, err := numio.ReadFile(input)
	if err != nil {
		return err
	}
	log.WithField("count", len(values)).Debug("read input")

	start := time.Now()
	if a.stats {
		st := qsort.MeasureWith(a.cfg.Algorithm, values, 0, len(values)-1)
		log = log.WithFields(logrus.Fields{
			"comparisons": st.Comparisons,
			"swaps":       st.Swaps,
			"partitions":  st.Partitions,
			"max_depth":   st.MaxDepth,
		})
	} else {
		qsort.SortWith(a.cfg.Algorithm, values, 0, len(values)-1)
	}
	elapsed := time.Since(start)

	if err := numio.WriteFile(output, values); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"count":   len(values),
		"elapsed": elapsed,
	}).Info("sorted")
	return nil
}
