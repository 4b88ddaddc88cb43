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
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// promptPaths fills in whichever of input and output is empty by reading one
// line per path from in, input first. Prompts go to w only when interactive.
func promptPaths(in *bufio.Reader, w io.Writer, interactive bool, input, output string) (string, string, error) {
	var err error
	if input == "" {
		if input, err = readPath(in, w, interactive, "input"); err != nil {
			return "", "", err
		}
	}
	if output == "" {
		if output, err = readPath(in, w, interactive, "output"); err != nil {
			return "", "", err
		}
	}
	return input, output, nil
}

func readPath(in *bufio.Reader, w io.Writer, interactive bool, what string) (string, error) {
	if interactive {
		fmt.Fprintf(w, "%s file: ", what)
	}

	line, err := in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", errors.Errorf("no %s path given", what)
		}
		return "", errors.Wrapf(err, "read %s path", what)
	}

	path := strings.TrimSpace(line)
	if path == "" {
		return "", errors.Errorf("no %s path given", what)
	}
	return path, nil
}
