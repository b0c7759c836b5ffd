// Copyright 2025 go-highway Authors
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

// Command mlprims inspects and benchmarks the matrix operators.
//
// Usage:
//
//	mlprims info
//	mlprims bench --op list
//	mlprims bench --op ratio --n 1000000 --dtype f32 --iters 20
//	mlprims bench --op divskipzero --rows 4096 --cols 512 --callers 4
//
// The global flags --workers and --min-chunk override MLPRIMS_NUM_WORKERS
// and MLPRIMS_MIN_CHUNK. --verbose enables debug logging.
package main

import (
	"fmt"
	"os"
)

func main() {
	os.Exit(run())
}

func run() int {
	root, a := newRootCmd()
	defer a.close()

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
