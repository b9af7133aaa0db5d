// Copyright 2021. Silvano DAL ZILIO.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

//go:build debug

package mtrobdd

import (
	"log"
	"os"
)

const _DEBUG bool = true
const _LOGLEVEL int = 1

func init() {
	log.SetOutput(os.Stdout)
}

// checkInvariants runs the O(|nodes|) sanity checks from the package's
// testable properties. It is only compiled in with the debug build tag; a
// violation panics instead of silently corrupting the diagram, since it
// signals a bug in this package rather than a caller error.
func (d *Diagram) checkInvariants(op string) {
	if err := d.validateInvariants(); err != nil {
		log.Panicf("mtrobdd: %s: %v", op, err)
	}
}
