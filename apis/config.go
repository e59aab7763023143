/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package apis

import (
	"github.com/rs/zerolog"
)

// Config carries read-only knobs for naming and diagnostics.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// MaxUnwrap limits how many pointer levels are stripped before a type is
	// named (**T -> T needs 2). Acts as a guard against pathological nesting.
	MaxUnwrap int

	// QualifiedNames prefixes derived names with the base of the package
	// path ("construct.Construct" instead of "Construct").
	QualifiedNames bool

	// Logger receives registration records and fatal configuration errors.
	Logger zerolog.Logger
}
