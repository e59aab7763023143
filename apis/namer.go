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

// Namer lets a type choose its canonical registry name instead of the one
// derived from its Go type name. It is consulted on the zero value of the
// type (and of a pointer to it), so it must not depend on instance state.
//
// Libraries that define types whose bare Go names collide with types of
// another library (two packages each declaring "Button", say) implement
// Namer to keep registry names unique.
type Namer interface {
	TypeName() string
}
