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

package builder

import (
	"dirpx.dev/rtti/apis"
	"dirpx.dev/rtti/registry"
	"dirpx.dev/rtti/resolver"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildResolver returns the standard naming chain: apis.Namer first, then
// the reflect-derived bare name.
func (b *builder) BuildResolver(_ apis.Config) apis.Resolver {
	return resolver.Default()
}

// BuildRegistry builds a new apis.Registry that names types with res under
// cfg. If a previous registry is provided, its entries are re-registered into
// the new one with their original discriminators.
//
// Migration goes through Register, so a new naming configuration that makes
// two previously distinct types collide is fatal.
func (b *builder) BuildRegistry(cfg apis.Config, res apis.Resolver, prev apis.Registry) apis.Registry {
	nreg := registry.New(cfg, res)
	if prev != nil {
		for _, e := range prev.Entries() {
			nreg.Register(e.Type, e.ID.UUID(), e.ID.Library().UUID())
		}
	}
	return nreg
}
