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

package strategy

import (
	"path"
	"reflect"
	"sync"

	"dirpx.dev/rtti/apis"
	uref "dirpx.dev/rtti/utils/reflect"
)

// NewReflectStrategy creates an apis.Strategy that derives names from the Go
// type name using utils/reflect.BareName and memoization.
func NewReflectStrategy() apis.Strategy {
	return reflectStrategy{}
}

// reflectStrategy is the universal fallback. It strips pointers via
// Normalize, reduces the type string to its bare identifier (dropping package
// qualification and type arguments), and optionally prefixes the package base.
type reflectStrategy struct{}

// Ensure reflectStrategy implements apis.Strategy.
var _ apis.Strategy = (*reflectStrategy)(nil)

// cacheKey ensures memoization respects all config knobs that affect naming.
type cacheKey struct {
	t         reflect.Type
	qualified bool
	maxUnwrap int16
}

// typeNameCache caches derived names by (type, config knobs).
var typeNameCache sync.Map // key: cacheKey, val: string

// TryResolveType derives the canonical name for t.
// Types that do not normalize to a named type are not handled.
func (reflectStrategy) TryResolveType(t reflect.Type, cfg apis.Config) (string, bool) {
	if t == nil {
		return "", false
	}
	name := byType(t, cfg)
	return name, name != ""
}

// byType derives the name for t with memoization.
func byType(t reflect.Type, cfg apis.Config) string {
	key := cacheKey{
		t:         t,
		qualified: cfg.QualifiedNames,
		maxUnwrap: int16(cfg.MaxUnwrap),
	}
	if v, ok := typeNameCache.Load(key); ok {
		return v.(string)
	}

	base, err := uref.Normalize(t, cfg)
	if err != nil || base == nil {
		typeNameCache.Store(key, "")
		return ""
	}

	name := uref.BareName(base.String())
	if name != "" && cfg.QualifiedNames {
		if p := base.PkgPath(); p != "" {
			name = path.Base(p) + "." + name
		}
	}

	typeNameCache.Store(key, name)
	return name
}
