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

// Package transmutation moves handles up and down a type hierarchy.
//
// Upcast widens a value to one of its interfaces and is checked by the
// compiler. Downcasts go through a Router, one per target interface, that
// maps the concrete type's library to the Handler that library registered.
// A library that does not know which modules will extend it can therefore
// still narrow an abstract handle to any interface, as long as the module
// defining the concrete type registered a handler with that interface's
// router during its initialization.
package transmutation
