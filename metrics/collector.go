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

// Package metrics exposes the state of a type registry and its downcast
// routers to Prometheus.
package metrics

import (
	"reflect"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"dirpx.dev/rtti/apis"
)

const namespace = "rtti"

// Collector is a prometheus.Collector that reports, on every scrape, the
// registered types per library, the handlers per router and the downcast
// outcomes per router.
type Collector struct {
	reg apis.Registry

	mu      sync.RWMutex
	routers []apis.RouterInfo

	types     *prometheus.Desc
	handlers  *prometheus.Desc
	downcasts *prometheus.Desc
}

// Ensure Collector implements prometheus.Collector.
var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a collector over reg and routers.
func NewCollector(reg apis.Registry, routers ...apis.RouterInfo) *Collector {
	c := &Collector{
		reg: reg,
		types: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "registered_types"),
			"Number of types registered per library",
			[]string{"library"}, nil,
		),
		handlers: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "downcast_handlers"),
			"Number of downcast handlers registered per target interface",
			[]string{"target"}, nil,
		),
		downcasts: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "downcasts_total"),
			"Total number of downcasts per target interface and outcome",
			[]string{"target", "outcome"}, nil,
		),
	}
	for _, r := range routers {
		c.AddRouter(r)
	}
	return c
}

// AddRouter adds r to the routers reported by c. Nil routers and routers
// already added are ignored. Routers sharing a target name are reported as
// one series: their libraries are merged and their outcomes summed.
func (c *Collector) AddRouter(r apis.RouterInfo) {
	if r == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, existing := range c.routers {
		if sameRouter(existing, r) {
			return
		}
	}
	c.routers = append(c.routers, r)
}

// sameRouter reports whether a and b are the same router value. Values of
// non-comparable types are never considered the same.
func sameRouter(a, b apis.RouterInfo) bool {
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}

// targetStats accumulates the routers of one target.
type targetStats struct {
	libs         map[apis.LibraryIdentifier]struct{}
	hits, misses uint64
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.types
	ch <- c.handlers
	ch <- c.downcasts
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	perLib := make(map[string]int)
	for _, e := range c.reg.Entries() {
		perLib[e.ID.Library().String()]++
	}
	for lib, n := range perLib {
		ch <- prometheus.MustNewConstMetric(c.types, prometheus.GaugeValue, float64(n), lib)
	}

	c.mu.RLock()
	routers := append([]apis.RouterInfo(nil), c.routers...)
	c.mu.RUnlock()

	perTarget := make(map[string]*targetStats)
	for _, r := range routers {
		ts, ok := perTarget[r.Target()]
		if !ok {
			ts = &targetStats{libs: make(map[apis.LibraryIdentifier]struct{})}
			perTarget[r.Target()] = ts
		}
		for _, lib := range r.Libraries() {
			ts.libs[lib] = struct{}{}
		}
		hits, misses := r.Stats()
		ts.hits += hits
		ts.misses += misses
	}

	for target, ts := range perTarget {
		ch <- prometheus.MustNewConstMetric(c.handlers, prometheus.GaugeValue, float64(len(ts.libs)), target)
		ch <- prometheus.MustNewConstMetric(c.downcasts, prometheus.CounterValue, float64(ts.hits), target, "hit")
		ch <- prometheus.MustNewConstMetric(c.downcasts, prometheus.CounterValue, float64(ts.misses), target, "miss")
	}
}
