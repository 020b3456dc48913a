/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sampler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gobi-project/gobi/sampler"
)

func TestKwargs_Merge(t *testing.T) {
	defaults := sampler.Kwargs{"ninitial": 100, "tolerance": 0.1}

	merged := sampler.Kwargs{"ninitial": 500, "walkers": 32}.Merge(defaults)

	assert.Equal(t, 500, merged["ninitial"], "recognized keys should override defaults")
	assert.Equal(t, 0.1, merged["tolerance"], "unset keys should keep their defaults")
	_, ok := merged["walkers"]
	assert.False(t, ok, "unrecognized keys should be dropped")
}

func TestKwargs_MergeEmpty(t *testing.T) {
	defaults := sampler.Kwargs{"ninitial": 100}

	merged := sampler.Kwargs{}.Merge(defaults)
	assert.Equal(t, defaults, merged, "empty kwargs should reduce to the defaults")

	var nilKwargs sampler.Kwargs
	merged = nilKwargs.Merge(defaults)
	assert.Equal(t, defaults, merged, "nil kwargs should reduce to the defaults")
}

func TestKwargsFromYAML(t *testing.T) {
	k, err := sampler.KwargsFromYAML([]byte("ninitial: 250\ntolerance: 0.5\n"))
	if err != nil {
		t.Fatalf("Error parsing kwargs: %v", err)
	}

	n, err := k.Int("ninitial")
	if err != nil {
		t.Fatalf("Error reading ninitial: %v", err)
	}
	assert.Equal(t, 250, n)

	tol, err := k.Float("tolerance")
	if err != nil {
		t.Fatalf("Error reading tolerance: %v", err)
	}
	assert.Equal(t, 0.5, tol)

	_, err = sampler.KwargsFromYAML([]byte(": ["))
	assert.Error(t, err, "malformed YAML should be rejected")
}

func TestKwargs_Getters(t *testing.T) {
	k := sampler.Kwargs{
		"count":   float64(4),
		"ratio":   3,
		"comment": "none",
	}

	n, err := k.Int("count")
	if err != nil {
		t.Fatalf("Error reading count: %v", err)
	}
	assert.Equal(t, 4, n, "integral floats should convert to int")

	f, err := k.Float("ratio")
	if err != nil {
		t.Fatalf("Error reading ratio: %v", err)
	}
	assert.Equal(t, 3.0, f, "ints should convert to float")

	_, err = k.Int("comment")
	assert.Error(t, err, "non-numeric values should be rejected")
	_, err = k.Int("missing")
	assert.Error(t, err, "missing keys should be rejected")
	_, err = k.Float("missing")
	assert.Error(t, err, "missing keys should be rejected")
}
