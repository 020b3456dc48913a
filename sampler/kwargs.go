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

package sampler

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Kwargs holds keyword arguments configuring a sampler run.
type Kwargs map[string]interface{}

// Merge overlays the recognized keys of k on top of defaults and
// returns the combination in a new Kwargs. A key is recognized when it
// is present in defaults; any other key is silently dropped.
func (k Kwargs) Merge(defaults Kwargs) Kwargs {
	merged := make(Kwargs, len(defaults))
	for key, val := range defaults {
		merged[key] = val
	}
	for key, val := range k {
		if _, ok := defaults[key]; ok {
			merged[key] = val
		}
	}

	return merged
}

// KwargsFromYAML parses keyword arguments from a YAML mapping.
func KwargsFromYAML(b []byte) (Kwargs, error) {
	k := make(Kwargs)
	if err := yaml.Unmarshal(b, &k); err != nil {
		return nil, errors.Wrap(err, "cannot parse kwargs")
	}

	return k, nil
}

// Int returns the value under key as an int. YAML and literal Go
// values may carry integers as int, int64 or float64; all are
// accepted when the value is integral.
func (k Kwargs) Int(key string) (int, error) {
	val, ok := k[key]
	if !ok {
		return 0, errors.Errorf("kwarg %s not set", key)
	}

	switch v := val.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v == float64(int(v)) {
			return int(v), nil
		}
	}

	return 0, errors.Errorf("kwarg %s is not an integer", key)
}

// Float returns the value under key as a float64, accepting integer
// values as well.
func (k Kwargs) Float(key string) (float64, error) {
	val, ok := k[key]
	if !ok {
		return 0, errors.Errorf("kwarg %s not set", key)
	}

	switch v := val.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	}

	return 0, errors.Errorf("kwarg %s is not a number", key)
}
