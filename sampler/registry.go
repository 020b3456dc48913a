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
	"math/rand"
	"sort"
	"sync"

	"github.com/pkg/errors"

	"github.com/gobi-project/gobi/prior"
)

// Factory constructs a Sampler from the inputs the framework owns: a
// prior set, a log-likelihood evaluator, user-supplied kwargs and a
// source of randomness.
type Factory func(priors *prior.Set, logLikelihood LogLikelihoodFunc, kwargs Kwargs, rng *rand.Rand) (Sampler, error)

var (
	registryMu sync.Mutex
	registry   = make(map[string]Factory)
)

// Register makes a sampler constructible by name. It returns an error
// if the name is empty or already taken.
func Register(name string, f Factory) error {
	registryMu.Lock()
	defer registryMu.Unlock()

	if name == "" {
		return errors.New("sampler name should not be empty")
	}
	if _, ok := registry[name]; ok {
		return errors.Errorf("sampler %s already registered", name)
	}
	registry[name] = f

	return nil
}

// MustRegister is like Register but panics on error. It is intended
// for use from a sampler package's init function.
func MustRegister(name string, f Factory) {
	if err := Register(name, f); err != nil {
		panic(err)
	}
}

// New constructs the sampler registered under name. It returns an
// error if no sampler with that name is registered, or if the
// sampler's factory rejects the inputs.
func New(name string, priors *prior.Set, logLikelihood LogLikelihoodFunc, kwargs Kwargs, rng *rand.Rand) (Sampler, error) {
	registryMu.Lock()
	f, ok := registry[name]
	registryMu.Unlock()

	if !ok {
		return nil, errors.Errorf("no sampler registered under name %s", name)
	}

	return f(priors, logLikelihood, kwargs, rng)
}

// Registered returns the names of all registered samplers, sorted.
func Registered() []string {
	registryMu.Lock()
	defer registryMu.Unlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
