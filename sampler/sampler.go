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
	"path/filepath"

	"github.com/gobi-project/gobi/data"
)

// LogLikelihoodFunc scores how well a parameter vector explains the
// observed data, on the log scale.
type LogLikelihoodFunc func(theta data.Vector) (float64, error)

// LogPriorFunc returns the joint log prior probability of a parameter
// vector.
type LogPriorFunc func(theta data.Vector) (float64, error)

// Sampler is the contract a sampling algorithm implements to be run
// by the inference framework.
type Sampler interface {
	// ExternalSamplerName names the third-party package backing the
	// sampler, or the framework itself for a framework-only
	// implementation.
	ExternalSamplerName() string

	// DefaultKwargs declares every keyword argument the sampler
	// recognizes together with its default value. Keys absent from
	// this mapping are stripped from user-supplied kwargs before the
	// sampler runs.
	DefaultKwargs() Kwargs

	// Name is the declared sampler name, used to name output
	// artifacts and to register the sampler with the framework.
	Name() string

	// Abbreviation is a short form of the name used for output
	// artifacts when declared; it is empty otherwise.
	Abbreviation() string

	// Run executes the sampling procedure once, populating and
	// returning res. Any failure during prior sampling or likelihood
	// evaluation propagates to the caller.
	Run(res *Result) (*Result, error)
}

// OutputDeclarer is implemented by samplers that override the default
// expected-outputs policy.
type OutputDeclarer interface {
	ExpectedOutputs(outdir, label string) (filenames, directories []string)
}

// ExpectedOutputs reports the file and directory paths a run of s
// with the given outdir and label is expected to produce. When s does
// not declare its own outputs, the default policy applies: no files,
// and a single directory named after the sampler's abbreviation (or
// name, when no abbreviation is declared) and the label.
//
// The declaration is consulted by job-transfer logic; the sampler
// itself does not create these paths.
func ExpectedOutputs(s Sampler, outdir, label string) ([]string, []string) {
	if d, ok := s.(OutputDeclarer); ok {
		return d.ExpectedOutputs(outdir, label)
	}

	prefix := s.Abbreviation()
	if prefix == "" {
		prefix = s.Name()
	}

	return []string{}, []string{filepath.Join(outdir, prefix+"_"+label)}
}
