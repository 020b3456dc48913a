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
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/gobi-project/gobi/data"
)

// Result collects everything a sampler run produces. The framework
// creates it before the run and hands it to the sampler, which
// populates the sample and evidence fields and returns it.
type Result struct {
	// ID identifies the run.
	ID uuid.UUID
	// SamplerName is the declared name of the sampler that ran.
	SamplerName string
	// Outdir and Label name the run's output artifacts.
	Outdir string
	Label  string
	// SearchParameterKeys are the sampled parameter names, one per
	// column of Samples.
	SearchParameterKeys []string

	// Samples holds the posterior samples, rows are samples and
	// columns are parameters.
	Samples data.Matrix
	// LogLikelihoods and LogPriors hold per-sample evaluations,
	// aligned row by row with Samples.
	LogLikelihoods data.Vector
	LogPriors      data.Vector
	// NestedSamples holds the full drawn sample set kept for
	// evidence and diagnostic bookkeeping.
	NestedSamples data.Matrix

	// LogEvidence estimates the log marginal likelihood of the data;
	// LogEvidenceErr estimates its standard error.
	LogEvidence    float64
	LogEvidenceErr float64
}

// NewResult returns a Result for a fresh run. An empty label defaults
// to the first segment of the run ID.
func NewResult(samplerName, outdir, label string) *Result {
	id := uuid.New()
	if label == "" {
		label = strings.SplitN(id.String(), "-", 2)[0]
	}

	return &Result{
		ID:          id,
		SamplerName: samplerName,
		Outdir:      outdir,
		Label:       label,
	}
}

// Validate checks the row alignment of the populated sample fields:
// the per-sample evaluation arrays must have exactly one entry per
// posterior sample row.
func (r *Result) Validate() error {
	if len(r.LogLikelihoods) != r.Samples.Rows() {
		return errors.Errorf("have %d log likelihoods for %d posterior samples",
			len(r.LogLikelihoods), r.Samples.Rows())
	}
	if len(r.LogPriors) != r.Samples.Rows() {
		return errors.Errorf("have %d log priors for %d posterior samples",
			len(r.LogPriors), r.Samples.Rows())
	}
	if len(r.SearchParameterKeys) > 0 && r.Samples.Rows() > 0 &&
		r.Samples.Cols() != len(r.SearchParameterKeys) {
		return errors.Errorf("have %d columns for %d search parameters",
			r.Samples.Cols(), len(r.SearchParameterKeys))
	}

	return nil
}
