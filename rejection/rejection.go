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

// Package rejection implements a demonstration sampler: prior draws
// weighted by a stochastic likelihood-ratio accept/reject rule.
//
// The algorithm is a placeholder showing how to satisfy the sampler
// contract, not a real inference method. A production sampler would
// replace the body of Run while keeping the same contract.
package rejection

import (
	"math"
	"math/rand"

	"github.com/pkg/errors"

	"github.com/gobi-project/gobi/data"
	"github.com/gobi-project/gobi/prior"
	"github.com/gobi-project/gobi/sampler"
)

const (
	samplerName  = "rejection"
	abbreviation = "rej"
)

func init() {
	sampler.MustRegister(samplerName, func(priors *prior.Set, logLikelihood sampler.LogLikelihoodFunc, kwargs sampler.Kwargs, rng *rand.Rand) (sampler.Sampler, error) {
		return New(priors, logLikelihood, kwargs, rng)
	})
}

// Sampler draws an initial batch of samples from the prior and keeps
// each one with probability proportional to its likelihood ratio
// against the best draw.
type Sampler struct {
	priors        *prior.Set
	logLikelihood sampler.LogLikelihoodFunc
	logPrior      sampler.LogPriorFunc
	kwargs        sampler.Kwargs
	rng           *rand.Rand
}

// New configures a new instance of the sampler. User-supplied kwargs
// are merged against the declared defaults, dropping unrecognized
// keys. The joint log prior evaluator is derived from the prior set.
func New(priors *prior.Set, logLikelihood sampler.LogLikelihoodFunc, kwargs sampler.Kwargs, rng *rand.Rand) (*Sampler, error) {
	if priors == nil || priors.Len() == 0 {
		return nil, errors.New("a non-empty prior set is required")
	}
	if logLikelihood == nil {
		return nil, errors.New("a log likelihood evaluator is required")
	}
	if rng == nil {
		return nil, errors.New("a source of randomness is required")
	}

	s := &Sampler{
		priors:        priors,
		logLikelihood: logLikelihood,
		logPrior:      priors.LogProb,
		rng:           rng,
	}
	s.kwargs = kwargs.Merge(s.DefaultKwargs())

	return s, nil
}

// ExternalSamplerName names the package backing this sampler. No
// external code is required here, so it is the framework itself.
func (s *Sampler) ExternalSamplerName() string {
	return "gobi"
}

// DefaultKwargs declares the recognized keyword arguments and their
// defaults. Any argument not included here is removed before the
// sampler runs.
func (s *Sampler) DefaultKwargs() sampler.Kwargs {
	return sampler.Kwargs{
		"ninitial": 100,
	}
}

func (s *Sampler) Name() string {
	return samplerName
}

func (s *Sampler) Abbreviation() string {
	return abbreviation
}

// Kwargs returns the merged keyword arguments the run will use.
func (s *Sampler) Kwargs() sampler.Kwargs {
	return s.kwargs
}

// Run draws ninitial samples from the prior, evaluates the log
// likelihood and log prior of each, selects posterior samples by the
// accept/reject rule and populates res. The full drawn set is stored
// as nested samples; the mean and standard deviation of the drawn log
// likelihoods estimate the log evidence and its error.
//
// Faults raised while sampling the prior or evaluating a sample
// propagate to the caller; res is left partially populated in that
// case and should be discarded.
func (s *Sampler) Run(res *sampler.Result) (*sampler.Result, error) {
	ninitial, err := s.kwargs.Int("ninitial")
	if err != nil {
		return nil, err
	}

	draws, err := s.priors.Sample(s.rng, ninitial)
	if err != nil {
		return nil, errors.Wrap(err, "cannot draw initial prior samples")
	}

	logl := make(data.Vector, draws.Rows())
	logp := make(data.Vector, draws.Rows())
	for i := 0; i < draws.Rows(); i++ {
		logl[i], err = s.logLikelihood(draws.Row(i))
		if err != nil {
			return nil, errors.Wrapf(err, "log likelihood evaluation failed at sample %d", i)
		}
		logp[i], err = s.logPrior(draws.Row(i))
		if err != nil {
			return nil, errors.Wrapf(err, "log prior evaluation failed at sample %d", i)
		}
	}

	u := make([]float64, draws.Rows())
	for i := range u {
		u[i] = s.rng.Float64()
	}
	keep := selectKept(logl, u)

	res.SearchParameterKeys = s.priors.Names()
	res.Samples = draws.SelectRows(keep)
	res.LogLikelihoods = logl.Select(keep)
	res.LogPriors = logp.Select(keep)
	res.NestedSamples = draws
	res.LogEvidence = logl.Mean()
	res.LogEvidenceErr = logl.StdDev()

	return res, nil
}

// selectKept returns the indices i for which
// logl[i] - max(logl) > log(u[i]), in increasing order. A sample is
// kept with probability equal to its likelihood ratio against the
// best sample, independently across samples.
func selectKept(logl data.Vector, u []float64) []int {
	if len(logl) == 0 {
		return nil
	}

	logw := logl.AddScalar(-logl.Max())
	keep := make([]int, 0, len(logw))
	for i, w := range logw {
		if w > math.Log(u[i]) {
			keep = append(keep, i)
		}
	}

	return keep
}
