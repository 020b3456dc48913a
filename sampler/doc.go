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

// Package sampler defines the contract between the inference framework
// and sampler implementations.
//
// A sampler declares its identity (name, optional abbreviation, the
// external package backing it, and the keyword arguments it
// recognizes), runs a single-shot sampling procedure that populates a
// Result, and reports the output artifacts a run is expected to
// produce so that job-transfer logic can collect them.
//
// Implementations register themselves by name with Register, so the
// framework can construct them by looking up a declared sampler name.
package sampler
