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

// Package prior includes prior probability distributions over
// single model parameters.
//
// Package prior provides the Prior interface
// along with different implementations of this interface,
// and a Set type holding an ordered collection of named priors.
// Its primary purpose is to support drawing parameter vectors
// from the joint prior before any data is seen, and evaluating
// the joint log prior probability of a parameter vector.
package prior
