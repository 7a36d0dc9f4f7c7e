// Copyright 2026 nekitdev
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package versions

// Phase spellings recognized in release tags. Short spellings expand to their
// long forms on construction, so stored phases are always long.
const (
	phaseAlpha     = "alpha"
	phaseBeta      = "beta"
	phaseCandidate = "candidate"
	phaseRC        = "rc"
	phasePreview   = "preview"
	phasePre       = "pre"
	phasePost      = "post"
	phaseRev       = "rev"
	phaseDev       = "dev"

	shortAlpha     = "a"
	shortBeta      = "b"
	shortCandidate = "c"
	shortRev       = "r"
)

// Default phases used when a tag is created without one.
const (
	defaultPrePhase  = phaseAlpha
	defaultPostPhase = phasePost
	defaultDevPhase  = phaseDev
)

// expandPhases maps short spellings to their long forms.
var expandPhases = map[string]string{
	shortAlpha:     phaseAlpha,
	shortBeta:      phaseBeta,
	shortCandidate: phaseCandidate,
	shortRev:       phaseRev,
}

// shortenPhases maps long spellings to their short forms.
var shortenPhases = map[string]string{
	phaseAlpha:     shortAlpha,
	phaseBeta:      shortBeta,
	phaseCandidate: shortCandidate,
	phaseRev:       shortRev,
}

// normalizePhases maps equivalent spellings to their preferred forms.
var normalizePhases = map[string]string{
	phaseCandidate: phaseRC,
	phasePreview:   phaseRC,
	phasePre:       phaseRC,
	phaseRev:       phasePost,
}

// nextPhases maps each pre-release phase to the phase that follows it.
// The final phase (`rc`) has no successor.
var nextPhases = map[string]string{
	phaseAlpha: phaseBeta,
	phaseBeta:  phaseRC,
}

// prePhases, postPhases and devPhases are the spellings each tag kind accepts,
// in the order used by the version grammar alternations. Long spellings come
// first so that submatches prefer them over their prefixes.
var (
	prePhases  = []string{phaseAlpha, phaseBeta, phaseCandidate, shortAlpha, shortBeta, shortCandidate, phaseRC, phasePreview, phasePre}
	postPhases = []string{phasePost, phaseRev, shortRev}
	devPhases  = []string{phaseDev}
)

var (
	prePhaseSet  = phaseSet(prePhases)
	postPhaseSet = phaseSet(postPhases)
	devPhaseSet  = phaseSet(devPhases)
)

func phaseSet(phases []string) map[string]bool {
	set := make(map[string]bool, len(phases))
	for _, phase := range phases {
		set[phase] = true
	}
	return set
}

// expandPhase returns the long form of a phase spelling.
func expandPhase(phase string) string {
	if expanded, ok := expandPhases[phase]; ok {
		return expanded
	}
	return phase
}

// shortenPhase returns the short form of a phase spelling.
func shortenPhase(phase string) string {
	if shortened, ok := shortenPhases[phase]; ok {
		return shortened
	}
	return phase
}

// normalizePhase returns the preferred form of a phase spelling.
func normalizePhase(phase string) string {
	if normal, ok := normalizePhases[phase]; ok {
		return normal
	}
	return phase
}
