// SPDX-License-Identifier: EPL-2.0

// Package playback plays normalized narration samples on the default audio
// device through github.com/ebitengine/oto/v3.
//
// oto allows a single context per process, so create one Player and reuse
// it for every narration at the same rate.
package playback
