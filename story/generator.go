// SPDX-License-Identifier: EPL-2.0

package story

import "context"

// Generator is the external generative service.
type Generator interface {
	Story(ctx context.Context, s Settings, prompt string, chapters int) (Draft, error)
	Image(ctx context.Context, s Settings, prompt string) (Image, error)
	Speech(ctx context.Context, s Settings, text string) (Speech, error)
}
