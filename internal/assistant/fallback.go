package assistant

import "math/rand"

// FallbackReplies are returned to the visitor when the provider is
// unreachable, so the chat widget never shows an error.
var FallbackReplies = []string{
	"I'm having a moment of cosmic interference. Could you ask me that again?",
	"The aether is a bit turbulent right now. Give me a second and try once more!",
	"My connection to the AetherX core slipped. Ask me again and I'll do better.",
	"Something scrambled my signal. Try that question one more time?",
}

// FallbackReply picks one canned reply at random.
func FallbackReply() string {
	return FallbackReplies[rand.Intn(len(FallbackReplies))]
}
