package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallbackReplyKeywords(t *testing.T) {
	cases := []struct {
		message string
		key     string
	}{
		{"Hello there", "hello"},
		{"what workspace options do you have", "workspace"},
		{"what's the PRICE of an office", "price"}, // "price" outranks "office"
		{"how does booking work", "booking"},
		{"which location are you in", "location"},
		{"I need help", "help"},
		{"do you have an office available", "office"},
		{"looking for a kitchen", "kitchen"},
		{"is there a studio nearby", "studio"},
	}

	for _, tc := range cases {
		assert.Equal(t, fallbackReplies[tc.key], FallbackReply(tc.message), "message %q", tc.message)
	}
}

func TestFallbackReplyVariants(t *testing.T) {
	assert.Equal(t, fallbackReplies["price"], FallbackReply("how much does it cost"))
	assert.Equal(t, fallbackReplies["price"], FallbackReply("what is your hourly rate"))
	assert.Equal(t, fallbackReplies["booking"], FallbackReply("I want to reserve a slot"))
	assert.Equal(t, fallbackReplies["location"], FallbackReply("which city are you in"))
}

func TestFallbackReplyDefault(t *testing.T) {
	assert.Equal(t, fallbackDefault, FallbackReply("tell me a joke"))
	assert.Equal(t, fallbackDefault, FallbackReply(""))
}

func TestFallbackOrderCoversAllReplies(t *testing.T) {
	assert.Len(t, fallbackOrder, len(fallbackReplies))
	for _, key := range fallbackOrder {
		_, ok := fallbackReplies[key]
		assert.True(t, ok, "no reply for keyword %q", key)
	}
}
