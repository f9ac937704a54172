package ai

import "strings"

// Canned replies used when the Gemini call is unavailable or fails. The
// keyword scan runs in this fixed priority order.
var fallbackOrder = []string{
	"hello", "workspace", "price", "booking", "location", "help",
	"office", "kitchen", "studio",
}

var fallbackReplies = map[string]string{
	"hello": "Hello! I'm the QuickCoWork assistant. I can help you find the " +
		"perfect workspace, answer questions about our services, or assist " +
		"with bookings. How can I help you today?",
	"workspace": "We have several workspace options: professional offices for " +
		"meetings and focused work, commercial kitchens for food businesses, " +
		"and creative studios for photography and art projects. What type of " +
		"space are you looking for?",
	"price": "Our pricing is per hour: offices start at Rs 500/hour, commercial " +
		"kitchens at Rs 800/hour and creative studios at Rs 600/hour. Prices " +
		"vary by location and amenities. Want to see spaces in your area?",
	"booking": "Booking is easy: browse available spaces, select a time slot " +
		"and complete the booking for instant confirmation. No long-term " +
		"commitments, you pay only for what you use.",
	"location": "We have spaces across 25+ cities in India, including Mumbai, " +
		"Delhi, Bangalore, Chennai, Hyderabad and Pune. Where are you " +
		"located? I can help you find nearby options.",
	"help": "I can help you find workspaces, explain pricing, assist with " +
		"bookings and answer general questions about QuickCoWork. What would " +
		"you like to know?",
	"office": "Our professional offices are great for business meetings, client " +
		"presentations and focused work, starting at Rs 500/hour with " +
		"high-speed internet and meeting rooms.",
	"kitchen": "Our commercial kitchens suit food businesses, catering and " +
		"cooking classes, starting at Rs 800/hour with commercial-grade " +
		"equipment and storage.",
	"studio": "Our creative studios are built for photography, videography and " +
		"content creation, starting at Rs 600/hour with professional " +
		"lighting and backdrops.",
}

const fallbackDefault = "I can help you find the perfect workspace, explain " +
	"our pricing, or assist with a booking. Could you tell me more " +
	"specifically what you're looking for?"

// Synonym sets that fold into a primary keyword reply.
var fallbackVariants = []struct {
	words []string
	key   string
}{
	{[]string{"cost", "rate", "fee"}, "price"},
	{[]string{"book", "reserve", "schedule"}, "booking"},
	{[]string{"where", "city", "area"}, "location"},
}

// FallbackReply picks a canned response by scanning the message for known
// keywords, falling back to a generic prompt. It never fails.
func FallbackReply(message string) string {
	lower := strings.ToLower(message)

	for _, key := range fallbackOrder {
		if strings.Contains(lower, key) {
			return fallbackReplies[key]
		}
	}
	for _, v := range fallbackVariants {
		for _, w := range v.words {
			if strings.Contains(lower, w) {
				return fallbackReplies[v.key]
			}
		}
	}
	return fallbackDefault
}
