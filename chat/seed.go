package chat

// StudyGroupKey is the fixed storage key of the seeded group chat.
const StudyGroupKey = "study-group"

// SeedDirectory returns the startup conversation directory.
func SeedDirectory() *Directory {
	return NewDirectory([]Conversation{
		{
			ID:             "1",
			Name:           "Sarah Chen",
			AvatarGlyph:    "SC",
			Kind:           KindPrivate,
			LastMessage:    "No problem! I'll share it in our study group chat.",
			TimestampLabel: "14:38",
		},
		{
			ID:             "2",
			Name:           "Mike Johnson",
			AvatarGlyph:    "MJ",
			Kind:           KindPrivate,
			LastMessage:    "Great! See you there! ☕",
			TimestampLabel: "Yesterday",
		},
		{
			ID:             "3",
			Name:           "Emma Wilson",
			AvatarGlyph:    "EW",
			Kind:           KindPrivate,
			LastMessage:    "That's awesome! Congrats! 🎉",
			TimestampLabel: "Monday",
		},
		{
			ID:             "4",
			Name:           "David Kim",
			AvatarGlyph:    "DK",
			Kind:           KindPrivate,
			LastMessage:    "Can you send me the meeting link?",
			TimestampLabel: "Last week",
			Unread:         true,
			UnreadCount:    2,
		},
		{
			ID:             "5",
			Name:           "Lisa Park",
			AvatarGlyph:    "LP",
			Kind:           KindPrivate,
			LastMessage:    "Thanks Lisa! You're the best! 📚",
			TimestampLabel: "2 hours ago",
		},
		{
			ID:             "6",
			Name:           "Alex Thompson",
			AvatarGlyph:    "AT",
			Kind:           KindPrivate,
			LastMessage:    "Check out this photo from the presentation!",
			TimestampLabel: "3 hours ago",
			Unread:         true,
			UnreadCount:    3,
		},
		{
			ID:             "7",
			Name:           "Rachel Green",
			AvatarGlyph:    "RG",
			Kind:           KindPrivate,
			LastMessage:    "Thanks! You're a lifesaver.",
			TimestampLabel: "5 hours ago",
		},
		{
			ID:             "8",
			Name:           "Tom Anderson",
			AvatarGlyph:    "TA",
			Kind:           KindPrivate,
			LastMessage:    "Perfect! See you there.",
			TimestampLabel: "1 day ago",
		},
		{
			ID:             "9",
			Name:           "Study Group",
			AvatarGlyph:    "SG",
			Kind:           KindGroup,
			LastMessage:    "Thanks everyone! See you at 8pm.",
			TimestampLabel: "10:03",
			GroupKey:       StudyGroupKey,
			Members: []Member{
				{ID: "u1", Name: "Anna Lee", AvatarGlyph: "AL"},
				{ID: "u2", Name: "Ben Carter", AvatarGlyph: "BC"},
				{ID: "u3", Name: "Chloe Deng", AvatarGlyph: "CD"},
			},
		},
	})
}

// SeedTranscripts returns the seeded message history per conversation key.
func SeedTranscripts() map[string][]Message {
	return map[string][]Message{
		"sarah-chen": {
			{ID: "1", SenderID: "sarah-chen", ReceiverID: LocalUserID, Content: "Hey! About tomorrow's class schedule...", Type: MessageText, Timestamp: "14:30", IsRead: true},
			{ID: "2", SenderID: LocalUserID, ReceiverID: "sarah-chen", Content: "Hi Sarah! What about the schedule?", Type: MessageText, Timestamp: "14:32", IsRead: true},
			{ID: "3", SenderID: "sarah-chen", ReceiverID: LocalUserID, Content: "I was wondering if you have the updated syllabus for the advanced course.", Type: MessageText, Timestamp: "14:33", IsRead: true},
			{ID: "4", SenderID: LocalUserID, ReceiverID: "sarah-chen", Content: "Yes, I have it! Let me send you a copy.", Type: MessageText, Timestamp: "14:35", IsRead: true},
			{ID: "5", SenderID: "sarah-chen", ReceiverID: LocalUserID, Content: "Thanks so much! That would be really helpful.", Type: MessageText, Timestamp: "14:36", IsRead: true},
			{ID: "6", SenderID: LocalUserID, ReceiverID: "sarah-chen", Content: "No problem! I'll share it in our study group chat.", Type: MessageText, Timestamp: "14:38", IsRead: true},
		},
		"mike-johnson": {
			{ID: "1", SenderID: "mike-johnson", ReceiverID: LocalUserID, Content: "Want to grab coffee this weekend?", Type: MessageText, Timestamp: "Yesterday", IsRead: true},
			{ID: "2", SenderID: LocalUserID, ReceiverID: "mike-johnson", Content: "Sure! That sounds great. When are you free?", Type: MessageText, Timestamp: "Yesterday", IsRead: true},
			{ID: "3", SenderID: "mike-johnson", ReceiverID: LocalUserID, Content: "How about Saturday afternoon? Around 2 PM?", Type: MessageText, Timestamp: "Yesterday", IsRead: true},
			{ID: "4", SenderID: LocalUserID, ReceiverID: "mike-johnson", Content: "Perfect! Let's meet at the campus coffee shop.", Type: MessageText, Timestamp: "Yesterday", IsRead: true},
			{ID: "5", SenderID: "mike-johnson", ReceiverID: LocalUserID, Content: "Great! See you there! ☕", Type: MessageText, Timestamp: "Yesterday", IsRead: true},
		},
		"emma-wilson": {
			{ID: "1", SenderID: "emma-wilson", ReceiverID: LocalUserID, Content: "Thanks for your help with the assignment!", Type: MessageText, Timestamp: "Monday", IsRead: true},
			{ID: "2", SenderID: LocalUserID, ReceiverID: "emma-wilson", Content: "You're welcome! How did it go?", Type: MessageText, Timestamp: "Monday", IsRead: true},
			{ID: "3", SenderID: "emma-wilson", ReceiverID: LocalUserID, Content: "Really well! Got an A on it. Your tips were super helpful.", Type: MessageText, Timestamp: "Monday", IsRead: true},
			{ID: "4", SenderID: LocalUserID, ReceiverID: "emma-wilson", Content: "That's awesome! Congrats! 🎉", Type: MessageText, Timestamp: "Monday", IsRead: true},
		},
		"david-kim": {
			{ID: "1", SenderID: "david-kim", ReceiverID: LocalUserID, Content: "When is our next group discussion?", Type: MessageText, Timestamp: "Last week", IsRead: false},
			{ID: "2", SenderID: LocalUserID, ReceiverID: "david-kim", Content: "I think it's scheduled for next Tuesday at 3 PM.", Type: MessageText, Timestamp: "Last week", IsRead: true},
			{ID: "3", SenderID: "david-kim", ReceiverID: LocalUserID, Content: "Can you send me the meeting link?", Type: MessageText, Timestamp: "Last week", IsRead: false},
		},
		"lisa-park": {
			{ID: "1", SenderID: "lisa-park", ReceiverID: LocalUserID, Content: "The study materials are ready to share.", Type: MessageText, Timestamp: "2 hours ago", IsRead: true},
			{ID: "2", SenderID: LocalUserID, ReceiverID: "lisa-park", Content: "Perfect! Can you upload them to the shared drive?", Type: MessageText, Timestamp: "2 hours ago", IsRead: true},
			{ID: "3", SenderID: "lisa-park", ReceiverID: LocalUserID, Content: "Already done! Check the \"Study Resources\" folder.", Type: MessageText, Timestamp: "2 hours ago", IsRead: true},
			{ID: "4", SenderID: LocalUserID, ReceiverID: "lisa-park", Content: "Thanks Lisa! You're the best! 📚", Type: MessageText, Timestamp: "2 hours ago", IsRead: true},
		},
		"alex-thompson": {
			{ID: "1", SenderID: "alex-thompson", ReceiverID: LocalUserID, Content: "Great job on the presentation!", Type: MessageText, Timestamp: "3 hours ago", IsRead: false},
			{ID: "2", SenderID: LocalUserID, ReceiverID: "alex-thompson", Content: "Thank you! It was a team effort though.", Type: MessageText, Timestamp: "3 hours ago", IsRead: true},
			{ID: "3", SenderID: "alex-thompson", ReceiverID: LocalUserID, Content: "Your part was really well done. The professor was impressed!", Type: MessageText, Timestamp: "3 hours ago", IsRead: false},
			{ID: "4", SenderID: "alex-thompson", ReceiverID: LocalUserID, Content: "Check out this photo from the presentation!", Type: MessageImage, Timestamp: "3 hours ago", IsRead: false, ImageURL: "https://images.unsplash.com/photo-1522202176988-66273c2fd55f?w=400&h=300&fit=crop"},
		},
		"rachel-green": {
			{ID: "1", SenderID: "rachel-green", ReceiverID: LocalUserID, Content: "Can you send me the notes from today?", Type: MessageText, Timestamp: "5 hours ago", IsRead: true},
			{ID: "2", SenderID: LocalUserID, ReceiverID: "rachel-green", Content: "Of course! I'll scan and send them to you.", Type: MessageText, Timestamp: "5 hours ago", IsRead: true},
			{ID: "3", SenderID: "rachel-green", ReceiverID: LocalUserID, Content: "Thanks! You're a lifesaver.", Type: MessageText, Timestamp: "5 hours ago", IsRead: true},
		},
		"tom-anderson": {
			{ID: "1", SenderID: "tom-anderson", ReceiverID: LocalUserID, Content: "Let's meet at the library tomorrow.", Type: MessageText, Timestamp: "1 day ago", IsRead: true},
			{ID: "2", SenderID: LocalUserID, ReceiverID: "tom-anderson", Content: "Sure! What time works for you?", Type: MessageText, Timestamp: "1 day ago", IsRead: true},
			{ID: "3", SenderID: "tom-anderson", ReceiverID: LocalUserID, Content: "How about 10 AM? We can study together.", Type: MessageText, Timestamp: "1 day ago", IsRead: true},
			{ID: "4", SenderID: LocalUserID, ReceiverID: "tom-anderson", Content: "Perfect! See you there.", Type: MessageText, Timestamp: "1 day ago", IsRead: true},
		},
		StudyGroupKey: {
			{ID: "1", SenderID: "u1", ReceiverID: GroupReceiverPrefix + StudyGroupKey, Content: "Hi everyone, let's review chapter 3 tonight!", Type: MessageText, Timestamp: "10:00", IsRead: true},
			{ID: "2", SenderID: "u2", ReceiverID: GroupReceiverPrefix + StudyGroupKey, Content: "Sounds good! I'll bring my notes.", Type: MessageText, Timestamp: "10:01", IsRead: true},
			{ID: "3", SenderID: "u3", ReceiverID: GroupReceiverPrefix + StudyGroupKey, Content: "Here is the summary from last time.", Type: MessageImage, Timestamp: "10:02", IsRead: true, ImageURL: "https://via.placeholder.com/150"},
			{ID: "4", SenderID: LocalUserID, ReceiverID: GroupReceiverPrefix + StudyGroupKey, Content: "Thanks everyone! See you at 8pm.", Type: MessageText, Timestamp: "10:03", IsRead: true},
		},
	}
}

// NewSeededStore creates a message store preloaded with SeedTranscripts.
func NewSeededStore() *Store {
	return NewStoreWithSeed(SeedTranscripts())
}
