package interview

// PracticeQuestions is the built-in question set used by the offline
// practice flow, where no backend session exists to pull questions from.
func PracticeQuestions() []Question {
	return []Question{
		{
			ID:         "p1",
			Text:       "Explain the principles of digital signal processing and its applications in defense systems.",
			Category:   "Technical",
			Difficulty: Medium,
		},
		{
			ID:         "p2",
			Text:       "How would you approach designing a secure communication protocol for military networks?",
			Category:   "Security",
			Difficulty: Hard,
		},
		{
			ID:         "p3",
			Text:       "Describe your experience with embedded systems and real-time operating systems.",
			Category:   "Experience",
			Difficulty: Medium,
		},
		{
			ID:         "p4",
			Text:       "What are the key considerations when developing software for mission-critical applications?",
			Category:   "Problem Solving",
			Difficulty: Hard,
		},
		{
			ID:         "p5",
			Text:       "Explain how you would ensure code quality and reliability in a defense software project.",
			Category:   "Quality Assurance",
			Difficulty: Medium,
		},
	}
}
