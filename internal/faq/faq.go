package faq

import "strings"

// Entry is a static question and answer pair shown in the help section.
type Entry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// AnswerFor returns the answer for an exact question, case-insensitively.
func AnswerFor(question string) (string, bool) {
	q := strings.ToLower(strings.TrimSpace(question))
	for _, entry := range Entries {
		if strings.ToLower(entry.Question) == q {
			return entry.Answer, true
		}
	}
	return "", false
}

// Entries is the fixed FAQ content served by the API.
var Entries = []Entry{
	{
		Question: "What kind of questions can I ask?",
		Answer:   "Ask for any study topic, for example \"Explain photosynthesis\" or \"Quiz me on fractions\". The assistant picks the best format automatically.",
	},
	{
		Question: "Which output formats are supported?",
		Answer:   "Study documents, quizzes with answer keys, and audio lesson scripts. Every result is delivered as a downloadable PDF.",
	},
	{
		Question: "Can I get resources in my own language?",
		Answer:   "Yes. Set a target language on the request. English, Hindi, Tamil, Bengali and French are supported.",
	},
	{
		Question: "Where are my generated resources?",
		Answer:   "Every generated resource is kept in your history. Open the history list to view or download past PDFs.",
	},
	{
		Question: "How do I suggest a new resource?",
		Answer:   "Use the suggestion form with a subject and a short description. Suggestions are shared with other learners.",
	},
}
