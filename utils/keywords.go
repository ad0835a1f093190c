package utils

// Keyword sets for intent detection. Keywords are stored in normalized
// form (lowercase, no punctuation) so they can be matched against
// Normalize output. The distress and appointment sets deliberately share
// the call-related phrases; the router resolves the tie by checking
// distress first.

var DistressKeywords = []string{
	// direct crisis
	"crisis", "emergency", "hurt myself", "kill myself", "end my life",
	"suicidal", "die", "cant go on", "give up", "ending my life",
	"no reason to live", "need help immediately", "urgent help",
	"im in a crisis", "i am in crisis", "need help now", "suicide",
	// indirect/colloquial
	"panic attack", "panic", "anxiety attack", "feel unsafe",
	"need to call me", "call me now", "need urgent help",
	"need someone to talk to urgently", "need immediate help",
	"help me now", "talk to me now", "need to talk now", "need support now",
	// call-related
	"phone call", "call me", "want to talk", "call doctor", "call therapist",
	"want phone call", "need phone call", "can you call me", "can i get a call",
}

var MedicationKeywords = []string{
	"medication", "medicine", "prescribe", "antidepressant", "meds",
	"prescription", "take my meds", "medication advice",
	"medicine for depression", "medicine for anxiety",
	// indirect/colloquial
	"should i take pills", "should i take medicine", "do i need medication",
	"can you give me medicine", "can you prescribe something",
	"should i use antidepressants", "should i use anxiety medication",
}

var AppointmentKeywords = []string{
	"appointment", "book", "schedule", "see a doctor", "visit a doctor",
	"make an appointment", "doctor appointment", "consultation",
	"book a session", "want appointment", "need appointment",
	// indirect/colloquial
	"find doctor", "find therapist", "therapist near me", "doctor near me",
	"want doctor like you", "need to see someone", "need to see a doctor",
	"can i see you", "can i book with you", "can i talk to a doctor",
	"can i talk to a therapist",
	// call-related
	"phone call", "call me", "want to talk", "call doctor", "call therapist",
	"want phone call", "need phone call", "can you call me", "can i get a call",
}

// AppointmentDetailsKeywords match questions about an existing booking
// (who/when/where/confirm/remind).
var AppointmentDetailsKeywords = []string{
	"details", "confirm", "where", "when", "info", "information",
	"summary", "remind", "reminder",
	"who is my appointment with", "to whom", "with whom", "who am i seeing",
	"doctor name", "therapist name", "who is my doctor", "who is my therapist",
}

// MedicationRequestKeywords match explicit asks for a specific drug
// recommendation, which get the detailed disclaimer.
var MedicationRequestKeywords = []string{
	"suggest medicine", "suggest medicines", "what medicine", "what medicines",
	"which medicine", "which medicines", "recommend medicine",
	"recommend medicines", "medicine name", "medication name", "drug name",
	"antidepressant name", "anxiety medicine",
}

// IsAppointmentDetailsRequest reports whether the message asks about an
// existing booking rather than making a new one.
func IsAppointmentDetailsRequest(text string) bool {
	return ContainsAny(text, AppointmentDetailsKeywords)
}

// IsMedicationRequest reports whether the message explicitly asks for a
// medicine recommendation by name.
func IsMedicationRequest(text string) bool {
	return containsAnyLower(text, MedicationRequestKeywords)
}
