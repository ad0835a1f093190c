package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywordSets(t *testing.T) {
	assert.True(t, ContainsAny("I want to kill myself", DistressKeywords))
	assert.True(t, ContainsAny("I'm having a panic attack!", DistressKeywords))
	assert.True(t, ContainsAny("should I take pills?", MedicationKeywords))
	assert.True(t, ContainsAny("can I book with you?", AppointmentKeywords))

	// The call-related phrases live in both the distress and the
	// appointment sets; the router resolves the tie.
	assert.True(t, ContainsAny("please call me", DistressKeywords))
	assert.True(t, ContainsAny("please call me", AppointmentKeywords))

	assert.False(t, ContainsAny("the weather is nice", DistressKeywords))
	assert.False(t, ContainsAny("the weather is nice", MedicationKeywords))
	assert.False(t, ContainsAny("the weather is nice", AppointmentKeywords))
}

func TestKeywordsAreNormalized(t *testing.T) {
	// Keyword sets must survive their own normalization, or they could
	// never match normalized text.
	sets := [][]string{
		DistressKeywords,
		MedicationKeywords,
		AppointmentKeywords,
		AppointmentDetailsKeywords,
	}

	for _, set := range sets {
		for _, kw := range set {
			assert.Equal(t, kw, Normalize(kw), "keyword %q is not in normalized form", kw)
		}
	}
}

func TestIsAppointmentDetailsRequest(t *testing.T) {
	assert.True(t, IsAppointmentDetailsRequest("who is my appointment with?"))
	assert.True(t, IsAppointmentDetailsRequest("please remind me"))
	assert.True(t, IsAppointmentDetailsRequest("when is it?"))
	assert.False(t, IsAppointmentDetailsRequest("book me for tomorrow"))
}

func TestIsMedicationRequest(t *testing.T) {
	assert.True(t, IsMedicationRequest("what medicine should I take"))
	assert.True(t, IsMedicationRequest("can you recommend medicines"))
	assert.False(t, IsMedicationRequest("I am worried about my meds"))
}
