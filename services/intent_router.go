package services

import (
	"fmt"
	"strings"

	"therapist-chatbot-backend/models"
	"therapist-chatbot-backend/utils"
)

// IntentRouter inspects a finished turn (the user's message plus the
// model's raw reply) and decides whether one of the side-effect tools
// fired. When one does, the reply shown to the user is rewritten.
// Decision order is fixed: distress beats medication beats appointment;
// a message carrying both distress and appointment language always
// routes to emergency.
type IntentRouter struct {
	store      *AppointmentStore
	doctorName string
}

func NewIntentRouter(store *AppointmentStore, doctorName string) *IntentRouter {
	return &IntentRouter{
		store:      store,
		doctorName: doctorName,
	}
}

// Route classifies the turn and returns the intent label together with
// the final text to show the user. When no keyword set matches, the raw
// reply is returned unmodified.
func (ir *IntentRouter) Route(userMessage, rawReply string) (models.MessageIntent, string) {
	if utils.ContainsAny(userMessage, utils.DistressKeywords) ||
		utils.ContainsAny(rawReply, utils.DistressKeywords) {
		return models.IntentEmergencyCall, ir.emergencyResponse(userMessage)
	}

	if utils.ContainsAny(userMessage, utils.MedicationKeywords) ||
		utils.ContainsAny(rawReply, utils.MedicationKeywords) {
		return models.IntentMedicationAdvice, ir.medicationResponse(userMessage)
	}

	if utils.ContainsAny(userMessage, utils.AppointmentKeywords) ||
		utils.ContainsAny(rawReply, utils.AppointmentKeywords) {
		return models.IntentAppointment, ir.appointmentResponse(userMessage)
	}

	return models.IntentNone, rawReply
}

func (ir *IntentRouter) emergencyResponse(userMessage string) string {
	if number := utils.ExtractPhoneNumber(userMessage); number != "" {
		return fmt.Sprintf("Detected distress. Alerting emergency support at %s. "+
			"Please stay where you are—help is on the way.", number)
	}
	if strings.Contains(strings.ToLower(userMessage), "call me") {
		return "Detected distress. Alerting emergency support and attempting to contact you. " +
			"Please stay where you are—help is on the way."
	}
	return "Detected distress. Connecting to emergency support."
}

func (ir *IntentRouter) medicationResponse(userMessage string) string {
	if utils.IsMedicationRequest(userMessage) {
		return "I'm not able to recommend or prescribe specific medications. " +
			"However, common types of medications for depression and anxiety include " +
			"SSRIs (like sertraline, fluoxetine), SNRIs (like venlafaxine), and others. " +
			"The right medication depends on your unique situation, medical history, and a doctor's evaluation. " +
			"Please consult a licensed psychiatrist or your primary care provider to discuss what might be best for you. " +
			"If you have questions about medication types, side effects, or how to talk to your doctor, " +
			"let me know—I'm here to help you make informed decisions."
	}
	return "It sounds like you may be considering medication as part of your mental health journey. " +
		"While I can't prescribe medication, I can provide general information and support. " +
		"It's important to consult a licensed psychiatrist or your primary care provider for a personalized evaluation. " +
		"If you have questions about how medication might help, possible side effects, " +
		"or how to talk to your doctor about it, let me know—I'm here to help you make informed decisions."
}

func (ir *IntentRouter) appointmentResponse(userMessage string) string {
	date, timeOfDay := utils.ExtractDateTime(userMessage)
	if date != "" {
		ir.store.Book(date, timeOfDay)
		if timeOfDay != "" {
			return fmt.Sprintf("Your appointment with %s is scheduled for %s at %s. "+
				"If you need to change it, let me know!", ir.doctorName, date, timeOfDay)
		}
		return fmt.Sprintf("Your appointment with %s is scheduled for %s. "+
			"If you need to add a time or change it, let me know!", ir.doctorName, date)
	}

	if utils.IsAppointmentDetailsRequest(userMessage) {
		appt := ir.store.Read()
		if appt.Date != "" {
			if appt.Time != "" {
				return fmt.Sprintf("Your appointment is with %s on %s at %s. "+
					"If you need to change it, let me know!", ir.doctorName, appt.Date, appt.Time)
			}
			return fmt.Sprintf("Your appointment is with %s on %s. "+
				"If you need to add a time or change it, let me know!", ir.doctorName, appt.Date)
		}
		return fmt.Sprintf("You have not provided an appointment date yet. "+
			"Please provide your preferred date and time to book with %s.", ir.doctorName)
	}

	return fmt.Sprintf("I can help you book an appointment with %s. "+
		"Please provide your preferred date and time, and I'll guide you through the process.", ir.doctorName)
}
