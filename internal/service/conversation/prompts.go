package conversation

import (
	"fmt"
	"time"

	"github.com/pointbreak-gaming/PB-BookingService/internal/domain"
)

// Тексты диалога. Клиентам пишем по-английски, как и на сайте зала.

const venueName = "Point Break Gaming"

const (
	promptWelcome = "Welcome to " + venueName + "! 🎮\n\nSend 'book' to make a reservation."

	promptPickDate = "Welcome! 🎮\n\nLet's book your gaming session. First, pick a date:\n\n(Send 'cancel' to start over)"

	promptPickDateFromList = "Please select a date from the list above."
	promptPickSlotFromList = "Please select a time slot from the list."
	promptPickConsole      = "Please select a console from the buttons."
	promptTapConfirm       = "Please tap Confirm or Cancel."
	promptInvalidName      = "Please enter a valid name (at least 2 characters)."

	promptCancelled = "Booking cancelled. Send 'book' anytime to start a new booking."
	promptFailed    = "Sorry, something went wrong. Please try again or contact us directly."
)

func promptNoSlots(dateLabel string) string {
	return fmt.Sprintf("Sorry, no slots available for %s. Please try another date.\n\nSend 'book' to start over.", dateLabel)
}

func promptSlotGone(slot string) string {
	return fmt.Sprintf("Sorry, %s is no longer available. Please select another time.\n\nSend 'book' to start over.", slot)
}

func promptConsoleGone(slot string) string {
	return fmt.Sprintf("Sorry, %s with that console is no longer available. Someone just booked it!\n\nSend 'book' to try again.", slot)
}

func promptEnterName(consoleName string) string {
	return fmt.Sprintf("Great choice! 🎮 %s\n\nPlease enter your name for the booking:\n\n(Send 'cancel' to start over)", consoleName)
}

func promptSummary(dateLabel, slot, consoleName string, durationMinutes int, name string) string {
	return fmt.Sprintf(
		"📋 *Booking Summary*\n\n📅 Date: %s\n⏰ Time: %s\n🎮 Console: %s\n⏱️ Duration: %s\n👤 Name: %s\n\nConfirm your booking?\n\n(Send 'cancel' to start over)",
		dateLabel, slot, consoleName, domain.DurationLabel(durationMinutes), name,
	)
}

func promptConfirmed(dateLabel, slot, consoleName string, durationMinutes int) string {
	return fmt.Sprintf(
		"✅ *Booking Confirmed!*\n\n📅 %s\n⏰ %s\n🎮 %s\n⏱️ %s\n\nSee you at %s! 🎮\n\nSend 'book' to make another reservation.",
		dateLabel, slot, consoleName, domain.DurationLabel(durationMinutes), venueName,
	)
}

// dateLabel подпись даты в списке: сегодня/завтра/послезавтра
func dateLabel(offset int) string {
	switch offset {
	case 0:
		return "Today"
	case 1:
		return "Tomorrow"
	case 2:
		return "Day After Tomorrow"
	default:
		return ""
	}
}

// formatDateDisplay выводит дату как "Sat, 5 Sep"
func formatDateDisplay(date time.Time) string {
	return date.Format("Mon, 2 Jan")
}
