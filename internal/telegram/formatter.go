package telegram

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"hackwatch/internal/urgency"
)

// markdownEscaper covers the characters Telegram's Markdown parser treats
// as markup. Hackathon names routinely contain brackets and exclamation
// marks, which would otherwise break the message.
var markdownEscaper = strings.NewReplacer(
	"_", "\\_", "*", "\\*", "[", "\\[", "]", "\\]",
	"(", "\\(", ")", "\\)", "~", "\\~", "`", "\\`",
	">", "\\>", "#", "\\#", "+", "\\+", "-", "\\-",
	"=", "\\=", "|", "\\|", "{", "\\{", "}", "\\}",
	".", "\\.", "!", "\\!",
)

// EscapeMarkdown escapes scraped text for interpolation into a Markdown message.
func EscapeMarkdown(text string) string {
	return markdownEscaper.Replace(text)
}

// FormatCountdown renders hours remaining as a compact human string,
// like "45m", "2h 30m" or "3d 4h".
func FormatCountdown(hours float64) string {
	if hours < 1 {
		return fmt.Sprintf("%dm", int(hours*60))
	}
	if hours < 24 {
		whole := int(hours)
		minutes := int((hours - float64(whole)) * 60)
		return fmt.Sprintf("%dh %dm", whole, minutes)
	}
	return fmt.Sprintf("%dd %dh", int(hours/24), int(math.Mod(hours, 24)))
}

// FormatMessage renders one scored hackathon as a Telegram alert message.
func FormatMessage(rec *urgency.Scored) string {
	var msg strings.Builder

	// Header with urgency emoji
	msg.WriteString(fmt.Sprintf("%s *%s ALERT*\n\n", urgency.Emoji(rec.Level), rec.Level))

	msg.WriteString(fmt.Sprintf("*%s*\n\n", EscapeMarkdown(rec.Name)))

	msg.WriteString(fmt.Sprintf("⏰ *%s remaining*\n", FormatCountdown(rec.HoursRemaining)))
	msg.WriteString(fmt.Sprintf("📅 Deadline: %s\n\n", rec.Deadline.UTC().Format("2006-01-02 15:04 MST")))

	if prize := rec.Prize(); prize > 0 {
		msg.WriteString(fmt.Sprintf("💰 Prize: $%s\n\n", formatAmount(prize)))
	}

	msg.WriteString(fmt.Sprintf("🔗 [Submit Now](%s)\n\n", rec.URL))

	switch rec.Level {
	case urgency.Critical:
		msg.WriteString("⚠️ *FINAL HOURS \\- SUBMIT NOW\\!*")
	case urgency.High:
		msg.WriteString("⚡ *Deadline approaching fast\\!*")
	}

	return msg.String()
}

// formatAmount renders a dollar amount with thousands separators.
func formatAmount(v float64) string {
	s := strconv.FormatInt(int64(math.Round(v)), 10)
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
