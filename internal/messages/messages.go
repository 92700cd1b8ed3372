package messages

import (
	"fmt"
	"strings"
	"time"

	"github.com/priyansh563/studybot/types"
)

const ParseModeHTML = "HTML"

func Escape(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"\"", "&quot;",
		"'", "&#39;",
	)
	return replacer.Replace(strings.TrimSpace(s))
}

func HomeTitle() string {
	return "📚 Choose your class:"
}

func CategoriesTitle(grade string) string {
	return fmt.Sprintf("Class %s → Choose category:", Escape(grade))
}

func SubjectsTitle(grade, category string) string {
	return fmt.Sprintf("Class %s → %s → Choose subject:", Escape(grade), Escape(category))
}

func ChaptersTitle(grade, category, subject string) string {
	return fmt.Sprintf("Class %s → %s → %s → Choose chapter:", Escape(grade), Escape(category), Escape(subject))
}

func ItemsHeader(grade, category, subject, chapter string) string {
	return fmt.Sprintf("Class %s → %s → %s → %s\n\n", Escape(grade), Escape(category), Escape(subject), Escape(chapter))
}

func NoItems() string {
	return "No items yet."
}

func ItemLine(position int, title string, unlocked bool) string {
	lock := "🔓"
	if !unlocked {
		lock = "🔒 Premium"
	}
	return fmt.Sprintf("%d. %s %s\n", position, Escape(title), lock)
}

func DocumentCaption(item types.ContentItem) string {
	return fmt.Sprintf("%s\n(Class %s • %s • %s • %s)", item.Title, item.Grade, item.Category, item.Subject, item.Chapter)
}

func ItemLocked(title string) string {
	return fmt.Sprintf("🔒 %s — Premium only. Use /buy to unlock.", Escape(title))
}

func ItemSendFailed(title string) string {
	return fmt.Sprintf("Failed sending: %s", Escape(title))
}

func BtnPrev() string { return "⬅️ Prev" }

func BtnNext() string { return "Next ➡️" }

func BtnBack() string { return "⬅️ Back" }

func BtnBuyPremium() string { return "⭐ Buy Premium" }

func BtnSendRange(first, last int) string {
	return fmt.Sprintf("📥 Send #%d–#%d", first, last)
}

func BtnRedeem() string { return "I already paid • Redeem" }

func RangeSent() string {
	return "📤 Sending…"
}

func RedeemUsage() string {
	return "Usage: /redeem &lt;TXN_ID&gt;"
}

func RedeemPrompt() string {
	return "Send your transaction id as:\n<code>/redeem &lt;TXN_ID&gt;</code>"
}

func RedeemReceived() string {
	return "Thanks! ✅ TXN ID received. Admin verify karega."
}

func RedeemAdminNotice(name string, tgID int64, txnID, ref string) string {
	return fmt.Sprintf("Redeem request from %s (#%d)\nTXN: %s\nRef: %s", Escape(name), tgID, Escape(txnID), ref)
}

func MakePremiumUsage() string {
	return "Usage: /make_premium &lt;tg_id&gt; [months]"
}

func MakePremiumDone(tgID int64, until time.Time) string {
	return fmt.Sprintf("✅ Premium active for #%d until %s.", tgID, until.Format("2 Jan 2006"))
}

func PremiumGranted(until time.Time) string {
	return fmt.Sprintf("⭐ <b>Premium activated!</b>\nValid until %s.", until.Format("2 Jan 2006"))
}

func UploadSaved(title string) string {
	return fmt.Sprintf("✅ Saved: <b>%s</b>", Escape(title))
}

func UploadInvalidCaption() string {
	return "🚫 <b>Invalid caption</b>\nUse: <code>class|category|subject|chapter|title|premium</code>"
}

func UploadNeedsCaption() string {
	return "Attach a caption: <code>class|category|subject|chapter|title|premium</code>"
}

func StatsText(st *types.Stats) string {
	return strings.Join([]string{
		"📊 <b>Stats</b>",
		fmt.Sprintf("Users: %d", st.Users),
		fmt.Sprintf("Premium now: %d", st.PremiumNow),
		fmt.Sprintf("Content items: %d", st.Items),
		fmt.Sprintf("Redeem requests: %d", st.Redemptions),
		fmt.Sprintf("Quizzes: %d", st.Quizzes),
	}, "\n")
}

func StartWelcome() string {
	return "👋 <b>Welcome to StudyBot!</b>\nNotes, PYQs, sample papers and test series for classes 9–12."
}

func TextHint() string {
	return "Use /start to open the menu, or /buy for Premium."
}

func ErrorDefault() string {
	return "🚫 <b>Something went wrong</b>\nPlease try again."
}

func ErrorUnknownCommand() string {
	return "❓ <b>Command not found</b>"
}
