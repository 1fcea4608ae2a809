package bot

import (
	"fmt"
	"strings"

	"github.com/ruzibekov24/farosat-gramm-bot/internal/services/leaderboard"
)

// User-facing strings. Replies use Telegram HTML formatting; the transport
// sets the matching parse mode.
const (
	msgAlreadyClaimed = "🕛 Siz bugun bu guruhda farosat oldingiz, boshqa guruhda yana urinib ko‘ring."
	msgAdminOnly      = "❌ Bu komanda faqat admin uchun!"
	msgAdjustUsage    = "❌ Noto‘g‘ri format. Foydalanish: /add_farosat <user_id> <miqdor>"
	msgInternalError  = "❌ Xatolik yuz berdi, keyinroq urinib ko‘ring."

	msgHelp = "🎗️ <b>Botning komandalari:</b>\n\n" +
		"/farosat - Farosatni o‘stirish 🧠\n" +
		"/top10 - Chat Top-10 🏆\n" +
		"/worldtop10 - Dunyodagi Top-10 🌍\n" +
		"/pic_farosat - Rasmda farosat 🌠️\n" +
		"/mycertificate - Sertifikat 🎖️"
)

func startText(name string) string {
	return fmt.Sprintf(
		"- Hello, <b>%s</b>! 🖖\n"+
			"👨🏾‍🍳 Men gruhlar uchun <b>Farosatchi</b>.\n\n"+
			"Savollar bo‘lsa: /help komandasini yozing!",
		name,
	)
}

func claimText(delta, score int64) string {
	if delta >= 0 {
		return fmt.Sprintf(
			"🧠 Sizga bugun <b>+%d gram</b> farosat qo‘shildi!\nJami bu guruhda: <b>%d gram</b>",
			delta, score,
		)
	}
	return fmt.Sprintf(
		"😅 Sizdan bugun <b>%d gram</b> farosat ketdi!\nJami bu guruhda: <b>%d gram</b>",
		delta, score,
	)
}

func adjustText(amount, score int64) string {
	return fmt.Sprintf("✅ Foydalanuvchiga %d farosat qo‘shildi! Jami: %d gram", amount, score)
}

func topText(header string, rows []leaderboard.Row) string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")
	for i, row := range rows {
		fmt.Fprintf(&b, "%d. %s — %d gram\n", i+1, row.Name, row.Score)
	}
	return b.String()
}
