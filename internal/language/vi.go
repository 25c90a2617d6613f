package language

var vi = map[string]string{
	"help_message": `<b>🎰 NOVA88 BOT - TRỢ GIÚP 🎰</b>

Các lệnh có sẵn:

/du_doan - Dự đoán xổ số Việt Nam hôm nay
/du_doan_4d - Dự đoán xổ số 4D (Singapore/Malaysia)
/du_doan_thai - Dự đoán xổ số Thái Lan
/du_doan_indo - Dự đoán xổ số Togel Indonesia
/ds_slot - Danh sách game slot PGSoft phổ biến
/slotgame tên_game - Thông tin chi tiết về một game slot
/language - Đổi ngôn ngữ
/help - Hiển thị trợ giúp này

<i>Chúc bạn may mắn! Hãy đặt cược có trách nhiệm.</i>`,
	"welcome_caption": "<b>🎰 Chào mừng đến với NOVA88! 🎰</b>",
	"welcome_message": `<b>🎰 CHÀO MỪNG ĐẾN VỚI NOVA88 BOT! 🎰</b>

Tôi có thể giúp bạn:
🎯 Dự đoán xổ số hàng ngày (Việt Nam, 4D, Thái Lan, Indonesia)
🎮 Thông tin game slot PGSoft với RTP chính xác

Gõ /help để xem tất cả các lệnh.

<i>Chúc bạn may mắn! Hãy đặt cược có trách nhiệm.</i>`,
	"language_selection":     "🌐 <b>Vui lòng chọn ngôn ngữ của bạn:</b>",
	"language_updated":       "✅ Đã cập nhật ngôn ngữ thành {language}!",
	"command_not_recognized": "❓ Lệnh không được nhận dạng. Gõ /help để xem danh sách các lệnh.",
	"slot_game_error":        "Vui lòng nhập tên game sau lệnh /slotgame. Ví dụ: /slotgame Mahjong Ways 2",
	"promotion_button":       "🎁 Khuyến mãi",
	"bet_now_button":         "🎲 Đặt cược ngay",
	"slots_rtp_button":       "🎮 Slots RTP",
	"jackpot_button":         "💰 Jackpot",
}
