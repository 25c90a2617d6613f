package language

var th = map[string]string{
	"help_message": `<b>🎰 NOVA88 BOT - ความช่วยเหลือ 🎰</b>

คำสั่งที่ใช้ได้:

/du_doan - คำทำนายหวยเวียดนามวันนี้
/du_doan_4d - คำทำนายหวย 4D (สิงคโปร์/มาเลเซีย)
/du_doan_thai - คำทำนายหวยไทย
/du_doan_indo - คำทำนายหวยโทเกลอินโดนีเซีย
/ds_slot - รายชื่อเกมสล็อต PGSoft ยอดนิยม
/slotgame ชื่อเกม - ข้อมูลโดยละเอียดของเกมสล็อต
/language - เปลี่ยนภาษา
/help - แสดงความช่วยเหลือนี้

<i>โชคดี! อย่าลืมเดิมพันอย่างมีความรับผิดชอบ</i>`,
	"welcome_caption": "<b>🎰 ยินดีต้อนรับสู่ NOVA88! 🎰</b>",
	"welcome_message": `<b>🎰 ยินดีต้อนรับสู่ NOVA88 BOT! 🎰</b>

ฉันช่วยคุณได้ในเรื่อง:
🎯 คำทำนายหวยรายวัน (เวียดนาม, 4D, ไทย, อินโดนีเซีย)
🎮 ข้อมูลเกมสล็อต PGSoft พร้อม RTP ที่แม่นยำ

พิมพ์ /help เพื่อดูคำสั่งทั้งหมด

<i>โชคดี! อย่าลืมเดิมพันอย่างมีความรับผิดชอบ</i>`,
	"language_selection":     "🌐 <b>กรุณาเลือกภาษาของคุณ:</b>",
	"language_updated":       "✅ เปลี่ยนภาษาเป็น {language} แล้ว!",
	"command_not_recognized": "❓ ไม่รู้จักคำสั่งนี้ พิมพ์ /help เพื่อดูรายการคำสั่ง",
	"slot_game_error":        "กรุณาป้อนชื่อเกมหลังคำสั่ง /slotgame ตัวอย่าง: /slotgame Mahjong Ways 2",
	"promotion_button":       "🎁 โปรโมชั่น",
	"bet_now_button":         "🎲 เดิมพันเลย",
	"slots_rtp_button":       "🎮 Slots RTP",
	"jackpot_button":         "💰 แจ็คพอต",
}
