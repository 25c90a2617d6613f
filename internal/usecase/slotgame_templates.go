package usecase

import "github.com/nova88bet/telegram-lottery-bot/internal/domain/entity"

// gameInfoTemplate frames the AI-written overview of one slot game in one
// language. scrapedPrompt takes name, description, rtp and detail URL;
// genericPrompt takes only the name; header takes the uppercased name and
// rtpLabel takes the RTP value.
type gameInfoTemplate struct {
	system        string
	scrapedPrompt string
	genericPrompt string
	header        string
	rtpLabel      string
	footer        string
	playButton    string
	errorMessage  string
}

const playButtonVI = "<a href=\"https://nova88bet.top/\">💎 Chơi ngay tại NOVA88BET 💎</a>"
const playButtonEN = "<a href=\"https://nova88bet.top/\">💎 Play now at NOVA88BET 💎</a>"
const playButtonTH = "<a href=\"https://nova88bet.top/\">💎 เล่นเลยที่ NOVA88BET 💎</a>"
const playButtonZH = "<a href=\"https://nova88bet.top/\">💎 立即在NOVA88BET上玩 💎</a>"

var gameInfoTemplates = map[entity.LanguageCode]gameInfoTemplate{
	entity.Vietnamese: {
		system: "Bạn là một chuyên gia về game slot PGSoft với kiến thức chuyên sâu về cách chơi, chiến thuật và thông số kỹ thuật của tất cả các game. Bạn luôn cung cấp thông tin chính xác, đầy đủ và hữu ích bằng tiếng Việt tự nhiên.",
		scrapedPrompt: `Hãy viết một bài giới thiệu tổng quan về game slot PGSoft có tên "%s" dựa trên các thông tin thực từ trang web chính thức:

Tên game: %[1]s
Mô tả: %[2]s
Tỷ lệ trả thưởng (RTP): %[3]s
Link chi tiết: %[4]s

Bài viết phải bao gồm các thông tin sau:
1. Giới thiệu tổng quan về game và chủ đề của game
2. Cách kích hoạt tính năng free spin hoặc bonus game
3. Tỷ lệ trả thưởng (RTP) trích dẫn chính xác từ nguồn
4. Các mẹo và chiến thuật để tăng cơ hội thắng

Hãy viết bằng tiếng Việt tự nhiên, thân thiện và dễ hiểu. Sử dụng emoji phù hợp để làm nổi bật thông tin.
Giới hạn bài viết trong khoảng 150-200 từ.`,
		genericPrompt: `Hãy mô tả chi tiết về game slot PGSoft có tên "%s" bao gồm các thông tin sau:

1. Hình ảnh và chủ đề của game
2. Cách kích hoạt tính năng free spin hoặc bonus game
3. Ước tính tỷ lệ trả thưởng (RTP) dựa trên các game PGSoft tương tự
4. Các mẹo và chiến thuật để tăng cơ hội thắng

Hãy viết bằng tiếng Việt tự nhiên, thân thiện và dễ hiểu. Sử dụng emoji phù hợp để làm nổi bật thông tin.`,
		header:       "<b>🎮 THÔNG TIN GAME: %s 🎮</b>",
		rtpLabel:     "<b>🔍 RTP: %s</b>",
		footer:       "<i>Chúc bạn may mắn và chơi game vui vẻ! Hãy nhớ chơi có trách nhiệm.</i>",
		playButton:   playButtonVI,
		errorMessage: "❌ Đã xảy ra lỗi khi tìm thông tin về game '%s'. Vui lòng thử lại sau.",
	},
	entity.English: {
		system: "You are an expert on PGSoft slot games with deep knowledge of gameplay, strategies, and technical specifications of all games. You always provide accurate, complete, and useful information in natural English.",
		scrapedPrompt: `Please write an overview of the PGSoft slot game named "%s" based on real information from the official website:

Game name: %[1]s
Description: %[2]s
Return to Player (RTP): %[3]s
Detail link: %[4]s

The article must include the following information:
1. General introduction to the game and its theme
2. How to activate free spin or bonus game features
3. Return to Player (RTP) rate quoted accurately from source
4. Tips and strategies to increase chances of winning

Please write in natural, friendly, and easy-to-understand English. Use appropriate emojis to highlight information.
Limit the article to about 150-200 words.`,
		genericPrompt: `Please provide a detailed description of the PGSoft slot game named "%s" including the following information:

1. Visuals and theme of the game
2. How to activate free spin or bonus game features
3. Estimated Return to Player (RTP) based on similar PGSoft games
4. Tips and strategies to increase chances of winning

Please write in natural, friendly, and easy-to-understand English. Use appropriate emojis to highlight information.`,
		header:       "<b>🎮 GAME INFORMATION: %s 🎮</b>",
		rtpLabel:     "<b>🔍 RTP: %s</b>",
		footer:       "<i>Good luck and have fun playing! Remember to play responsibly.</i>",
		playButton:   playButtonEN,
		errorMessage: "❌ An error occurred while finding information about the game '%s'. Please try again later.",
	},
	entity.Thai: {
		system: "คุณเป็นผู้เชี่ยวชาญเกมสล็อต PGSoft ที่มีความรู้ลึกซึ้งเกี่ยวกับวิธีการเล่น กลยุทธ์ และข้อมูลจำเพาะทางเทคนิคของเกมทั้งหมด คุณให้ข้อมูลที่ถูกต้อง ครบถ้วน และเป็นประโยชน์ในภาษาไทยที่เป็นธรรมชาติเสมอ",
		scrapedPrompt: `กรุณาเขียนภาพรวมของเกมสล็อต PGSoft ชื่อ "%s" โดยอิงจากข้อมูลจริงจากเว็บไซต์ทางการ:

ชื่อเกม: %[1]s
คำอธิบาย: %[2]s
อัตราการจ่ายเงินคืนผู้เล่น (RTP): %[3]s
ลิงก์รายละเอียด: %[4]s

บทความต้องมีข้อมูลต่อไปนี้:
1. บทนำทั่วไปเกี่ยวกับเกมและธีมของเกม
2. วิธีเปิดใช้งานฟีเจอร์ฟรีสปินหรือโบนัสเกม
3. อัตราการจ่ายเงินคืนผู้เล่น (RTP) อ้างอิงอย่างถูกต้องจากแหล่งที่มา
4. เคล็ดลับและกลยุทธ์เพื่อเพิ่มโอกาสในการชนะ

กรุณาเขียนเป็นภาษาไทยที่เป็นธรรมชาติ เป็นมิตร และเข้าใจง่าย ใช้อิโมจิที่เหมาะสมเพื่อเน้นข้อมูล
จำกัดบทความไว้ที่ประมาณ 150-200 คำ`,
		genericPrompt: `กรุณาให้คำอธิบายโดยละเอียดเกี่ยวกับเกมสล็อต PGSoft ชื่อ "%s" โดยรวมข้อมูลต่อไปนี้:

1. ภาพและธีมของเกม
2. วิธีเปิดใช้งานฟีเจอร์ฟรีสปินหรือโบนัสเกม
3. ประมาณการอัตราการจ่ายเงินคืนผู้เล่น (RTP) ตามเกม PGSoft ที่คล้ายกัน
4. เคล็ดลับและกลยุทธ์เพื่อเพิ่มโอกาสในการชนะ

กรุณาเขียนเป็นภาษาไทยที่เป็นธรรมชาติ เป็นมิตร และเข้าใจง่าย ใช้อิโมจิที่เหมาะสมเพื่อเน้นข้อมูล`,
		header:       "<b>🎮 ข้อมูลเกม: %s 🎮</b>",
		rtpLabel:     "<b>🔍 RTP: %s</b>",
		footer:       "<i>โชคดีและสนุกกับการเล่น! อย่าลืมเล่นอย่างมีความรับผิดชอบ</i>",
		playButton:   playButtonTH,
		errorMessage: "❌ เกิดข้อผิดพลาดขณะค้นหาข้อมูลเกี่ยวกับเกม '%s' โปรดลองอีกครั้งในภายหลัง",
	},
	entity.Chinese: {
		system: "您是PGSoft老虎机游戏专家，对所有游戏的玩法、策略和技术规格有深入了解。您始终以自然的中文提供准确、完整和有用的信息。",
		scrapedPrompt: `请根据官方网站的真实信息，编写关于PGSoft老虎机游戏"%s"的概述：

游戏名称：%[1]s
描述：%[2]s
玩家回报率(RTP)：%[3]s
详情链接：%[4]s

文章必须包含以下信息：
1. 游戏及其主题的一般介绍
2. 如何激活免费旋转或奖励游戏功能
3. 准确引用来源的玩家回报率(RTP)
4. 增加获胜机会的技巧和策略

请用自然、友好和易于理解的中文写作。使用适当的表情符号突出信息。
将文章限制在约150-200字。`,
		genericPrompt: `请详细描述名为"%s"的PGSoft老虎机游戏，包括以下信息：

1. 游戏的视觉效果和主题
2. 如何激活免费旋转或奖励游戏功能
3. 根据类似的PGSoft游戏估计的玩家回报率(RTP)
4. 增加获胜机会的技巧和策略

请用自然、友好和易于理解的中文写作。使用适当的表情符号突出信息。`,
		header:       "<b>🎮 游戏信息：%s 🎮</b>",
		rtpLabel:     "<b>🔍 RTP: %s</b>",
		footer:       "<i>祝您好运，玩得开心！请记得负责任地游戏。</i>",
		playButton:   playButtonZH,
		errorMessage: "❌ 查找游戏'%s'信息时出错。请稍后再试。",
	},
}

// gameListTemplate frames the popular games list in one language.
type gameListTemplate struct {
	header     string
	usageInfo  string
	example    string
	playButton string
}

var gameListTemplates = map[entity.LanguageCode]gameListTemplate{
	entity.Vietnamese: {
		header:     "<b>🎯 DANH SÁCH CÁC GAME SLOT PGSOFT PHỔ BIẾN 🎯</b>",
		usageInfo:  "<i>Sử dụng lệnh /slotgame tên_game để xem thông tin chi tiết về một game cụ thể.</i>",
		example:    "<i>Ví dụ: /slotgame Mahjong Ways 2</i>",
		playButton: playButtonVI,
	},
	entity.English: {
		header:     "<b>🎯 LIST OF POPULAR PGSOFT SLOT GAMES 🎯</b>",
		usageInfo:  "<i>Use the /slotgame game_name command to view detailed information about a specific game.</i>",
		example:    "<i>Example: /slotgame Mahjong Ways 2</i>",
		playButton: playButtonEN,
	},
	entity.Thai: {
		header:     "<b>🎯 รายชื่อเกมสล็อต PGSOFT ยอดนิยม 🎯</b>",
		usageInfo:  "<i>ใช้คำสั่ง /slotgame ชื่อเกม เพื่อดูข้อมูลโดยละเอียดเกี่ยวกับเกมเฉพาะ</i>",
		example:    "<i>ตัวอย่าง: /slotgame Mahjong Ways 2</i>",
		playButton: playButtonTH,
	},
	entity.Chinese: {
		header:     "<b>🎯 热门PGSOFT老虎机游戏列表 🎯</b>",
		usageInfo:  "<i>使用 /slotgame 游戏名称 命令查看特定游戏的详细信息。</i>",
		example:    "<i>示例：/slotgame Mahjong Ways 2</i>",
		playButton: playButtonZH,
	},
}
