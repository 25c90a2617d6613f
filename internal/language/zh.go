package language

var zh = map[string]string{
	"help_message": `<b>🎰 NOVA88 BOT - 帮助 🎰</b>

可用命令：

/du_doan - 今日越南彩票预测
/du_doan_4d - 4D彩票预测（新加坡/马来西亚）
/du_doan_thai - 泰国彩票预测
/du_doan_indo - 印尼多格彩票预测
/ds_slot - 热门PGSoft老虎机游戏列表
/slotgame 游戏名称 - 老虎机游戏详细信息
/language - 更改语言
/help - 显示此帮助

<i>祝您好运！请记得负责任地投注。</i>`,
	"welcome_caption": "<b>🎰 欢迎来到NOVA88！🎰</b>",
	"welcome_message": `<b>🎰 欢迎使用NOVA88 BOT！🎰</b>

我可以为您提供：
🎯 每日彩票预测（越南、4D、泰国、印尼）
🎮 PGSoft老虎机游戏信息及准确RTP

输入 /help 查看所有命令。

<i>祝您好运！请记得负责任地投注。</i>`,
	"language_selection":     "🌐 <b>请选择您的语言：</b>",
	"language_updated":       "✅ 语言已更新为 {language}！",
	"command_not_recognized": "❓ 无法识别该命令。输入 /help 查看命令列表。",
	"slot_game_error":        "请在 /slotgame 命令后输入游戏名称。示例：/slotgame Mahjong Ways 2",
	"promotion_button":       "🎁 优惠活动",
	"bet_now_button":         "🎲 立即投注",
	"slots_rtp_button":       "🎮 Slots RTP",
	"jackpot_button":         "💰 累积奖金",
}
