package language

var en = map[string]string{
	"help_message": `<b>🎰 NOVA88 BOT - HELP 🎰</b>

Available commands:

/du_doan - Today's Vietnam lottery prediction
/du_doan_4d - 4D lottery prediction (Singapore/Malaysia)
/du_doan_thai - Thai lottery prediction
/du_doan_indo - Indonesian Togel prediction
/ds_slot - List of popular PGSoft slot games
/slotgame game_name - Detailed info about a slot game
/language - Change language
/help - Show this help

<i>Good luck! Remember to bet responsibly.</i>`,
	"welcome_caption": "<b>🎰 Welcome to NOVA88! 🎰</b>",
	"welcome_message": `<b>🎰 WELCOME TO NOVA88 BOT! 🎰</b>

I can help you with:
🎯 Daily lottery predictions (Vietnam, 4D, Thailand, Indonesia)
🎮 PGSoft slot game information with accurate RTP

Type /help to see all commands.

<i>Good luck! Remember to bet responsibly.</i>`,
	"language_selection":     "🌐 <b>Please choose your language:</b>",
	"language_updated":       "✅ Language updated to {language}!",
	"command_not_recognized": "❓ Command not recognized. Type /help to see the list of commands.",
	"slot_game_error":        "Please enter the game name after the /slotgame command. Example: /slotgame Mahjong Ways 2",
	"promotion_button":       "🎁 Promotions",
	"bet_now_button":         "🎲 Bet now",
	"slots_rtp_button":       "🎮 Slots RTP",
	"jackpot_button":         "💰 Jackpot",
}
