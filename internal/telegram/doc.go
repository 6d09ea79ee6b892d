// Package telegram sends tour availability messages through the Telegram Bot API.
//
// Messages are plain text posted to the sendMessage method with sling. Authentication
// is the bot token (from @BotFather) embedded in the request path, plus the chat ID
// the message is delivered to. Both are passed in explicitly by the caller.
package telegram
