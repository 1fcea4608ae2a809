package model

// User is a Telegram account known to the bot.
//
// Users are recorded the first time they interact with the bot. The name
// captured on first sight is kept forever: later interactions never
// overwrite it, even if the Telegram profile changes.
type User struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
