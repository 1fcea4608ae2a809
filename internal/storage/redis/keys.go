package redis

import "fmt"

// Key prefixes for the bot's Redis keyspace
const (
	userKeyPrefix    = "farosat:user:"
	entryKeyPrefix   = "farosat:entry:"
	chatIndexPrefix  = "farosat:chat-entries:"
	allEntriesIndexK = "farosat:entries"
)

func userKey(id int64) string {
	return fmt.Sprintf("%s%d", userKeyPrefix, id)
}

func entryKey(userID, chatID int64) string {
	return fmt.Sprintf("%s%d:%d", entryKeyPrefix, chatID, userID)
}

func chatIndexKey(chatID int64) string {
	return fmt.Sprintf("%s%d", chatIndexPrefix, chatID)
}

func allEntriesIndexKey() string {
	return allEntriesIndexK
}
