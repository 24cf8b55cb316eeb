package models

type CommandType string

const (
	CommandStart   CommandType = "/start"
	CommandHelp    CommandType = "/help"
	CommandReact   CommandType = "/react"
	CommandUnknown CommandType = "unknown"
)

type ReactAction string

const (
	ActionList   ReactAction = "list"
	ActionAdd    ReactAction = "add"
	ActionEdit   ReactAction = "edit"
	ActionRemove ReactAction = "remove"
	ActionUsage  ReactAction = "usage"
)

type Command struct {
	Type     CommandType
	ChatID   int64
	UserID   int64
	Text     string
	Username string
}

type Message struct {
	ChatID   int64
	UserID   int64
	Text     string
	Username string
}
