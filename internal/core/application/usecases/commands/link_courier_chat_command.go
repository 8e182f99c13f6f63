package commands

import (
	"errors"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrLinkCourierChatCommandIsNotConstructed = errors.New(
	"LinkCourierChatCommand must be created via NewLinkCourierChatCommand constructor",
)

// LinkCourierChatCommand binds a Telegram chat to a courier account. The bot
// only knows the chat and the code the courier typed; the handler resolves
// which courier the code belongs to.
type LinkCourierChatCommand struct { //nolint:recvcheck //using for validation
	code   string
	chatID int64

	guard guard.ConstructorGuard
}

// NewLinkCourierChatCommand creates a command pairing a chat with a courier.
func NewLinkCourierChatCommand(code string, chatID int64) (LinkCourierChatCommand, error) {
	if code == "" {
		return LinkCourierChatCommand{}, errs.NewValueIsRequiredError("code")
	}
	if chatID == 0 {
		return LinkCourierChatCommand{}, errs.NewValueIsRequiredError("chatId")
	}

	return LinkCourierChatCommand{
		code:   code,
		chatID: chatID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c LinkCourierChatCommand) Validate() error {
	return c.guard.Validate(ErrLinkCourierChatCommandIsNotConstructed)
}

// Code returns the pairing code the courier typed.
func (c LinkCourierChatCommand) Code() string { return c.code }

// ChatID returns the Telegram chat to bind.
func (c LinkCourierChatCommand) ChatID() int64 { return c.chatID }
