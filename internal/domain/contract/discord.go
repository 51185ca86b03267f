package contract

// ChatClient defines the interface for Discord operations consumed by the
// core. This allows mocking in tests while keeping the real implementation
// simple. Not-found failures from the platform are reported as errors
// wrapping domain.ErrNotFound.
type ChatClient interface {
	// CreateHiddenChannel creates a text channel under the given category,
	// hidden from the guild's default role, and returns its ID.
	CreateHiddenChannel(guildID, name, categoryID string) (string, error)

	// DeleteChannel deletes a channel.
	DeleteChannel(channelID string) error

	// SendMessage posts a message to a channel and returns the message ID.
	SendMessage(channelID, content string) (string, error)

	// PinMessage pins a message in a channel.
	PinMessage(channelID, messageID string) error

	// DeleteMessage deletes a message from a channel.
	DeleteMessage(channelID, messageID string) error

	// AllowAccess grants a user visibility into a channel via a permission
	// overwrite.
	AllowAccess(channelID, userID string) error

	// DenyAccess removes a user's permission overwrite from a channel.
	DenyAccess(channelID, userID string) error
}
