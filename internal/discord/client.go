// Package discord implements the chat collaborator contract on top of
// discordgo. All identifiers crossing this boundary are plain snowflake
// strings; not-found REST failures are wrapped with domain.ErrNotFound so the
// core can treat them as benign where appropriate.
package discord

import (
	"errors"
	"fmt"

	"github.com/bela333/surprise-day/internal/domain"
	"github.com/bwmarrin/discordgo"
)

type Client struct {
	session *discordgo.Session
}

func NewClient(session *discordgo.Session) *Client {
	return &Client{session: session}
}

func (c *Client) CreateHiddenChannel(guildID, name, categoryID string) (string, error) {
	channel, err := c.session.GuildChannelCreateComplex(guildID, discordgo.GuildChannelCreateData{
		Name:     name,
		Type:     discordgo.ChannelTypeGuildText,
		ParentID: categoryID,
		PermissionOverwrites: []*discordgo.PermissionOverwrite{
			{
				// The @everyone role shares its id with the guild.
				ID:   guildID,
				Type: discordgo.PermissionOverwriteTypeRole,
				Deny: discordgo.PermissionViewChannel,
			},
		},
	})
	if err != nil {
		return "", wrapRESTError(err)
	}

	return channel.ID, nil
}

func (c *Client) DeleteChannel(channelID string) error {
	_, err := c.session.ChannelDelete(channelID)
	return wrapRESTError(err)
}

func (c *Client) SendMessage(channelID, content string) (string, error) {
	message, err := c.session.ChannelMessageSend(channelID, content)
	if err != nil {
		return "", wrapRESTError(err)
	}

	return message.ID, nil
}

func (c *Client) PinMessage(channelID, messageID string) error {
	return wrapRESTError(c.session.ChannelMessagePin(channelID, messageID))
}

func (c *Client) DeleteMessage(channelID, messageID string) error {
	return wrapRESTError(c.session.ChannelMessageDelete(channelID, messageID))
}

func (c *Client) AllowAccess(channelID, userID string) error {
	err := c.session.ChannelPermissionSet(
		channelID,
		userID,
		discordgo.PermissionOverwriteTypeMember,
		discordgo.PermissionViewChannel,
		0,
	)
	return wrapRESTError(err)
}

func (c *Client) DenyAccess(channelID, userID string) error {
	return wrapRESTError(c.session.ChannelPermissionDelete(channelID, userID))
}

// wrapRESTError maps Discord's unknown-entity REST errors onto
// domain.ErrNotFound and leaves everything else untouched.
func wrapRESTError(err error) error {
	if err == nil {
		return nil
	}

	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Message != nil {
		switch restErr.Message.Code {
		case discordgo.ErrCodeUnknownChannel,
			discordgo.ErrCodeUnknownMessage,
			discordgo.ErrCodeUnknownOverwrite:
			return fmt.Errorf("%v: %w", err, domain.ErrNotFound)
		}
	}

	return err
}
