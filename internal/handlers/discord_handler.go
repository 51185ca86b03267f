package handlers

import (
	"context"
	"errors"
	"log"

	"github.com/bela333/surprise-day/internal/discord"
	"github.com/bela333/surprise-day/internal/domain"
	"github.com/bela333/surprise-day/internal/domain/contract"
	"github.com/bela333/surprise-day/internal/domain/entity"
	"github.com/bwmarrin/discordgo"
	"github.com/dustin/go-humanize"
)

type commandHandler = func(
	*discordgo.Session,
	*discordgo.InteractionCreate,
)

var botCommands = []*discordgo.ApplicationCommand{
	{
		Name:        "join",
		Description: "Join someone else's surprise day!",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "The user whose surprise channel to join.",
				Required:    true,
			},
		},
	}, {
		Name:        "leave",
		Description: "Leave someone else's channel ;(",
	},
}

// DiscordHandler routes gateway events and slash commands to the surprise
// service.
type DiscordHandler struct {
	session            *discordgo.Session
	service            contract.SurpriseService
	guildID            string
	commandHandlers    map[string]commandHandler
	registeredCommands []*discordgo.ApplicationCommand
}

func New(session *discordgo.Session, service contract.SurpriseService, guildID string) *DiscordHandler {
	h := &DiscordHandler{
		session: session,
		service: service,
		guildID: guildID,
	}

	h.commandHandlers = map[string]commandHandler{
		"join":  h.handleJoinCommand,
		"leave": h.handleLeaveCommand,
	}

	return h
}

// Setup adds the gateway event handlers. Must be called before the session is
// opened.
func (h *DiscordHandler) Setup() {
	h.session.AddHandler(func(*discordgo.Session, *discordgo.Ready) {
		log.Println("Bot is up!")
	})

	h.session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if i.Type != discordgo.InteractionApplicationCommand {
			return
		}
		if handler, ok := h.commandHandlers[i.ApplicationCommandData().Name]; ok {
			handler(s, i)
		}
	})

	h.session.AddHandler(func(s *discordgo.Session, e *discordgo.GuildMemberAdd) {
		if err := h.service.HandleMemberJoin(context.Background(), e.User.ID, e.User.Username); err != nil {
			log.Printf("Failed to handle member join for %s: %v", e.User.ID, err)
		}
	})

	h.session.AddHandler(func(s *discordgo.Session, e *discordgo.GuildMemberRemove) {
		if err := h.service.HandleMemberLeave(context.Background(), e.User.ID); err != nil {
			log.Printf("Failed to handle member leave for %s: %v", e.User.ID, err)
		}
	})
}

// RegisterCommands creates the slash commands. Requires an open session.
func (h *DiscordHandler) RegisterCommands() error {
	for _, command := range botCommands {
		newCommand, err := h.session.ApplicationCommandCreate(
			h.session.State.User.ID,
			h.guildID,
			command,
		)
		if err != nil {
			return err
		}
		h.registeredCommands = append(h.registeredCommands, newCommand)
		log.Printf("Created %v command.", command.Name)
	}

	return nil
}

// UnregisterCommands deletes the slash commands created by RegisterCommands.
func (h *DiscordHandler) UnregisterCommands() {
	for _, command := range h.registeredCommands {
		err := h.session.ApplicationCommandDelete(
			h.session.State.User.ID,
			h.guildID,
			command.ID,
		)
		if err != nil {
			log.Printf("Failed to delete %v command: %v", command.Name, err)
		} else {
			log.Printf("Deleted %v command.", command.Name)
		}
	}
}

func (h *DiscordHandler) handleJoinCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	discord.AckInteraction(s, i.Interaction)

	target := i.ApplicationCommandData().Options[0].UserValue(s)

	day, err := h.service.JoinChannel(context.Background(), i.Member.User.ID, target.ID)
	if err != nil && !errors.Is(err, domain.ErrSelfJoin) && !errors.Is(err, domain.ErrNoChannel) {
		log.Printf("Failed to grant %s access to %s's channel: %v", i.Member.User.ID, target.ID, err)
	}

	discord.SendFollowup(s, i.Interaction, joinReply(target.Mention(), day, err))
}

func (h *DiscordHandler) handleLeaveCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	discord.AckInteraction(s, i.Interaction)

	err := h.service.LeaveChannel(context.Background(), i.Member.User.ID, i.ChannelID)
	if err != nil && !errors.Is(err, domain.ErrNoChannel) {
		log.Printf("Failed to revoke %s's access to channel %s: %v", i.Member.User.ID, i.ChannelID, err)
	}

	discord.SendFollowup(s, i.Interaction, leaveReply(err))
}

func joinReply(mention string, day *entity.SurpriseDay, err error) string {
	switch {
	case errors.Is(err, domain.ErrSelfJoin):
		return "You can't join your own channel!"
	case errors.Is(err, domain.ErrNoChannel):
		return "This user does not have a celebratory channel, or they are not a member of this server!"
	case err != nil:
		return "Something went wrong, please try again later."
	default:
		return "Joined " + mention + "'s surprise channel! The big day arrives " +
			humanize.Time(day.SurpriseDay) + "."
	}
}

func leaveReply(err error) string {
	switch {
	case errors.Is(err, domain.ErrNoChannel):
		return "You are not in a celebratory channel!"
	case err != nil:
		return "Something went wrong, please try again later."
	default:
		return "Successfully left channel!"
	}
}
