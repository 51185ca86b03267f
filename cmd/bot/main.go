package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bela333/surprise-day/internal/config"
	"github.com/bela333/surprise-day/internal/database"
	"github.com/bela333/surprise-day/internal/discord"
	"github.com/bela333/surprise-day/internal/domain/service"
	"github.com/bela333/surprise-day/internal/handlers"
	"github.com/bela333/surprise-day/internal/scheduler"
	"github.com/bela333/surprise-day/migrator/sqlite"
	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()
	if cfg.DiscordToken == "" || cfg.GuildID == "" || cfg.CategoryID == "" {
		log.Fatal("DISCORD_TOKEN, GUILD_ID and CATEGORY_ID must be set")
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Println("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		log.Fatalf("Failed to create discord session: %v", err)
	}
	session.Identify.Intents = discordgo.IntentsAllWithoutPrivileged | discordgo.IntentsGuildMembers

	dm := database.NewInstance(db)
	services := service.NewInstance(dm, discord.NewClient(session), cfg.GuildID, cfg.CategoryID)

	handler := handlers.New(session, services.Surprise, cfg.GuildID)
	handler.Setup()

	if err := session.Open(); err != nil {
		log.Fatalf("Failed to open session: %v", err)
	}
	defer session.Close()

	if err := handler.RegisterCommands(); err != nil {
		log.Fatalf("Failed to register commands: %v", err)
	}
	defer handler.UnregisterCommands()

	sched, err := scheduler.New(services.Surprise)
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down.")
}
