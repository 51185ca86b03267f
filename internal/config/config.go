package config

import "os"

type Config struct {
	DiscordToken string
	GuildID      string
	CategoryID   string
	DatabasePath string
}

func Load() *Config {
	return &Config{
		DiscordToken: getEnv("DISCORD_TOKEN", ""),
		GuildID:      getEnv("GUILD_ID", ""),
		CategoryID:   getEnv("CATEGORY_ID", ""),
		DatabasePath: getEnv("DATABASE_PATH", "./surprise.db"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
