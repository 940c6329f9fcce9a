package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/schoolworks/campus-backend/internal/config"
	"github.com/schoolworks/campus-backend/internal/database"
	"github.com/schoolworks/campus-backend/internal/logger"
	"github.com/schoolworks/campus-backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"
)

// Interactive bootstrap for the first admin account.
func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	accountRepo := repository.NewAccountRepository(pool)

	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Admin username: ")
	username, err := reader.ReadString('\n')
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read username")
	}
	username = strings.TrimSpace(username)
	if len(username) < 3 {
		log.Fatal().Msg("Username must be at least 3 characters")
	}

	fmt.Print("Password (hidden): ")
	pwBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read password")
	}
	if len(pwBytes) < 6 {
		log.Fatal().Msg("Password must be at least 6 characters long")
	}

	fmt.Print("Confirm password: ")
	confirmBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read confirmation")
	}
	if string(pwBytes) != string(confirmBytes) {
		log.Fatal().Msg("Passwords do not match")
	}

	hash, err := bcrypt.GenerateFromPassword(pwBytes, cfg.BcryptCost)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash password")
	}

	id, err := accountRepo.CreateAdmin(ctx, username, string(hash))
	if err != nil {
		if repository.IsUniqueViolation(err) {
			log.Fatal().Str("username", username).Msg("Username already exists")
		}
		log.Fatal().Err(err).Msg("Failed to create admin account")
	}

	fmt.Printf("Admin account %q created (account_id=%d)\n", username, id)
}
