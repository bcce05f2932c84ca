package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/ietdavv/iet-portal/internal/config"
	"github.com/ietdavv/iet-portal/internal/database"
	"github.com/ietdavv/iet-portal/internal/logger"
	"github.com/ietdavv/iet-portal/internal/model"
	"github.com/ietdavv/iet-portal/internal/repository"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat, "")

	ctx := context.Background()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	// Role rows are only writable by the schema owner.
	pool, err := database.NewOwnerPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	userRepo := repository.NewUserRepository(pool)
	roleRepo := repository.NewRoleRepository(pool)

	// ─── CLI Input ─────────────────────────────────────────────────────
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Create Portal Admin ===")

	fmt.Print("Enter Email: ")
	email, _ := reader.ReadString('\n')
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		fmt.Println("Error: Email is required")
		return
	}

	// An existing account is promoted instead of recreated.
	user, err := userRepo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		fmt.Printf("Account %s exists, granting the %s role\n", user.Email, model.RoleAdmin)
	case errors.Is(err, pgx.ErrNoRows):
		fmt.Print("Enter Password: ")
		bytePassword, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			fmt.Println("\nError reading password")
			return
		}
		password := string(bytePassword)
		fmt.Println()
		if len(password) < 8 {
			fmt.Println("Error: Password must be at least 8 characters")
			return
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), cfg.BcryptCost)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to hash password")
		}

		user = &model.User{Email: email, PasswordHash: string(hashedPassword)}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatal().Err(err).Msg("Failed to create user")
		}
	default:
		log.Fatal().Err(err).Msg("Failed to look up user")
	}

	// ─── Assign Role ───────────────────────────────────────────────────
	if err := roleRepo.Assign(ctx, user.ID, model.RoleAdmin); err != nil {
		log.Fatal().Err(err).Msg("Failed to assign admin role")
	}

	fmt.Printf("\nSuccess! %s (%s) is now an admin\n", user.Email, user.ID)
}
