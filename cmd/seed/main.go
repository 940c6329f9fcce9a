package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/schoolworks/campus-backend/internal/config"
	"github.com/schoolworks/campus-backend/internal/database"
	"github.com/schoolworks/campus-backend/internal/logger"
	"github.com/schoolworks/campus-backend/internal/model"
	"github.com/schoolworks/campus-backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// Seeds a demo course with a roster of student users and accounts.
func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	accountRepo := repository.NewAccountRepository(pool)

	courseName := "Computer Science"
	courseAcronym := "CS"

	fmt.Println("=== Seeding demo course and 25 students ===")

	// Find or create the demo course.
	var courseID int
	err = pool.QueryRow(ctx,
		`SELECT course_id FROM courses WHERE acronym = $1`, courseAcronym,
	).Scan(&courseID)
	if err != nil {
		if err != pgx.ErrNoRows {
			log.Fatal().Err(err).Msg("Course lookup failed")
		}
		fmt.Printf("Course %s not found. Creating it...\n", courseAcronym)
		err = pool.QueryRow(ctx,
			`INSERT INTO courses (course_name, acronym) VALUES ($1, $2) RETURNING course_id`,
			courseName, courseAcronym,
		).Scan(&courseID)
		if err != nil {
			log.Fatal().Err(err).Msg("Course creation failed")
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), cfg.BcryptCost)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash seed password")
	}

	created := 0
	for i := 1; i <= 25; i++ {
		user := &model.User{
			StudentID:  fmt.Sprintf("S%04d", i),
			FirstName:  fmt.Sprintf("Student%02d", i),
			MiddleName: "",
			LastName:   "Demo",
			CourseID:   courseID,
		}
		username := fmt.Sprintf("student%02d", i)

		if err := accountRepo.CreateStudent(ctx, user, username, string(hash)); err != nil {
			if repository.IsUniqueViolation(err) {
				fmt.Printf("  %s already exists, skipping\n", username)
				continue
			}
			log.Fatal().Err(err).Str("username", username).Msg("Student creation failed")
		}
		created++
	}

	fmt.Printf("Done. Course %s (course_id=%d), %d students created.\n", courseAcronym, courseID, created)
}
