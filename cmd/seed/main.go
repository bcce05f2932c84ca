package main

import (
	"context"
	"fmt"
	"time"

	"github.com/ietdavv/iet-portal/internal/config"
	"github.com/ietdavv/iet-portal/internal/database"
	"github.com/ietdavv/iet-portal/internal/logger"
	"github.com/ietdavv/iet-portal/internal/model"
	"github.com/ietdavv/iet-portal/internal/repository"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat, "")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := database.NewOwnerPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	noticeRepo := repository.NewNoticeRepository(pool)
	bulletinRepo := repository.NewBulletinRepository(pool)
	materialRepo := repository.NewMaterialRepository(pool)
	settingRepo := repository.NewSettingRepository(pool)

	// ─── Site Settings ─────────────────────────────────────────────────
	fmt.Println("=== Seeding site settings ===")
	settings := []model.AppSetting{
		{Key: "address", Value: "Khandwa Road, Indore, Madhya Pradesh 452017"},
		{Key: "phone", Value: "+91-731-2361116"},
		{Key: "email", Value: "info@ietdavv.edu.in"},
		{Key: "office_hours", Value: "Mon - Sat, 10:00 AM - 5:00 PM"},
	}
	for _, s := range settings {
		if err := settingRepo.Upsert(ctx, s.Key, s.Value); err != nil {
			log.Fatal().Err(err).Str("key", s.Key).Msg("Failed to upsert setting")
		}
	}

	now := time.Now().UTC()
	day := 24 * time.Hour

	// ─── Notices ───────────────────────────────────────────────────────
	fmt.Println("=== Seeding notices ===")
	notices := []model.Notice{
		{
			Title:       "Mid Semester Test Schedule",
			Content:     "MST-1 for all **B.E.** semesters begins next Monday. Check the bulletin for timings.",
			Category:    model.NoticeCategoryExam,
			Priority:    model.NoticePriorityHigh,
			PublishedAt: now.Add(-1 * day),
		},
		{
			Title:       "Annual Tech Fest Registrations Open",
			Content:     "Register your teams at the student activity cell before Friday.",
			Category:    model.NoticeCategoryEvent,
			Priority:    model.NoticePriorityNormal,
			PublishedAt: now.Add(-3 * day),
		},
		{
			Title:       "Holiday on account of Diwali",
			Content:     "The institute remains closed for the Diwali break.",
			Category:    model.NoticeCategoryHoliday,
			Priority:    model.NoticePriorityNormal,
			PublishedAt: now.Add(-7 * day),
		},
		{
			Title:       "Library timings extended",
			Content:     "The central library is open until 9 PM during exams.",
			Category:    model.NoticeCategoryGeneral,
			Priority:    model.NoticePriorityNormal,
			PublishedAt: now.Add(-10 * day),
		},
	}
	for i := range notices {
		if err := noticeRepo.Create(ctx, &notices[i]); err != nil {
			log.Fatal().Err(err).Str("title", notices[i].Title).Msg("Failed to create notice")
		}
	}

	// ─── Bulletin ──────────────────────────────────────────────────────
	fmt.Println("=== Seeding bulletin items ===")
	mstStart := now.Add(4 * day).Truncate(day)
	mstEnd := mstStart.Add(5 * day)
	holiday := now.Add(14 * day).Truncate(day)
	items := []model.BulletinItem{
		{
			Title:     "MST-1 Examinations",
			Content:   "Morning slot 10:00 - 11:30, evening slot 2:00 - 3:30.",
			Category:  model.BulletinCategoryExam,
			StartDate: &mstStart,
			EndDate:   &mstEnd,
		},
		{
			Title:     "Revised college timings",
			Content:   "Classes run from 9:30 AM to 4:30 PM.",
			Category:  model.BulletinCategorySchedule,
			StartDate: &mstStart,
		},
		{
			Title:     "Diwali holiday",
			Content:   "No classes.",
			Category:  model.BulletinCategoryHoliday,
			StartDate: &holiday,
		},
		{
			Title:    "Placement cell orientation",
			Content:  "Final year students should attend the orientation in the seminar hall.",
			Category: model.BulletinCategoryEvent,
		},
	}
	for i := range items {
		if err := bulletinRepo.Create(ctx, &items[i]); err != nil {
			log.Fatal().Err(err).Str("title", items[i].Title).Msg("Failed to create bulletin item")
		}
	}

	// ─── Materials ─────────────────────────────────────────────────────
	fmt.Println("=== Seeding materials ===")
	materials := []model.Material{
		{
			Title:       "Data Structures Notes",
			Description: "Unit-wise handwritten notes",
			Subject:     "Data Structures",
			Semester:    strPtr("III"),
			Category:    model.MaterialCategoryNotes,
			FileURL:     strPtr("https://example.org/materials/ds-notes.pdf"),
		},
		{
			Title:       "Engineering Mathematics PYQ 2023",
			Description: "End semester question paper",
			Subject:     "Engineering Mathematics",
			Semester:    strPtr("I"),
			Category:    model.MaterialCategoryPYQ,
			FileURL:     strPtr("https://example.org/materials/maths-2023.pdf"),
		},
		{
			Title:       "Physics Lab Manual",
			Description: "Experiments for the first year physics lab",
			Subject:     "Physics",
			Category:    model.MaterialCategoryPractical,
			FileURL:     strPtr("https://example.org/materials/physics-lab.pdf"),
		},
		{
			Title:       "Operating Systems MST-1",
			Description: "Upload pending",
			Subject:     "Operating Systems",
			Semester:    strPtr("V"),
			Category:    model.MaterialCategoryMST,
		},
	}
	for i := range materials {
		if err := materialRepo.Create(ctx, &materials[i]); err != nil {
			log.Fatal().Err(err).Str("title", materials[i].Title).Msg("Failed to create material")
		}
	}

	fmt.Printf("\nSeed completed! %d settings, %d notices, %d bulletin items, %d materials.\n",
		len(settings), len(notices), len(items), len(materials))
}

func strPtr(s string) *string { return &s }
