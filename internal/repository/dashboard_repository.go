package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/ietdavv/iet-portal/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DashboardRepository handles admin dashboard data access.
type DashboardRepository struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository creates a new DashboardRepository.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{pool: pool}
}

// DashboardSummary holds the stat cards of the admin dashboard.
type DashboardSummary struct {
	TotalNotices       int `json:"total_notices"`
	TotalBulletinItems int `json:"total_bulletin_items"`
	TotalMaterials     int `json:"total_materials"`
	TotalDownloads     int `json:"total_downloads"`
	TotalContacts      int `json:"total_contacts"`
}

// GetSummaryCounts retrieves the high-level metrics for the dashboard.
// Contacts are counted under the select policy, so a non-admin viewer sees zero.
func (r *DashboardRepository) GetSummaryCounts(ctx context.Context, viewer model.Identity) (DashboardSummary, error) {
	var s DashboardSummary
	err := withIdentity(ctx, r.pool, viewer, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx,
			`SELECT
				(SELECT COUNT(*) FROM notices),
				(SELECT COUNT(*) FROM bulletin_items),
				(SELECT COUNT(*) FROM materials),
				(SELECT COALESCE(SUM(downloads), 0) FROM materials),
				(SELECT COUNT(*) FROM contacts)`,
		).Scan(&s.TotalNotices, &s.TotalBulletinItems, &s.TotalMaterials, &s.TotalDownloads, &s.TotalContacts)
	})
	return s, err
}

// GetContactStatusCounts retrieves the distribution of contact messages by status.
func (r *DashboardRepository) GetContactStatusCounts(ctx context.Context, viewer model.Identity) (map[string]int, error) {
	counts := make(map[string]int)
	err := withIdentity(ctx, r.pool, viewer, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx,
			`SELECT COALESCE(NULLIF(status, ''), $1), COUNT(*) FROM contacts GROUP BY 1`,
			model.DefaultContactStatus)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var status string
			var count int
			if err := rows.Scan(&status, &count); err != nil {
				return err
			}
			counts[status] = count
		}
		return rows.Err()
	})
	return counts, err
}

// DashboardTopMaterial is a material ranked by download count.
type DashboardTopMaterial struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Downloads int       `json:"downloads"`
}

// GetTopMaterials retrieves the N most downloaded materials.
func (r *DashboardRepository) GetTopMaterials(ctx context.Context, viewer model.Identity, limit int) ([]DashboardTopMaterial, error) {
	materials := []DashboardTopMaterial{}
	err := withIdentity(ctx, r.pool, viewer, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx,
			`SELECT id, title, category, downloads
			 FROM materials
			 WHERE downloads > 0
			 ORDER BY downloads DESC, title ASC
			 LIMIT $1`, limit)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var m DashboardTopMaterial
			if err := rows.Scan(&m.ID, &m.Title, &m.Category, &m.Downloads); err != nil {
				return err
			}
			materials = append(materials, m)
		}
		return rows.Err()
	})
	return materials, err
}
