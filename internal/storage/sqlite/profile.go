package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mmynk/urbanthek/internal/models"
)

// LoadProfile returns the saved profile, or a fresh one if none was saved.
func (s *SQLiteStore) LoadProfile(ctx context.Context) (*models.Profile, error) {
	p := &models.Profile{}
	err := s.db.QueryRowContext(ctx,
		"SELECT name, phone, address, notes, bill_number FROM profile WHERE id = 1",
	).Scan(&p.Customer.Name, &p.Customer.Phone, &p.Customer.Address, &p.Customer.Notes, &p.BillNumber)
	if err == sql.ErrNoRows {
		return models.NewProfile(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return p, nil
}

// SaveProfile writes the single profile row.
func (s *SQLiteStore) SaveProfile(ctx context.Context, p *models.Profile) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO profile (id, name, phone, address, notes, bill_number)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			phone = excluded.phone,
			address = excluded.address,
			notes = excluded.notes,
			bill_number = excluded.bill_number
	`, p.Customer.Name, p.Customer.Phone, p.Customer.Address, p.Customer.Notes, p.BillNumber)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}
