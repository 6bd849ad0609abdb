// AngelaMos | 2026
// repository.go

package member

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/carterperez-dev/matrimony-backend/internal/core"
	"github.com/carterperez-dev/matrimony-backend/internal/query"
)

const memberColumns = `id, biodata_id, email, name, biodata_type, age,
	permanent_division_name, present_division_name, occupation, height,
	weight, race, father_name, mother_name, date_of_birth,
	expected_partner_age, expected_partner_height, expected_partner_weight,
	mobile_number, profile_image, status, created_at, updated_at`

var filterable = query.Columns{
	query.FieldAge:         "age",
	query.FieldBiodataID:   "biodata_id",
	query.FieldBiodataType: "biodata_type",
	query.FieldDivision:    "permanent_division_name",
	query.FieldStatus:      "status",
	query.FieldEmail:       "email",
}

type Repository interface {
	Find(ctx context.Context, spec query.Spec) ([]Member, error)
	FindOne(ctx context.Context, spec query.Spec) (*Member, error)
	Create(ctx context.Context, m *Member) error
	NextBiodataID(ctx context.Context) (int, error)
	UpdateProfile(ctx context.Context, email string, changes []Change) (core.UpdateResult, error)
	UpdateStatus(ctx context.Context, biodataID int, status string) (core.UpdateResult, error)
	EstimatedCount(ctx context.Context) (int64, error)
	Count(ctx context.Context, spec query.Spec) (int64, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Find(ctx context.Context, spec query.Spec) ([]Member, error) {
	compiled, err := spec.SQL(filterable)
	if err != nil {
		return nil, fmt.Errorf("find members: %w", err)
	}

	order := ""
	if compiled.OrderBy == "" {
		order = " ORDER BY created_at"
	}

	stmt := `SELECT ` + memberColumns + ` FROM members` + compiled.Clause() + order

	members := []Member{}
	if err := r.db.SelectContext(ctx, &members, stmt, compiled.Args...); err != nil {
		return nil, fmt.Errorf("find members: %w", err)
	}

	return members, nil
}

// FindOne returns the oldest member matching spec, or core.ErrNotFound.
func (r *repository) FindOne(ctx context.Context, spec query.Spec) (*Member, error) {
	compiled, err := spec.SQL(filterable)
	if err != nil {
		return nil, fmt.Errorf("find member: %w", err)
	}

	order := " ORDER BY created_at"
	if compiled.OrderBy != "" {
		order = ""
	}

	stmt := `SELECT ` + memberColumns + ` FROM members` + compiled.Clause() + order + ` LIMIT 1`

	var m Member
	err = r.db.GetContext(ctx, &m, stmt, compiled.Args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("find member: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find member: %w", err)
	}

	return &m, nil
}

func (r *repository) Create(ctx context.Context, m *Member) error {
	stmt := `
		INSERT INTO members (
			id, biodata_id, email, name, biodata_type, age,
			permanent_division_name, present_division_name, occupation,
			height, weight, race, father_name, mother_name, date_of_birth,
			expected_partner_age, expected_partner_height,
			expected_partner_weight, mobile_number, profile_image, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
			$12, $13, $14, $15, $16, $17, $18, $19, $20, $21
		)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, m, stmt,
		m.ID, m.BiodataID, m.Email, m.Name, m.BiodataType, m.Age,
		m.PermanentDivisionName, m.PresentDivisionName, m.Occupation,
		m.Height, m.Weight, m.Race, m.FatherName, m.MotherName, m.DateOfBirth,
		m.ExpectedPartnerAge, m.ExpectedPartnerHeight,
		m.ExpectedPartnerWeight, m.MobileNumber, m.ProfileImage, m.Status,
	)
	if err != nil {
		if core.IsDuplicateKeyError(err) {
			return fmt.Errorf("create member: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create member: %w", err)
	}

	return nil
}

func (r *repository) NextBiodataID(ctx context.Context) (int, error) {
	var next int
	err := r.db.GetContext(ctx, &next,
		`SELECT COALESCE(MAX(biodata_id), 0) + 1 FROM members`)
	if err != nil {
		return 0, fmt.Errorf("next biodata id: %w", err)
	}
	return next, nil
}

func (r *repository) UpdateProfile(
	ctx context.Context,
	email string,
	changes []Change,
) (core.UpdateResult, error) {
	if len(changes) == 0 {
		var matched int64
		err := r.db.GetContext(ctx, &matched,
			`SELECT COUNT(*) FROM members WHERE email = $1`, email)
		if err != nil {
			return core.UpdateResult{}, fmt.Errorf("update member: %w", err)
		}
		return core.UpdateResult{MatchedCount: matched}, nil
	}

	sets := make([]string, 0, len(changes)+1)
	args := make([]any, 0, len(changes)+1)
	args = append(args, email)
	for _, c := range changes {
		args = append(args, c.Value)
		sets = append(sets, fmt.Sprintf("%s = $%d", c.Column, len(args)))
	}
	sets = append(sets, "updated_at = NOW()")

	stmt := `UPDATE members SET ` + strings.Join(sets, ", ") + ` WHERE email = $1`

	result, err := r.db.ExecContext(ctx, stmt, args...)
	if err != nil {
		return core.UpdateResult{}, fmt.Errorf("update member: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return core.UpdateResult{}, fmt.Errorf("update member: %w", err)
	}

	return core.UpdateResult{MatchedCount: rows, ModifiedCount: rows}, nil
}

// UpdateStatus changes the oldest member carrying biodataID.
func (r *repository) UpdateStatus(
	ctx context.Context,
	biodataID int,
	status string,
) (core.UpdateResult, error) {
	stmt := `
		WITH target AS (
			SELECT id, status FROM members
			WHERE biodata_id = $1
			ORDER BY created_at
			LIMIT 1
		), updated AS (
			UPDATE members m
			SET status = $2, updated_at = NOW()
			FROM target
			WHERE m.id = target.id AND target.status <> $2
			RETURNING m.id
		)
		SELECT (SELECT COUNT(*) FROM target) AS matched,
		       (SELECT COUNT(*) FROM updated) AS modified`

	var res core.UpdateResult
	if err := r.db.GetContext(ctx, &res, stmt, biodataID, status); err != nil {
		return core.UpdateResult{}, fmt.Errorf("update member status: %w", err)
	}

	return res, nil
}

// EstimatedCount reads the planner's row estimate, falling back to an
// exact count for a table that has never been analysed.
func (r *repository) EstimatedCount(ctx context.Context) (int64, error) {
	var estimate int64
	err := r.db.GetContext(ctx, &estimate,
		`SELECT reltuples::bigint FROM pg_class WHERE relname = 'members'`)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("estimate members: %w", err)
	}

	if err == nil && estimate >= 0 {
		return estimate, nil
	}

	return r.Count(ctx, query.All())
}

func (r *repository) Count(ctx context.Context, spec query.Spec) (int64, error) {
	compiled, err := spec.SQL(filterable)
	if err != nil {
		return 0, fmt.Errorf("count members: %w", err)
	}
	compiled.OrderBy = ""

	var n int64
	stmt := `SELECT COUNT(*) FROM members` + compiled.Clause()
	if err := r.db.GetContext(ctx, &n, stmt, compiled.Args...); err != nil {
		return 0, fmt.Errorf("count members: %w", err)
	}

	return n, nil
}

func (r *repository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM members WHERE email = $1)`, email)
	if err != nil {
		return false, fmt.Errorf("check member email: %w", err)
	}
	return exists, nil
}
