// AngelaMos | 2026
// favorite.go

package favorite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/carterperez-dev/matrimony-backend/internal/core"
	"github.com/carterperez-dev/matrimony-backend/internal/member"
	"github.com/carterperez-dev/matrimony-backend/internal/query"
)

// Favorite is a bookmark of another member's biodata. The name, division
// and occupation are copied when the bookmark is made.
type Favorite struct {
	ID                    string    `db:"id"                      json:"id"`
	OwnerEmail            string    `db:"owner_email"             json:"owner_email"`
	BiodataID             int       `db:"biodata_id"              json:"biodata_id"`
	Name                  string    `db:"name"                    json:"name"`
	PermanentDivisionName string    `db:"permanent_division_name" json:"permanent_division_name"`
	Occupation            string    `db:"occupation"              json:"occupation"`
	CreatedAt             time.Time `db:"created_at"              json:"created_at"`
}

type AddFavoriteRequest struct {
	BiodataID int `json:"biodata_id" validate:"required,gt=0"`
}

type Repository interface {
	Create(ctx context.Context, f *Favorite) error
	GetByID(ctx context.Context, id string) (*Favorite, error)
	ListByOwner(ctx context.Context, email string) ([]Favorite, error)
	Delete(ctx context.Context, id string) (core.DeleteResult, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const favoriteColumns = `id, owner_email, biodata_id, name,
	permanent_division_name, occupation, created_at`

func (r *repository) Create(ctx context.Context, f *Favorite) error {
	stmt := `
		INSERT INTO favorites (id, owner_email, biodata_id, name,
			permanent_division_name, occupation)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	err := r.db.GetContext(ctx, &f.CreatedAt, stmt,
		f.ID, f.OwnerEmail, f.BiodataID, f.Name,
		f.PermanentDivisionName, f.Occupation,
	)
	if err != nil {
		return fmt.Errorf("create favorite: %w", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Favorite, error) {
	var f Favorite
	err := r.db.GetContext(ctx, &f,
		`SELECT `+favoriteColumns+` FROM favorites WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get favorite: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get favorite: %w", err)
	}
	return &f, nil
}

func (r *repository) ListByOwner(ctx context.Context, email string) ([]Favorite, error) {
	favorites := []Favorite{}
	err := r.db.SelectContext(ctx, &favorites,
		`SELECT `+favoriteColumns+` FROM favorites
		 WHERE owner_email = $1 ORDER BY created_at DESC`, email)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return favorites, nil
}

func (r *repository) Delete(ctx context.Context, id string) (core.DeleteResult, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM favorites WHERE id = $1`, id)
	if err != nil {
		return core.DeleteResult{}, fmt.Errorf("delete favorite: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return core.DeleteResult{}, fmt.Errorf("delete favorite: %w", err)
	}

	return core.DeleteResult{DeletedCount: rows}, nil
}

type MemberFinder interface {
	FindByBiodataID(ctx context.Context, id int) (*member.Member, error)
}

type Service struct {
	repo    Repository
	members MemberFinder
}

func NewService(repo Repository, members MemberFinder) *Service {
	return &Service{repo: repo, members: members}
}

func (s *Service) Add(
	ctx context.Context,
	owner string,
	req AddFavoriteRequest,
) (string, error) {
	m, err := s.members.FindByBiodataID(ctx, req.BiodataID)
	if errors.Is(err, core.ErrNotFound) {
		return "", core.NotFoundError("biodata")
	}
	if err != nil {
		return "", err
	}

	f := &Favorite{
		ID:                    uuid.New().String(),
		OwnerEmail:            query.NormalizeEmail(owner),
		BiodataID:             m.BiodataID,
		Name:                  m.Name,
		PermanentDivisionName: m.PermanentDivisionName,
		Occupation:            m.Occupation,
	}

	if err := s.repo.Create(ctx, f); err != nil {
		return "", err
	}
	return f.ID, nil
}

func (s *Service) List(ctx context.Context, owner string) ([]Favorite, error) {
	return s.repo.ListByOwner(ctx, query.NormalizeEmail(owner))
}

// Remove deletes a favorite owned by caller. Someone else's favorite is
// forbidden; a missing one deletes nothing.
func (s *Service) Remove(
	ctx context.Context,
	caller, id string,
) (core.DeleteResult, error) {
	f, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, core.ErrNotFound) {
		return core.DeleteResult{}, nil
	}
	if err != nil {
		return core.DeleteResult{}, err
	}

	if f.OwnerEmail != query.NormalizeEmail(caller) {
		return core.DeleteResult{}, core.ForbiddenError("")
	}

	return s.repo.Delete(ctx, id)
}
