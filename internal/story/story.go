// AngelaMos | 2026
// story.go

package story

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/carterperez-dev/matrimony-backend/internal/core"
)

const dateLayout = "2006-01-02"

type Story struct {
	ID              string    `db:"id"                json:"id"`
	MaleBiodataID   int       `db:"male_biodata_id"   json:"male_biodata_id"`
	FemaleBiodataID int       `db:"female_biodata_id" json:"female_biodata_id"`
	CoupleImage     string    `db:"couple_image"      json:"couple_image"`
	MarriageDate    time.Time `db:"marriage_date"     json:"marriage_date"`
	Review          string    `db:"review"            json:"review"`
	Rating          int       `db:"rating"            json:"rating"`
	CreatedAt       time.Time `db:"created_at"        json:"created_at"`
}

type CreateStoryRequest struct {
	MaleBiodataID   int    `json:"male_biodata_id"   validate:"required,gt=0"`
	FemaleBiodataID int    `json:"female_biodata_id" validate:"required,gt=0,nefield=MaleBiodataID"`
	CoupleImage     string `json:"couple_image"      validate:"omitempty,url,max=2048"`
	MarriageDate    string `json:"marriage_date"     validate:"required,datetime=2006-01-02"`
	Review          string `json:"review"            validate:"max=2000"`
	Rating          int    `json:"rating"            validate:"required,gte=1,lte=5"`
}

type Repository interface {
	Create(ctx context.Context, s *Story) error
	List(ctx context.Context) ([]Story, error)
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, s *Story) error {
	stmt := `
		INSERT INTO success_stories (id, male_biodata_id, female_biodata_id,
			couple_image, marriage_date, review, rating)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	err := r.db.GetContext(ctx, &s.CreatedAt, stmt,
		s.ID, s.MaleBiodataID, s.FemaleBiodataID,
		s.CoupleImage, s.MarriageDate, s.Review, s.Rating,
	)
	if err != nil {
		return fmt.Errorf("create story: %w", err)
	}
	return nil
}

func (r *repository) List(ctx context.Context) ([]Story, error) {
	stories := []Story{}
	err := r.db.SelectContext(ctx, &stories, `
		SELECT id, male_biodata_id, female_biodata_id, couple_image,
		       marriage_date, review, rating, created_at
		FROM success_stories
		ORDER BY marriage_date DESC, created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list stories: %w", err)
	}
	return stories, nil
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM success_stories`); err != nil {
		return 0, fmt.Errorf("count stories: %w", err)
	}
	return n, nil
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) Create(ctx context.Context, req CreateStoryRequest) (string, error) {
	date, err := time.Parse(dateLayout, req.MarriageDate)
	if err != nil {
		return "", core.InvalidInputError("marriage_date must be formatted as YYYY-MM-DD")
	}
	if date.After(s.now()) {
		return "", core.InvalidInputError("marriage_date cannot be in the future")
	}

	story := &Story{
		ID:              uuid.New().String(),
		MaleBiodataID:   req.MaleBiodataID,
		FemaleBiodataID: req.FemaleBiodataID,
		CoupleImage:     req.CoupleImage,
		MarriageDate:    date,
		Review:          req.Review,
		Rating:          req.Rating,
	}

	if err := s.repo.Create(ctx, story); err != nil {
		return "", err
	}
	return story.ID, nil
}

func (s *Service) List(ctx context.Context) ([]Story, error) {
	return s.repo.List(ctx)
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
