// AngelaMos | 2026
// favorite_test.go

package favorite

import (
	"context"
	"errors"
	"testing"

	"github.com/carterperez-dev/matrimony-backend/internal/core"
	"github.com/carterperez-dev/matrimony-backend/internal/member"
)

type memoryRepo struct {
	items   map[string]Favorite
	deleted int
}

func (m *memoryRepo) Create(_ context.Context, f *Favorite) error {
	m.items[f.ID] = *f
	return nil
}

func (m *memoryRepo) GetByID(_ context.Context, id string) (*Favorite, error) {
	f, ok := m.items[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	return &f, nil
}

func (m *memoryRepo) ListByOwner(_ context.Context, email string) ([]Favorite, error) {
	var out []Favorite
	for _, f := range m.items {
		if f.OwnerEmail == email {
			out = append(out, f)
		}
	}
	return out, nil
}

func (m *memoryRepo) Delete(_ context.Context, id string) (core.DeleteResult, error) {
	if _, ok := m.items[id]; !ok {
		return core.DeleteResult{}, nil
	}
	delete(m.items, id)
	m.deleted++
	return core.DeleteResult{DeletedCount: 1}, nil
}

type memberFinderFunc func(ctx context.Context, id int) (*member.Member, error)

func (f memberFinderFunc) FindByBiodataID(ctx context.Context, id int) (*member.Member, error) {
	return f(ctx, id)
}

func newService() (*Service, *memoryRepo) {
	repo := &memoryRepo{items: map[string]Favorite{}}
	finder := memberFinderFunc(func(_ context.Context, id int) (*member.Member, error) {
		if id != 7 {
			return nil, core.ErrNotFound
		}
		return &member.Member{BiodataID: 7, Name: "Nadia", PermanentDivisionName: "Sylhet", Occupation: "Doctor"}, nil
	})
	return NewService(repo, finder), repo
}

func TestAddSnapshotsMember(t *testing.T) {
	svc, repo := newService()

	id, err := svc.Add(context.Background(), "Me@x.com", AddFavoriteRequest{BiodataID: 7})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	f := repo.items[id]
	if f.OwnerEmail != "me@x.com" || f.Name != "Nadia" || f.Occupation != "Doctor" {
		t.Errorf("stored favorite = %+v", f)
	}

	if _, err := svc.Add(context.Background(), "me@x.com", AddFavoriteRequest{BiodataID: 8}); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("unknown biodata error = %v", err)
	}
}

func TestRemoveOwnerOnly(t *testing.T) {
	svc, repo := newService()
	id, _ := svc.Add(context.Background(), "owner@x.com", AddFavoriteRequest{BiodataID: 7})

	_, err := svc.Remove(context.Background(), "intruder@x.com", id)
	if !errors.Is(err, core.ErrForbidden) {
		t.Fatalf("Remove() by intruder error = %v, want ErrForbidden", err)
	}
	if repo.deleted != 0 {
		t.Fatal("intruder deleted a favorite")
	}

	res, err := svc.Remove(context.Background(), "owner@x.com", id)
	if err != nil || res.DeletedCount != 1 {
		t.Errorf("Remove() by owner = %+v, %v", res, err)
	}

	res, err = svc.Remove(context.Background(), "owner@x.com", id)
	if err != nil || res.DeletedCount != 0 {
		t.Errorf("second Remove() = %+v, %v", res, err)
	}
}
