package training

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymtrack/internal/cache"
)

const musclesCacheTTL = time.Hour

// CachingRepo serves muscle catalog reads from an in-process cache,
// dropped whenever the catalog changes.
type CachingRepo struct {
	*Repo
	cache cache.Cache
}

func NewCachingRepo(repo *Repo, c cache.Cache) *CachingRepo {
	return &CachingRepo{
		Repo:  repo,
		cache: c,
	}
}

func musclesCacheKey(params ListParams) string {
	params = params.normalized()
	return fmt.Sprintf("muscles::%d::%d", params.Skip, params.Limit)
}

func (r *CachingRepo) ListMuscles(ctx context.Context, params ListParams) ([]Muscle, error) {
	key := musclesCacheKey(params)

	var muscles []Muscle
	if err := cache.GetJSON(r.cache, key, &muscles); err == nil {
		log.Tracef("muscles list [%s] found in cache", key)
		return muscles, nil
	}

	muscles, err := r.Repo.ListMuscles(ctx, params)
	if err != nil {
		return nil, err
	}

	if err := cache.SetJSON(r.cache, key, muscles, musclesCacheTTL); err != nil {
		log.Errorf("failed to cache muscles list [%s]: %s", key, err)
	}

	return muscles, nil
}

func (r *CachingRepo) AddMuscle(ctx context.Context, name string) (*Muscle, error) {
	muscle, err := r.Repo.AddMuscle(ctx, name)
	if err != nil {
		return nil, err
	}
	r.cache.Clear()
	return muscle, nil
}

func (r *CachingRepo) UpdateMuscle(ctx context.Context, id int, name string) error {
	if err := r.Repo.UpdateMuscle(ctx, id, name); err != nil {
		return err
	}
	r.cache.Clear()
	return nil
}
