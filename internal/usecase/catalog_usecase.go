package usecase

import (
	"context"
	"log"
	"sort"
	"strings"
	"time"

	"auto_service_queue/internal/domain/entities"
	"auto_service_queue/internal/usecase/interfaces"
)

//go:generate mockgen -source=catalog_usecase.go -destination=../adapter/http/handlers/mocks/catalog_usecase_mock.go -package=mocks

// ICatalogUseCase is the read side of the service catalog used by estimation.
//
// Partial-match policy: ResolveServiceTypes silently drops names the catalog
// does not know and only fails when nothing matched.

type ICatalogUseCase interface {
	ListServiceTypes(ctx context.Context) ([]entities.ServiceType, error)
	ResolveServiceTypes(ctx context.Context, names []string) ([]entities.ServiceType, error)
	SeedDefaults(ctx context.Context) (int, error)
}

type CatalogUseCase struct {
	repo interfaces.IServiceTypeRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.IServiceTypeRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

func (u *CatalogUseCase) ListServiceTypes(ctx context.Context) ([]entities.ServiceType, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

// ResolveServiceTypes returns the matched catalog entries in request order, each once.
func (u *CatalogUseCase) ResolveServiceTypes(ctx context.Context, names []string) ([]entities.ServiceType, error) {
	requested := normalizeServiceNames(names)
	if len(requested) == 0 {
		return nil, ErrInvalidServices
	}

	found, err := u.repo.FindByNames(ctx, requested)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]entities.ServiceType, len(found))
	for _, st := range found {
		byName[st.Name] = st
	}

	matched := make([]entities.ServiceType, 0, len(byName))
	for _, name := range requested {
		st, ok := byName[name]
		if !ok {
			continue
		}
		matched = append(matched, st)
		delete(byName, name)
	}
	if len(matched) == 0 {
		log.Printf("[catalog][usecase] no services matched requested=%q", requested)
		return nil, ErrUnknownServices
	}
	if len(matched) < len(requested) {
		log.Printf("[catalog][usecase] partial match requested=%d matched=%d", len(requested), len(matched))
	}
	return matched, nil
}

// SeedDefaults writes the default catalog, overwriting entries with the same name.
func (u *CatalogUseCase) SeedDefaults(ctx context.Context) (int, error) {
	now := time.Now().UTC()
	count := 0
	for _, st := range entities.DefaultServiceTypes() {
		st.CreatedAt = now
		st.UpdatedAt = now
		if _, err := u.repo.Upsert(ctx, st); err != nil {
			log.Printf("[catalog][usecase] seed failed name=%q err=%v", st.Name, err)
			return count, err
		}
		count++
	}
	log.Printf("[catalog][usecase] seeded service types count=%d", count)
	return count, nil
}

// normalizeServiceNames trims, drops blanks and duplicates, keeping first-seen order.
func normalizeServiceNames(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
