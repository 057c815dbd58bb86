package repository

import (
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bauwerk-digital/contracts-tracker/constants"
	"github.com/bauwerk-digital/contracts-tracker/internal/entity"
)

// Filter narrows List results. Query matches title and partner name
// case-insensitively; the enum fields match exactly when set.
type Filter struct {
	Query    string
	Status   constants.ContractStatus
	Risk     constants.RiskLevel
	Category constants.ContractCategory
}

// ContractRepository is the working set of analyzed contracts.
type ContractRepository interface {
	Save(contract entity.Contract)
	Get(id uuid.UUID) (entity.Contract, bool)
	Delete(id uuid.UUID) bool
	List(filter Filter, now time.Time) []entity.Contract
	Stats(now time.Time) entity.ContractStats
}

// memoryRepository keeps contracts in process memory; the dashboard owns no
// persistence layer. Status is derived from the end date at read time, so a
// stored record never goes stale.
type memoryRepository struct {
	mu           sync.RWMutex
	contracts    map[uuid.UUID]entity.Contract
	maxContracts int // 0 = unlimited
	logger       *slog.Logger
}

func NewMemoryRepository(maxContracts int, logger *slog.Logger) ContractRepository {
	if maxContracts < 0 {
		maxContracts = 0
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &memoryRepository{
		contracts:    make(map[uuid.UUID]entity.Contract),
		maxContracts: maxContracts,
		logger:       logger,
	}
}

func (r *memoryRepository) Save(contract entity.Contract) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.contracts[contract.ID] = contract
	r.evictIfNeeded()
}

func (r *memoryRepository) Get(id uuid.UUID) (entity.Contract, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.contracts[id]
	if !ok {
		return entity.Contract{}, false
	}
	return refresh(c, time.Now()), true
}

func (r *memoryRepository) Delete(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.contracts[id]; !ok {
		return false
	}
	delete(r.contracts, id)
	return true
}

func (r *memoryRepository) List(filter Filter, now time.Time) []entity.Contract {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query := strings.ToLower(strings.TrimSpace(filter.Query))
	result := make([]entity.Contract, 0, len(r.contracts))
	for _, c := range r.contracts {
		c = refresh(c, now)
		if query != "" &&
			!strings.Contains(strings.ToLower(c.Title), query) &&
			!strings.Contains(strings.ToLower(c.PartnerName), query) {
			continue
		}
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		if filter.Risk != "" && c.RiskLevel != filter.Risk {
			continue
		}
		if filter.Category != "" && c.Category != filter.Category {
			continue
		}
		result = append(result, c)
	}

	// newest upload first
	sort.Slice(result, func(i, j int) bool {
		return result[i].UploadedAt.After(result[j].UploadedAt)
	})
	return result
}

func (r *memoryRepository) Stats(now time.Time) entity.ContractStats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := entity.ContractStats{}
	perCategory := make(map[constants.ContractCategory]*entity.CategoryStat)
	for _, cat := range constants.AllCategories() {
		perCategory[cat] = &entity.CategoryStat{Category: cat}
	}

	for _, c := range r.contracts {
		c = refresh(c, now)
		stats.TotalCount++
		stats.TotalValue += c.Value
		if c.Status == constants.StatusExpiringSoon {
			stats.ExpiringSoon++
		}
		switch c.RiskLevel {
		case constants.RiskLow:
			stats.RiskDistribution.Low++
		case constants.RiskMedium:
			stats.RiskDistribution.Medium++
		case constants.RiskHigh:
			stats.RiskDistribution.High++
			stats.HighRisk++
		default:
			stats.RiskDistribution.Unknown++
		}
		if cs, ok := perCategory[c.Category]; ok {
			cs.Count++
			cs.Value += c.Value
		}
	}

	stats.Categories = make([]entity.CategoryStat, 0, len(perCategory))
	for _, cat := range constants.AllCategories() {
		stats.Categories = append(stats.Categories, *perCategory[cat])
	}
	return stats
}

// refresh recomputes the derived status against the given time. Draft and
// terminated contracts keep their explicit state.
func refresh(c entity.Contract, now time.Time) entity.Contract {
	if c.Status == constants.StatusDraft || c.Status == constants.StatusTerminated {
		return c
	}
	c.Status = constants.DeriveStatus(c.EndDate, now)
	return c
}

// evictIfNeeded removes the oldest contracts when the working set exceeds
// its cap. Must be called with the write lock held.
func (r *memoryRepository) evictIfNeeded() {
	if r.maxContracts <= 0 || len(r.contracts) <= r.maxContracts {
		return
	}

	all := make([]entity.Contract, 0, len(r.contracts))
	for _, c := range r.contracts {
		all = append(all, c)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].UploadedAt.Before(all[j].UploadedAt)
	})

	excess := len(all) - r.maxContracts
	for i := 0; i < excess; i++ {
		delete(r.contracts, all[i].ID)
	}
	r.logger.Info("repository.contracts.evicted", "count", excess, "max", r.maxContracts)
}
